package bibleapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/260823-go-app-bible/pkg/bibleapi"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// newRecordingClient 返回记录请求 URL 的客户端，响应固定为 status/body。
func newRecordingClient(baseURL string, status int, body string) (*bibleapi.Client, *[]string) {
	var urls []string
	httpc := &http.Client{
		Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			urls = append(urls, req.URL.String())

			return &http.Response{
				StatusCode: status,
				Status:     http.StatusText(status),
				Header:     http.Header{},
				Body:       io.NopCloser(strings.NewReader(body)),
				Request:    req,
			}, nil
		}),
	}

	return bibleapi.New(baseURL, bibleapi.WithHTTPClient(httpc)), &urls
}

func TestClient_ResolvedURLs(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		call    func(ctx context.Context, c *bibleapi.Client) (json.RawMessage, error)
		want    string
	}{
		{
			name: "verse replaces spaces with plus",
			call: func(ctx context.Context, c *bibleapi.Client) (json.RawMessage, error) {
				return c.Verse(ctx, "John 3:16", "")
			},
			want: "http://localhost:4567/John+3:16",
		},
		{
			name: "verse appends translation query",
			call: func(ctx context.Context, c *bibleapi.Client) (json.RawMessage, error) {
				return c.Verse(ctx, "John 3:16", "kjv")
			},
			want: "http://localhost:4567/John+3:16?translation=kjv",
		},
		{
			name: "translations",
			call: func(ctx context.Context, c *bibleapi.Client) (json.RawMessage, error) {
				return c.Translations(ctx)
			},
			want: "http://localhost:4567/data",
		},
		{
			name: "books defaults to web",
			call: func(ctx context.Context, c *bibleapi.Client) (json.RawMessage, error) {
				return c.Books(ctx, "")
			},
			want: "http://localhost:4567/data/web",
		},
		{
			name: "books with translation",
			call: func(ctx context.Context, c *bibleapi.Client) (json.RawMessage, error) {
				return c.Books(ctx, "niv")
			},
			want: "http://localhost:4567/data/niv",
		},
		{
			name: "chapters defaults to web",
			call: func(ctx context.Context, c *bibleapi.Client) (json.RawMessage, error) {
				return c.Chapters(ctx, "", "JHN")
			},
			want: "http://localhost:4567/data/web/JHN",
		},
		{
			name: "chapters with translation",
			call: func(ctx context.Context, c *bibleapi.Client) (json.RawMessage, error) {
				return c.Chapters(ctx, "web", "JHN")
			},
			want: "http://localhost:4567/data/web/JHN",
		},
		{
			name: "random without filter",
			call: func(ctx context.Context, c *bibleapi.Client) (json.RawMessage, error) {
				return c.Random(ctx, "", "")
			},
			want: "http://localhost:4567/data/web/random",
		},
		{
			name: "random with books list",
			call: func(ctx context.Context, c *bibleapi.Client) (json.RawMessage, error) {
				return c.Random(ctx, "JHN,MAT", "")
			},
			want: "http://localhost:4567/data/web/random/JHN,MAT",
		},
		{
			name: "random with testament",
			call: func(ctx context.Context, c *bibleapi.Client) (json.RawMessage, error) {
				return c.Random(ctx, "", "NT")
			},
			want: "http://localhost:4567/data/web/random/NT",
		},
		{
			name:    "trailing slashes stripped from base",
			baseURL: "http://localhost:4567///",
			call: func(ctx context.Context, c *bibleapi.Client) (json.RawMessage, error) {
				return c.Verse(ctx, "John 3:16", "")
			},
			want: "http://localhost:4567/John+3:16",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			baseURL := tt.baseURL
			if baseURL == "" {
				baseURL = "http://localhost:4567"
			}
			client, urls := newRecordingClient(baseURL, http.StatusOK, "{}")

			_, err := tt.call(context.Background(), client)
			require.NoError(t, err)
			require.Len(t, *urls, 1, "exactly one request per invocation")
			assert.Equal(t, tt.want, (*urls)[0])
		})
	}
}

func TestClient_PreservesBodyVerbatim(t *testing.T) {
	// 字段顺序与服务器返回保持一致
	body := `{"reference": "John 3:16", "text": "hi", "translation_id": "web"}`
	client, _ := newRecordingClient("http://localhost:4567", http.StatusOK, body)

	data, err := client.Verse(context.Background(), "John 3:16", "")
	require.NoError(t, err)
	assert.Equal(t, body, string(data))
}

func TestClient_StatusError(t *testing.T) {
	client, _ := newRecordingClient("http://localhost:4567", http.StatusNotFound, `{"error": "not found"}`)

	data, err := client.Verse(context.Background(), "Nope 1:1", "")
	require.Error(t, err)
	assert.Nil(t, data)

	var statusErr *bibleapi.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Equal(t, "HTTP 404", err.Error())
}

func TestClient_DecodeError(t *testing.T) {
	client, _ := newRecordingClient("http://localhost:4567", http.StatusOK, "<html>not json</html>")

	_, err := client.Translations(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")

	var statusErr *bibleapi.StatusError
	assert.False(t, errors.As(err, &statusErr), "decode failure is not a status error")
}

func TestClient_TransportError(t *testing.T) {
	httpc := &http.Client{
		Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			return nil, errors.New("connection refused")
		}),
	}
	client := bibleapi.New("http://localhost:4567", bibleapi.WithHTTPClient(httpc))

	_, err := client.Translations(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
