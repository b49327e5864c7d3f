// Package bibleapi 提供 bible-api 服务的 HTTP 客户端。
//
// 客户端把每个操作映射为一次 GET 请求，响应体按原样返回
// （json.RawMessage），不解析、不重排字段。
package bibleapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// DefaultTranslation 为 books/chapters 的默认译本。
const DefaultTranslation = "web"

// Client bible-api 客户端。
type Client struct {
	baseURL string
	httpc   *http.Client
}

// Option 客户端构造选项。
type Option func(*Client)

// WithHTTPClient 替换底层 HTTP 客户端，主要用于测试。
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// WithTimeout 设置请求超时时间，0 表示不限制。
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpc.Timeout = timeout
	}
}

// New 根据服务器地址构造客户端，末尾的 "/" 会被去除。
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Verse 查询经文或段落。
//
// reference 中的空格替换为 "+" 后直接拼入路径，其余字符原样保留，
// 与服务器期望的请求形式保持一致。translation 为空时不附加查询参数。
func (c *Client) Verse(ctx context.Context, reference, translation string) (json.RawMessage, error) {
	url := c.baseURL + "/" + strings.ReplaceAll(reference, " ", "+")
	if translation != "" {
		url += "?translation=" + translation
	}

	return c.get(ctx, url)
}

// Translations 列出可用译本。
func (c *Client) Translations(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, c.baseURL+"/data")
}

// Books 列出译本中的书卷，translation 为空时使用 [DefaultTranslation]。
func (c *Client) Books(ctx context.Context, translation string) (json.RawMessage, error) {
	if translation == "" {
		translation = DefaultTranslation
	}

	return c.get(ctx, c.baseURL+"/data/"+translation)
}

// Chapters 列出书卷中的章节，translation 为空时使用 [DefaultTranslation]。
func (c *Client) Chapters(ctx context.Context, translation, book string) (json.RawMessage, error) {
	if translation == "" {
		translation = DefaultTranslation
	}

	return c.get(ctx, c.baseURL+"/data/"+translation+"/"+book)
}

// Random 获取随机经文，固定使用 web 译本。
//
// books 为逗号分隔的书卷 ID 列表；books 为空时才使用 testament
// (OT/NT)。两者的互斥校验由调用方在发起请求前完成。
func (c *Client) Random(ctx context.Context, books, testament string) (json.RawMessage, error) {
	url := c.baseURL + "/data/" + DefaultTranslation + "/random"
	if books != "" {
		url += "/" + books
	} else if testament != "" {
		url += "/" + testament
	}

	return c.get(ctx, url)
}

// get 发起一次 GET 请求并校验响应体为合法 JSON。
func (c *Client) get(ctx context.Context, url string) (json.RawMessage, error) {
	slog.Debug("Requesting", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", url, err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	slog.Debug("Received response", "status", resp.Status)

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response from %s: %w", url, err)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("decode response from %s: body is not valid JSON", url)
	}

	return json.RawMessage(body), nil
}
