// Package command 提供各子命令共享的基础设施。
package command

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260823-go-app-bible/internal/config"
	"github.com/lwmacct/260823-go-app-bible/pkg/bibleapi"
)

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()

// NewClient 加载配置、初始化日志并构造 API 客户端。
func NewClient(cmd *cli.Command) (*bibleapi.Client, error) {
	cfg, err := config.Load(cmd)
	if err != nil {
		return nil, err
	}
	SetupLogging(cfg.Log)

	return bibleapi.New(cfg.Client.URL, bibleapi.WithTimeout(cfg.Client.Timeout)), nil
}

// Output 将响应 JSON 写入根命令的输出流。
func Output(cmd *cli.Command, data json.RawMessage) error {
	return WriteJSON(cmd.Root().Writer, data)
}

// WriteJSON 将原始 JSON 以两空格缩进写入 w，并追加换行。
//
// 通过 json.Indent 重排版而非解码后再编码，保留服务器的字段顺序。
func WriteJSON(w io.Writer, data json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return fmt.Errorf("format response: %w", err)
	}
	buf.WriteByte('\n')

	_, err := w.Write(buf.Bytes())

	return err
}
