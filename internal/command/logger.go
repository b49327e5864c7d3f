package command

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/lwmacct/260823-go-app-bible/internal/config"
)

var logOnce sync.Once

// SetupLogging 根据配置初始化全局 slog，仅首次调用生效。
//
// 日志写入 stderr，stdout 只输出响应 JSON。
func SetupLogging(cfg config.LogConfig) {
	logOnce.Do(func() {
		slog.SetDefault(newLogger(cfg.Level, cfg.Format, os.Stderr))
	})
}

func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
