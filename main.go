package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260823-go-app-bible/internal/command"
	"github.com/lwmacct/260823-go-app-bible/internal/command/books"
	"github.com/lwmacct/260823-go-app-bible/internal/command/chapters"
	"github.com/lwmacct/260823-go-app-bible/internal/command/random"
	"github.com/lwmacct/260823-go-app-bible/internal/command/translations"
	"github.com/lwmacct/260823-go-app-bible/internal/command/verse"
	"github.com/lwmacct/260823-go-app-bible/internal/version"
)

func main() {
	app := newApp()

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var usageErr *command.UsageError
		if errors.As(err, &usageErr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// newApp 构造根命令，便于测试时注入输出流。
func newApp() *cli.Command {
	return &cli.Command{
		Name:    version.AppRawName,
		Usage:   "Bible API 命令行客户端",
		Version: version.GetVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server",
				Aliases: []string{"s"},
				Value:   command.Defaults.Client.URL,
				Usage:   "Bible API 服务器地址",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: command.Defaults.Client.Timeout,
				Usage: "请求超时时间 (0 表示不限制)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: command.Defaults.Log.Level,
				Usage: "日志级别 (debug/info/warn/error)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Value: command.Defaults.Log.Format,
				Usage: "日志格式 (text/json)",
			},
		},
		Commands: []*cli.Command{
			verse.Command,
			translations.Command,
			books.Command,
			chapters.Command,
			random.Command,
			version.Command,
		},
	}
}
