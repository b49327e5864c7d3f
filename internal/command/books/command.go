// Package books 提供书卷列表命令。
package books

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260823-go-app-bible/internal/command"
	"github.com/lwmacct/260823-go-app-bible/pkg/bibleapi"
)

// Command 书卷列表命令
var Command = &cli.Command{
	Name:  "books",
	Usage: "列出译本中的书卷",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "translation",
			Aliases: []string{"t"},
			Value:   bibleapi.DefaultTranslation,
			Usage:   "译本 ID (默认: web)",
		},
	},
	Action: action,
}

func action(ctx context.Context, cmd *cli.Command) error {
	client, err := command.NewClient(cmd)
	if err != nil {
		return err
	}

	data, err := client.Books(ctx, cmd.String("translation"))
	if err != nil {
		return err
	}

	return command.Output(cmd, data)
}
