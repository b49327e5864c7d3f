// Package chapters 提供章节列表命令。
package chapters

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260823-go-app-bible/internal/command"
	"github.com/lwmacct/260823-go-app-bible/pkg/bibleapi"
)

// Command 章节列表命令
var Command = &cli.Command{
	Name:      "chapters",
	Usage:     "列出书卷中的章节",
	ArgsUsage: "<book>",
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
	book := cmd.Args().First()
	if book == "" {
		return command.Usagef("missing required argument: <book> (e.g. JHN)")
	}

	client, err := command.NewClient(cmd)
	if err != nil {
		return err
	}

	data, err := client.Chapters(ctx, cmd.String("translation"), book)
	if err != nil {
		return err
	}

	return command.Output(cmd, data)
}
