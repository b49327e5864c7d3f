// Package translations 提供译本列表命令。
package translations

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260823-go-app-bible/internal/command"
)

// Command 译本列表命令
var Command = &cli.Command{
	Name:   "translations",
	Usage:  "列出可用译本",
	Action: action,
}

func action(ctx context.Context, cmd *cli.Command) error {
	client, err := command.NewClient(cmd)
	if err != nil {
		return err
	}

	data, err := client.Translations(ctx)
	if err != nil {
		return err
	}

	return command.Output(cmd, data)
}
