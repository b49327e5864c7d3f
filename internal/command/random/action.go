package random

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260823-go-app-bible/internal/command"
)

func action(ctx context.Context, cmd *cli.Command) error {
	books := cmd.String("books")
	testament := cmd.String("testament")

	// 互斥校验在发起任何网络请求之前完成
	if books != "" && testament != "" {
		return command.Usagef("--books and --testament are mutually exclusive")
	}
	if testament != "" && testament != "OT" && testament != "NT" {
		return command.Usagef("invalid --testament %q: must be OT or NT", testament)
	}

	client, err := command.NewClient(cmd)
	if err != nil {
		return err
	}

	data, err := client.Random(ctx, books, testament)
	if err != nil {
		return err
	}

	return command.Output(cmd, data)
}
