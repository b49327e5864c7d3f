package verse

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260823-go-app-bible/internal/command"
)

func action(ctx context.Context, cmd *cli.Command) error {
	reference := cmd.Args().First()
	if reference == "" {
		return command.Usagef("missing required argument: <reference> (e.g. 'John 3:16')")
	}

	client, err := command.NewClient(cmd)
	if err != nil {
		return err
	}

	data, err := client.Verse(ctx, reference, cmd.String("translation"))
	if err != nil {
		return err
	}

	return command.Output(cmd, data)
}
