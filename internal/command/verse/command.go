// Package verse 提供经文查询命令。
package verse

import (
	"github.com/urfave/cli/v3"
)

// Command 经文查询命令
var Command = &cli.Command{
	Name:      "verse",
	Usage:     "查询经文或段落",
	ArgsUsage: "<reference>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "translation",
			Aliases: []string{"t"},
			Usage:   "译本 ID",
		},
	},
	Action: action,
}
