// Package random 提供随机经文命令。
package random

import (
	"github.com/urfave/cli/v3"
)

// Command 随机经文命令，固定使用 web 译本。
var Command = &cli.Command{
	Name:  "random",
	Usage: "获取随机经文",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "books",
			Usage: "逗号分隔的书卷 ID 列表 (如 JHN,MAT)",
		},
		&cli.StringFlag{
			Name:  "testament",
			Usage: "限定新约或旧约 (OT/NT)",
		},
	},
	Action: action,
}
