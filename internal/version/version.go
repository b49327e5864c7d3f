// Package version 提供应用名称与版本信息。
package version

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/urfave/cli/v3"
)

// AppRawName 应用名称，用于命令名与配置文件搜索路径。
const AppRawName = "bible"

// GetVersion 从模块构建信息读取版本号，无法确定时返回 "dev"。
func GetVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}

	return "dev"
}

// Command 打印版本信息。
var Command = &cli.Command{
	Name:  "version",
	Usage: "显示版本信息",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		_, err := fmt.Fprintln(cmd.Root().Writer, AppRawName+" "+GetVersion())

		return err
	},
}
