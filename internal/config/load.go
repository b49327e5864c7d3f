package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/urfave/cli/v3"
	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/260823-go-app-bible/internal/version"
)

// envBindings 环境变量到配置 key 的映射。
//
// 命名规则与配置 key 对应：点号转下划线并加 BIBLE_ 前缀。
var envBindings = map[string]string{
	"BIBLE_CLIENT_URL":     "client.url",
	"BIBLE_CLIENT_TIMEOUT": "client.timeout",
	"BIBLE_LOG_LEVEL":      "log.level",
	"BIBLE_LOG_FORMAT":     "log.format",
}

// DefaultPaths 返回默认配置文件的搜索顺序。
//
// 返回顺序即查找顺序，先命中的文件生效：
//  1. ./.bible.yaml - 当前目录应用配置
//  2. ~/.bible.yaml - 用户主目录配置
//  3. /etc/bible/config.yaml - 系统级配置
//  4. config.yaml - 当前目录通用配置
func DefaultPaths() []string {
	paths := []string{"." + version.AppRawName + ".yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, "."+version.AppRawName+".yaml"))
	}
	paths = append(paths, "/etc/"+version.AppRawName+"/config.yaml", "config.yaml")

	return paths
}

// Load 读取配置并按优先级合并。
//
// cmd 可为 nil（不读取 CLI flags）。paths 为空时使用 [DefaultPaths]。
// 默认值与配置文件内容都会进行 ${VAR:-default} 展开。
func Load(cmd *cli.Command, paths ...string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.Client.URL = expandEnv(cfg.Client.URL)

	// 2️⃣ 配置文件 (按顺序搜索，找到第一个即停止)
	if len(paths) == 0 {
		paths = DefaultPaths()
	}
	for _, path := range paths {
		content, err := os.ReadFile(path) //nolint:gosec // path is from trusted config
		if err != nil {
			continue // 文件不存在或无法读取，尝试下一个路径
		}

		fileMap := map[string]any{}
		if err := yamlv3.Unmarshal([]byte(expandEnv(string(content))), &fileMap); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
		if err := decodeConfigMap(fileMap, &cfg); err != nil {
			return nil, fmt.Errorf("apply config file %s: %w", path, err)
		}

		slog.Debug("Loaded config from file", "path", path)

		break
	}

	// 3️⃣ 环境变量
	overlay := map[string]any{}
	for envKey, configPath := range envBindings {
		if val := os.Getenv(envKey); val != "" {
			setByPath(overlay, configPath, val)
			slog.Debug("Loaded env binding", "env", envKey, "path", configPath)
		}
	}
	if len(overlay) > 0 {
		if err := decodeConfigMap(overlay, &cfg); err != nil {
			return nil, fmt.Errorf("apply env overrides: %w", err)
		}
	}

	// 4️⃣ CLI flags (最高优先级，仅当用户明确指定时)
	if cmd != nil {
		if cmd.IsSet("server") {
			cfg.Client.URL = cmd.String("server")
		}
		if cmd.IsSet("timeout") {
			cfg.Client.Timeout = cmd.Duration("timeout")
		}
		if cmd.IsSet("log-level") {
			cfg.Log.Level = cmd.String("log-level")
		}
		if cmd.IsSet("log-format") {
			cfg.Log.Format = cmd.String("log-format")
		}
	}

	return &cfg, nil
}

// setByPath 将 "a.b" 形式的 key 写入嵌套 map。
func setByPath(dst map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := dst
	for i, part := range parts {
		if i == len(parts)-1 {
			current[part] = value

			return
		}

		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
}

// decodeConfigMap 将部分配置 map 解码到结构体，未出现的 key 保留原值。
func decodeConfigMap(data map[string]any, out *Config) error {
	conf := &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "json",
	}
	decoder, err := mapstructure.NewDecoder(conf)
	if err != nil {
		return err
	}

	return decoder.Decode(data)
}
