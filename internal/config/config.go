// Package config 提供应用配置管理。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - DefaultPaths() 按顺序查找，命中首个文件生效
//  3. 环境变量 - BIBLE_ 前缀 (见 envBindings)
//  4. CLI flags - 仅当用户明确指定时覆盖
package config

import (
	"time"
)

// Config 应用配置。
type Config struct {
	Client ClientConfig `json:"client" desc:"客户端配置"`
	Log    LogConfig    `json:"log" desc:"日志配置"`
}

// ClientConfig 客户端配置。
type ClientConfig struct {
	URL     string        `json:"url" desc:"Bible API 服务器地址"`
	Timeout time.Duration `json:"timeout" desc:"请求超时时间 (0 表示不限制)"`
}

// LogConfig 日志配置。
type LogConfig struct {
	Level  string `json:"level" desc:"日志级别 (debug/info/warn/error)"`
	Format string `json:"format" desc:"日志格式 (text/json)"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Client: ClientConfig{
			URL:     `${BIBLE_API_URL:-http://api:4567}`,
			Timeout: 0,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
