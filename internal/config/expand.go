package config

import (
	"os"
	"strings"
)

// expandEnv 对输入字符串执行 Shell 风格的参数展开。
//
// 支持语法：
//   - ${VAR} - 变量替换，未设置或为空时展开为空字符串
//   - ${VAR:-default} - 未设置或为空时使用默认值
//
// 空值按未设置处理（":-" 语义）。缺少闭合括号的表达式保持原样。
func expandEnv(text string) string {
	if !strings.Contains(text, "${") {
		return text
	}

	var buf strings.Builder
	buf.Grow(len(text))

	for i := 0; i < len(text); {
		if text[i] != '$' || i+1 >= len(text) || text[i+1] != '{' {
			buf.WriteByte(text[i])
			i++

			continue
		}

		end := strings.IndexByte(text[i:], '}')
		if end == -1 {
			buf.WriteString(text[i:])

			break
		}

		expr := text[i+2 : i+end]
		name, fallback, hasFallback := strings.Cut(expr, ":-")
		if val := os.Getenv(name); val != "" {
			buf.WriteString(val)
		} else if hasFallback {
			buf.WriteString(fallback)
		}

		i += end + 1
	}

	return buf.String()
}
