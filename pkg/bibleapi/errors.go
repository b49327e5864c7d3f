package bibleapi

import "fmt"

// StatusError 表示服务器返回了失败状态码 (>= 400)。
type StatusError struct {
	StatusCode int
}

// Error 实现 error 接口，格式与 CLI 的错误输出约定一致。
func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}
