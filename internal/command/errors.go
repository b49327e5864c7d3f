package command

import "fmt"

// UsageError 表示命令行参数错误，进程以退出码 2 结束，且不会发起网络请求。
type UsageError struct {
	Message string
}

// Error 实现 error 接口。
func (e *UsageError) Error() string {
	return e.Message
}

// Usagef 构造带格式化消息的 [UsageError]。
func Usagef(format string, args ...any) *UsageError {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}
