// Package apperrors defines coded errors reported at the edges of the app.
package apperrors

import "fmt"

// 错误码
const (
	ErrCodeUnknownVariant = 1001
	ErrCodeUnknownRank    = 1002
	ErrCodeInvalidTotal   = 1003
	ErrCodeInvalidColumn  = 1004
	ErrCodeInvalidWindow  = 1005
	ErrCodeInvalidJournal = 1006
)

// ConfigError 配置错误
type ConfigError struct {
	Code    int
	Message string
	Detail  string
}

func (e *ConfigError) Error() string {
	if e.Detail == "" {
		return e.Message
	}
	return e.Message + ": " + e.Detail
}

// Is matches any ConfigError with the same code, so errors.Is works on
// values returned by With.
func (e *ConfigError) Is(target error) bool {
	t, ok := target.(*ConfigError)
	return ok && t.Code == e.Code
}

// With returns a copy of e carrying a formatted detail.
func (e *ConfigError) With(format string, args ...any) *ConfigError {
	return &ConfigError{
		Code:    e.Code,
		Message: e.Message,
		Detail:  fmt.Sprintf(format, args...),
	}
}

// 预定义错误
var (
	ErrUnknownVariant = &ConfigError{Code: ErrCodeUnknownVariant, Message: "未知的牌桌类型"}
	ErrUnknownRank    = &ConfigError{Code: ErrCodeUnknownRank, Message: "无法识别的点数"}
	ErrInvalidTotal   = &ConfigError{Code: ErrCodeInvalidTotal, Message: "牌数必须大于等于 0"}
	ErrInvalidColumn  = &ConfigError{Code: ErrCodeInvalidColumn, Message: "高亮列必须在 0-4 之间"}
	ErrInvalidWindow  = &ConfigError{Code: ErrCodeInvalidWindow, Message: "双击间隔必须大于 0"}
	ErrInvalidJournal = &ConfigError{Code: ErrCodeInvalidJournal, Message: "记录配置无效"}
)
