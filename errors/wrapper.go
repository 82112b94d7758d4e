package errors

import (
	"context"
	stdErrors "errors"
	"fmt"
	"runtime"

	"gosolid/logging"
)

// Wrap 包装错误，添加错误码和上下文信息
// 建议：在 Dispatcher/Processor 边界使用，添加调用上下文
func Wrap(ctx context.Context, err error, code ErrorCode, msg string) error {
	if err == nil {
		return nil
	}

	_, file, line, _ := runtime.Caller(1)

	wrapped := WrapError(err, code, msg)

	// 避免重复记录，使用Debug级别
	logging.GetLogger().Debug(ctx, fmt.Sprintf("错误包装: %s (位置: %s:%d)", msg, file, line))

	return wrapped
}

// WrapWithLog 包装错误并记录警告日志
// 建议：用于需要立即记录的错误场景
func WrapWithLog(ctx context.Context, err error, code ErrorCode, msg string, fields ...logging.Field) error {
	if err == nil {
		return nil
	}

	_, file, line, _ := runtime.Caller(1)

	wrapped := WrapError(err, code, msg)

	allFields := append([]logging.Field{
		logging.Error(err),
		logging.String("error_code", string(code)),
		logging.String("location", fmt.Sprintf("%s:%d", file, line)),
	}, fields...)

	logging.GetLogger().Warn(ctx, msg, allFields...)

	return wrapped
}

// WrapKeepCode 包装错误并沿用原错误码（非 AppError 时使用 fallback）
func WrapKeepCode(err error, fallback ErrorCode, msg string) error {
	if err == nil {
		return nil
	}
	code := fallback
	var appErr *AppError
	if stdErrors.As(err, &appErr) {
		code = appErr.code
	}
	return WrapError(err, code, msg)
}

// NewValidationError 创建新的验证错误
func NewValidationError(msg string) error {
	return NewError(ErrCodeValidation, msg)
}
