package capability

import (
	"context"
	"fmt"
	"time"

	"gosolid/errors"
	"gosolid/logging"
)

// LoggingMiddleware 记录每次分派的开始、耗时与结果
type LoggingMiddleware[C any, R any] struct {
	logger    logging.Logger
	operation string
}

// NewLoggingMiddleware 创建日志中间件
//
// 参数：
//   - logger: 日志器（nil 时使用全局 Logger）
//   - operation: 操作名（写入日志字段）
func NewLoggingMiddleware[C any, R any](logger logging.Logger, operation string) *LoggingMiddleware[C, R] {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &LoggingMiddleware[C, R]{logger: logger, operation: operation}
}

// Name 实现 IMiddleware 接口
func (m *LoggingMiddleware[C, R]) Name() string { return "Logging" }

// Handle 实现 IMiddleware 接口
func (m *LoggingMiddleware[C, R]) Handle(ctx context.Context, v C, next Operation[C, R]) (R, error) {
	start := time.Now()
	m.logger.Debug(ctx, "dispatch start", logging.String("operation", m.operation))

	r, err := next(ctx, v)
	if err != nil {
		m.logger.Warn(ctx, "dispatch failed",
			logging.String("operation", m.operation),
			logging.String("error_code", string(errors.GetErrorCode(err))),
			logging.Error(err),
		)
		return r, err
	}

	m.logger.Info(ctx, "dispatch completed",
		logging.String("operation", m.operation),
		logging.Duration("elapsed", time.Since(start)),
	)
	return r, nil
}

// ValidationMiddleware 在执行操作前校验输入
//
// 校验失败时中断执行链，直接返回校验器的错误。
type ValidationMiddleware[C any, R any] struct {
	validate func(C) error
}

// NewValidationMiddleware 创建校验中间件
func NewValidationMiddleware[C any, R any](validate func(C) error) *ValidationMiddleware[C, R] {
	return &ValidationMiddleware[C, R]{validate: validate}
}

// Name 实现 IMiddleware 接口
func (m *ValidationMiddleware[C, R]) Name() string { return "Validation" }

// Handle 实现 IMiddleware 接口
func (m *ValidationMiddleware[C, R]) Handle(ctx context.Context, v C, next Operation[C, R]) (R, error) {
	if m.validate != nil {
		if err := m.validate(v); err != nil {
			var zero R
			return zero, err
		}
	}
	return next(ctx, v)
}

// RecoverMiddleware 将操作中的 panic 转换为 INTERNAL_ERROR
type RecoverMiddleware[C any, R any] struct{}

// NewRecoverMiddleware 创建恢复中间件
func NewRecoverMiddleware[C any, R any]() *RecoverMiddleware[C, R] {
	return &RecoverMiddleware[C, R]{}
}

// Name 实现 IMiddleware 接口
func (m *RecoverMiddleware[C, R]) Name() string { return "Recover" }

// Handle 实现 IMiddleware 接口
func (m *RecoverMiddleware[C, R]) Handle(ctx context.Context, v C, next Operation[C, R]) (r R, err error) {
	defer func() {
		if p := recover(); p != nil {
			var zero R
			r = zero
			err = errors.NewError(errors.ErrCodeInternal, fmt.Sprintf("operation panicked: %v", p)).
				WithContext("panic", p)
		}
	}()
	return next(ctx, v)
}
