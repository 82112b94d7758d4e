package capability

import (
	"context"
	"fmt"

	"gosolid/errors"
	"gosolid/logging"
)

// IMiddleware 分派中间件
//
// 中间件只能看到能力 C 本身，与分派器一样不得识别变体的具体类型。
type IMiddleware[C any, R any] interface {
	Handle(ctx context.Context, v C, next Operation[C, R]) (R, error)
	Name() string
}

// MiddlewareFunc 将函数适配为 IMiddleware
type MiddlewareFunc[C any, R any] struct {
	name string
	fn   func(ctx context.Context, v C, next Operation[C, R]) (R, error)
}

// NewMiddlewareFunc 创建函数式中间件
func NewMiddlewareFunc[C any, R any](name string, fn func(ctx context.Context, v C, next Operation[C, R]) (R, error)) *MiddlewareFunc[C, R] {
	return &MiddlewareFunc[C, R]{name: name, fn: fn}
}

// Handle 实现 IMiddleware 接口
func (m *MiddlewareFunc[C, R]) Handle(ctx context.Context, v C, next Operation[C, R]) (R, error) {
	return m.fn(ctx, v, next)
}

// Name 实现 IMiddleware 接口
func (m *MiddlewareFunc[C, R]) Name() string {
	return m.name
}

// Dispatcher 能力分派器
//
// Dispatcher 只持有操作和中间件链，不持有任何变体数据。
// 新增变体不需要修改 Dispatcher。
type Dispatcher[C any, R any] struct {
	name        string
	op          Operation[C, R]
	middlewares []IMiddleware[C, R]
	logger      logging.Logger
}

// Option 分派器选项
type Option[C any, R any] func(*Dispatcher[C, R])

// WithLogger 注入组件级 logger
func WithLogger[C any, R any](logger logging.Logger) Option[C, R] {
	return func(d *Dispatcher[C, R]) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithMiddlewares 预置中间件（按顺序，先注册者在最外层）
func WithMiddlewares[C any, R any](middlewares ...IMiddleware[C, R]) Option[C, R] {
	return func(d *Dispatcher[C, R]) {
		d.middlewares = append(d.middlewares, middlewares...)
	}
}

// NewDispatcher 创建分派器
//
// 参数：
//   - name: 分派器名称（用于日志与错误信息）
//   - op: 要分派的能力操作
//   - opts: 可选配置
//
// 返回：
//   - *Dispatcher[C, R]: 分派器实例
func NewDispatcher[C any, R any](name string, op Operation[C, R], opts ...Option[C, R]) *Dispatcher[C, R] {
	d := &Dispatcher[C, R]{
		name:        name,
		op:          op,
		middlewares: make([]IMiddleware[C, R], 0),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = logging.ComponentLogger("capability.dispatcher").
			WithFields(logging.String("dispatcher", name))
	}
	return d
}

// Name 返回分派器名称
func (d *Dispatcher[C, R]) Name() string {
	return d.name
}

// Use 注册中间件
func (d *Dispatcher[C, R]) Use(middleware IMiddleware[C, R]) {
	if middleware == nil {
		return
	}
	d.middlewares = append(d.middlewares, middleware)
}

// Dispatch 对单个值执行操作（经过中间件链）
func (d *Dispatcher[C, R]) Dispatch(ctx context.Context, v C) (R, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if d.op == nil {
		var zero R
		return zero, errors.NewError(errors.ErrCodeInvalidInput,
			fmt.Sprintf("dispatcher %s has no operation", d.name))
	}
	return d.chain()(ctx, v)
}

// DispatchAll 依次分派多个值，遇到第一个错误即停止
//
// 返回已成功的结果以及带下标上下文的错误（保留原错误码）。
func (d *Dispatcher[C, R]) DispatchAll(ctx context.Context, values ...C) ([]R, error) {
	results := make([]R, 0, len(values))
	for i, v := range values {
		r, err := d.Dispatch(ctx, v)
		if err != nil {
			d.logger.Warn(ctx, "dispatch aborted", logging.Int("index", i), logging.Error(err))
			return results, errors.WrapKeepCode(err, errors.ErrCodeInternal,
				fmt.Sprintf("%s: element %d", d.name, i))
		}
		results = append(results, r)
	}
	return results, nil
}

// chain 构建中间件链
func (d *Dispatcher[C, R]) chain() Operation[C, R] {
	next := d.op
	for i := len(d.middlewares) - 1; i >= 0; i-- {
		middleware := d.middlewares[i]
		currentNext := next
		next = func(ctx context.Context, v C) (R, error) {
			return middleware.Handle(ctx, v, currentNext)
		}
	}
	return next
}
