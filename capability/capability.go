// Package capability 提供“能力分派”机制：调用方只依赖能力（接口）声明的操作，
// 由具体变体自己给出行为，分派器从不识别变体的具体类型。
//
// 核心概念：
//   - 能力（Capability）：一组命名操作的接口，自身无状态
//   - 变体（Variant）：实现一个或多个能力的具体类型，字段在构造时确定
//   - 分派器（Dispatcher）：接受任意满足能力的值并调用其操作
//
// 新增变体时，能力与分派器的源码都不需要修改。
package capability

import (
	"context"

	"gosolid/errors"
)

// Operation 能力上的一个操作
//
// C 通常是接口类型（能力），R 是操作结果。
type Operation[C any, R any] func(ctx context.Context, v C) (R, error)

// Invoke 以无状态方式调用操作
//
// 参数：
//   - ctx: 上下文
//   - v: 满足能力 C 的任意值
//   - op: 要执行的操作
//
// 返回：
//   - R: 操作结果
//   - error: op 为 nil 时返回 INVALID_INPUT，否则透传操作的错误
func Invoke[C any, R any](ctx context.Context, v C, op Operation[C, R]) (R, error) {
	if op == nil {
		var zero R
		return zero, errors.NewError(errors.ErrCodeInvalidInput, "operation cannot be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return op(ctx, v)
}

// Func 将不会失败的纯函数提升为 Operation
//
// 例如 Func(Shape.Area) 即得到一个计算面积的操作。
func Func[C any, R any](fn func(C) R) Operation[C, R] {
	if fn == nil {
		return nil
	}
	return func(_ context.Context, v C) (R, error) {
		return fn(v), nil
	}
}
