package ocp

import (
	"context"

	"gosolid/capability"
	"gosolid/errors"
	"gosolid/logging"
)

// AreaCalculator 遵循开闭原则的面积计算器
//
// 只调用 Shape.Area，新增图形无需修改。
type AreaCalculator struct {
	dispatcher *capability.Dispatcher[Shape, float64]
}

// NewAreaCalculator 创建面积计算器
//
// 参数：
//   - logger: 组件 logger，nil 时从全局 Logger 派生
func NewAreaCalculator(logger logging.Logger) *AreaCalculator {
	if logger == nil {
		logger = logging.ComponentLogger("ocp.area_calculator")
	}
	d := capability.NewDispatcher("area", capability.Func(Shape.Area),
		capability.WithLogger[Shape, float64](logger),
		capability.WithMiddlewares[Shape, float64](
			capability.NewLoggingMiddleware[Shape, float64](logger, "Area"),
			capability.NewValidationMiddleware[Shape, float64](requireShape),
			capability.NewRecoverMiddleware[Shape, float64](),
		),
	)
	return &AreaCalculator{dispatcher: d}
}

// CalculateArea 计算单个图形面积
func (c *AreaCalculator) CalculateArea(ctx context.Context, shape Shape) (float64, error) {
	return c.dispatcher.Dispatch(ctx, shape)
}

// TotalArea 计算多个图形的面积之和
func (c *AreaCalculator) TotalArea(ctx context.Context, shapes ...Shape) (float64, error) {
	areas, err := c.dispatcher.DispatchAll(ctx, shapes...)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, a := range areas {
		total += a
	}
	return total, nil
}

func requireShape(s Shape) error {
	if s == nil {
		return errors.NewError(errors.ErrCodeInvalidInput, "shape cannot be nil")
	}
	return nil
}
