package lsp

import (
	"context"

	"gosolid/capability"
)

// Shape 只描述行为的面积能力，矩形与正方形是它的兄弟变体
type Shape interface {
	Area() int
}

// ProperRectangle 不可变矩形
type ProperRectangle struct {
	width  int
	height int
}

// NewProperRectangle 创建矩形
func NewProperRectangle(width, height int) ProperRectangle {
	return ProperRectangle{width: width, height: height}
}

// Width 宽
func (r ProperRectangle) Width() int { return r.width }

// Height 高
func (r ProperRectangle) Height() int { return r.height }

// WithWidth 返回修改宽度后的副本，高度不变
func (r ProperRectangle) WithWidth(width int) ProperRectangle {
	r.width = width
	return r
}

// WithHeight 返回修改高度后的副本，宽度不变
func (r ProperRectangle) WithHeight(height int) ProperRectangle {
	r.height = height
	return r
}

// Area 实现 Shape
func (r ProperRectangle) Area() int { return r.width * r.height }

// ProperSquare 不可变正方形
type ProperSquare struct {
	side int
}

// NewProperSquare 创建正方形
func NewProperSquare(side int) ProperSquare {
	return ProperSquare{side: side}
}

// Side 边长
func (s ProperSquare) Side() int { return s.side }

// WithSide 返回修改边长后的副本
func (s ProperSquare) WithSide(side int) ProperSquare {
	s.side = side
	return s
}

// Area 实现 Shape
func (s ProperSquare) Area() int { return s.side * s.side }

var (
	_ Shape = ProperRectangle{}
	_ Shape = ProperSquare{}
)

// Areas 计算每个图形的面积
func Areas(ctx context.Context, shapes ...Shape) ([]int, error) {
	d := capability.NewDispatcher("area", capability.Func(Shape.Area))
	return d.DispatchAll(ctx, shapes...)
}
