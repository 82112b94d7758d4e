// Package ocp 演示开闭原则：对扩展开放，对修改关闭。
//
// 面积计算与支付处理都只依赖能力接口；新增图形或支付方式只需新增变体，
// AreaCalculator 与 PaymentProcessor 的源码保持不变。
package ocp

import "math"

// Shape 面积能力
type Shape interface {
	Area() float64
}

// Circle 圆
type Circle struct {
	radius float64
}

// NewCircle 创建圆
func NewCircle(radius float64) *Circle {
	return &Circle{radius: radius}
}

// Radius 半径
func (c *Circle) Radius() float64 { return c.radius }

// Area 实现 Shape
func (c *Circle) Area() float64 {
	return math.Pi * c.radius * c.radius
}

// Rectangle 矩形
type Rectangle struct {
	length float64
	width  float64
}

// NewRectangle 创建矩形
func NewRectangle(length, width float64) *Rectangle {
	return &Rectangle{length: length, width: width}
}

// Length 长
func (r *Rectangle) Length() float64 { return r.length }

// Width 宽
func (r *Rectangle) Width() float64 { return r.width }

// Area 实现 Shape
func (r *Rectangle) Area() float64 {
	return r.length * r.width
}

// Triangle 三角形（底 × 高 / 2）
type Triangle struct {
	base   float64
	height float64
}

// NewTriangle 创建三角形
func NewTriangle(base, height float64) *Triangle {
	return &Triangle{base: base, height: height}
}

// Base 底
func (t *Triangle) Base() float64 { return t.base }

// Height 高
func (t *Triangle) Height() float64 { return t.height }

// Area 实现 Shape
func (t *Triangle) Area() float64 {
	return 0.5 * t.base * t.height
}

var (
	_ Shape = (*Circle)(nil)
	_ Shape = (*Rectangle)(nil)
	_ Shape = (*Triangle)(nil)
)
