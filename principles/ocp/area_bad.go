package ocp

import "math"

// AreaCalculatorBad 违反开闭原则的面积计算器
//
// 它按具体类型逐一分支：每新增一种图形都必须修改这里，
// 未知图形静默返回 0。保留它只作为反例，与 AreaCalculator 对照。
type AreaCalculatorBad struct{}

// CalculateArea 按具体类型计算面积
func (AreaCalculatorBad) CalculateArea(shape any) float64 {
	switch s := shape.(type) {
	case *Circle:
		return math.Pi * s.radius * s.radius
	case *Rectangle:
		return s.length * s.width
	case *Triangle:
		return 0.5 * s.base * s.height
	}
	return 0
}
