// Package isp 演示接口隔离原则：不强迫变体实现它用不到的能力。
//
// 胖接口被拆成最小的能力，变体只声明自己能完整兑现的那部分，
// 调用未实现的能力在编译期即不可能发生。
package isp

import (
	"context"

	"gosolid/capability"
	"gosolid/logging"
)

// Workable 工作能力
type Workable interface {
	Work() string
}

// Eatable 进食能力
type Eatable interface {
	Eat() string
}

// HumanWorker 人类员工：工作与进食
type HumanWorker struct{}

// Work 实现 Workable
func (HumanWorker) Work() string { return "Human working..." }

// Eat 实现 Eatable
func (HumanWorker) Eat() string { return "Human eating lunch..." }

// RobotWorker 机器人：只工作
type RobotWorker struct{}

// Work 实现 Workable
func (RobotWorker) Work() string { return "Robot working..." }

var (
	_ Workable = HumanWorker{}
	_ Eatable  = HumanWorker{}
	_ Workable = RobotWorker{}
)

// RunShift 让每个员工工作
func RunShift(ctx context.Context, workers ...Workable) ([]string, error) {
	return newDispatcher("shift", capability.Func(Workable.Work)).DispatchAll(ctx, workers...)
}

// LunchBreak 午休，只接受能进食的变体
func LunchBreak(ctx context.Context, eaters ...Eatable) ([]string, error) {
	return newDispatcher("lunch", capability.Func(Eatable.Eat)).DispatchAll(ctx, eaters...)
}

func newDispatcher[C any](name string, op capability.Operation[C, string]) *capability.Dispatcher[C, string] {
	logger := logging.ComponentLogger("isp." + name)
	return capability.NewDispatcher(name, op,
		capability.WithLogger[C, string](logger),
		capability.WithMiddlewares[C, string](
			capability.NewLoggingMiddleware[C, string](logger, name),
			capability.NewRecoverMiddleware[C, string](),
		),
	)
}
