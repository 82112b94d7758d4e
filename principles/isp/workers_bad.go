package isp

import "gosolid/errors"

// WorkerBad 违反接口隔离原则的胖接口
type WorkerBad interface {
	Work() string
	Eat() error
}

// HumanWorkerBad 能兑现全部操作
type HumanWorkerBad struct{}

// Work 实现 WorkerBad
func (HumanWorkerBad) Work() string { return "Human working..." }

// Eat 实现 WorkerBad
func (HumanWorkerBad) Eat() error { return nil }

// RobotWorkerBad 被迫实现 Eat
type RobotWorkerBad struct{}

// Work 实现 WorkerBad
func (RobotWorkerBad) Work() string { return "Robot working..." }

// Eat 总是返回 UNSUPPORTED_OPERATION
func (RobotWorkerBad) Eat() error {
	return errors.NewUnsupportedOperationError("Eat", "Robots don't eat!")
}

var (
	_ WorkerBad = HumanWorkerBad{}
	_ WorkerBad = RobotWorkerBad{}
)
