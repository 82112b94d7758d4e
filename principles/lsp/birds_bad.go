package lsp

import "gosolid/errors"

// BirdBad 违反里氏替换原则的鸟能力：强制所有鸟实现 Fly
type BirdBad interface {
	MakeSound() string
	Fly() error
}

// SparrowBad 能兑现 Fly
type SparrowBad struct{}

// MakeSound 实现 BirdBad
func (SparrowBad) MakeSound() string { return "Chirp chirp!" }

// Fly 实现 BirdBad
func (SparrowBad) Fly() error { return nil }

// OstrichBad 声明了 Fly 却无法兑现
type OstrichBad struct{}

// MakeSound 实现 BirdBad
func (OstrichBad) MakeSound() string { return "Boom boom!" }

// Fly 总是返回 UNSUPPORTED_OPERATION
func (OstrichBad) Fly() error {
	return errors.NewUnsupportedOperationError("Fly", "Ostriches can't fly!")
}

var (
	_ BirdBad = SparrowBad{}
	_ BirdBad = OstrichBad{}
)
