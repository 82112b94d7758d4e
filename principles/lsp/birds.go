// Package lsp 演示里氏替换原则：子类型必须能替换其基类型而不破坏调用方的预期。
//
// 能力只承诺每个变体都能完整兑现的行为：所有鸟都会叫，只有部分鸟会飞。
package lsp

import (
	"context"

	"gosolid/capability"
	"gosolid/logging"
)

// Bird 所有鸟都具备的能力
type Bird interface {
	MakeSound() string
}

// Flyer 会飞
type Flyer interface {
	Fly() string
}

// Swimmer 会游泳
type Swimmer interface {
	Swim() string
}

// Sparrow 麻雀
type Sparrow struct{}

// MakeSound 实现 Bird
func (Sparrow) MakeSound() string { return "Chirp chirp!" }

// Fly 实现 Flyer
func (Sparrow) Fly() string { return "Sparrow flying" }

// Duck 鸭子
type Duck struct{}

// MakeSound 实现 Bird
func (Duck) MakeSound() string { return "Quack quack!" }

// Fly 实现 Flyer
func (Duck) Fly() string { return "Duck flying" }

// Swim 实现 Swimmer
func (Duck) Swim() string { return "Duck swimming" }

// Ostrich 鸵鸟：不声明 Flyer
type Ostrich struct{}

// MakeSound 实现 Bird
func (Ostrich) MakeSound() string { return "Boom boom!" }

var (
	_ Bird    = Sparrow{}
	_ Bird    = Duck{}
	_ Bird    = Ostrich{}
	_ Flyer   = Sparrow{}
	_ Flyer   = Duck{}
	_ Swimmer = Duck{}
)

// Chorus 让每只鸟依次发声
func Chorus(ctx context.Context, birds ...Bird) ([]string, error) {
	return newDispatcher("chorus", capability.Func(Bird.MakeSound)).DispatchAll(ctx, birds...)
}

// Flight 让每个会飞的变体起飞，不会飞的鸟在类型层面无法传入
func Flight(ctx context.Context, flyers ...Flyer) ([]string, error) {
	return newDispatcher("flight", capability.Func(Flyer.Fly)).DispatchAll(ctx, flyers...)
}

func newDispatcher[C any](name string, op capability.Operation[C, string]) *capability.Dispatcher[C, string] {
	logger := logging.ComponentLogger("lsp." + name)
	return capability.NewDispatcher(name, op,
		capability.WithLogger[C, string](logger),
		capability.WithMiddlewares[C, string](
			capability.NewRecoverMiddleware[C, string](),
		),
	)
}
