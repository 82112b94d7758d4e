package lsp

import (
	"gosolid/errors"
	"gosolid/validation"
)

// Collection 可追加元素的集合能力
//
// 契约：Add 成功时 Size 恰好加一；Add 失败时 Size 不变。
type Collection[T any] interface {
	Add(item T) error
	Size() int
}

// CustomList 无界列表，Add 永不失败
type CustomList[T any] struct {
	items []T
}

// NewCustomList 创建空列表
func NewCustomList[T any]() *CustomList[T] {
	return &CustomList[T]{}
}

// Add 实现 Collection
func (l *CustomList[T]) Add(item T) error {
	l.items = append(l.items, item)
	return nil
}

// Size 实现 Collection
func (l *CustomList[T]) Size() int { return len(l.items) }

// Items 返回元素副本
func (l *CustomList[T]) Items() []T {
	return append([]T(nil), l.items...)
}

// BoundedList 有容量上限的列表
//
// 满时拒绝追加并返回 PRECONDITION_VIOLATION，这是它自身声明的前置条件，
// 不违背 Collection 契约。
type BoundedList[T any] struct {
	CustomList[T]
	maxSize int
}

// NewBoundedList 创建有界列表，maxSize 必须大于 0
func NewBoundedList[T any](maxSize int) (*BoundedList[T], error) {
	if err := validation.ValidatePositive(maxSize, "maxSize"); err != nil {
		return nil, err
	}
	return &BoundedList[T]{maxSize: maxSize}, nil
}

// Add 实现 Collection
func (l *BoundedList[T]) Add(item T) error {
	if l.Size() >= l.maxSize {
		return errors.NewPreconditionError("List is full")
	}
	return l.CustomList.Add(item)
}

// MaxSize 容量上限
func (l *BoundedList[T]) MaxSize() int { return l.maxSize }

var (
	_ Collection[string] = (*CustomList[string])(nil)
	_ Collection[string] = (*BoundedList[string])(nil)
)
