package lsp

import (
	"context"
	"fmt"

	"gosolid/capability"
	"gosolid/errors"
)

// RectangleContract ResizableRectangle 的可替换性契约
//
// Rectangle 通过；Square 因为设置一边会改变另一边而失败。
func RectangleContract() capability.Contract[ResizableRectangle] {
	return capability.NewContract("rectangle",
		"width and height vary independently",
		capability.Check[ResizableRectangle]{
			Name: "set height keeps width",
			Verify: func(ctx context.Context, r ResizableRectangle) error {
				r.SetWidth(5)
				r.SetHeight(4)
				if r.Width() != 5 {
					return fmt.Errorf("width changed to %d after SetHeight(4)", r.Width())
				}
				return nil
			},
		},
		capability.Check[ResizableRectangle]{
			Name: "set width keeps height",
			Verify: func(ctx context.Context, r ResizableRectangle) error {
				r.SetHeight(4)
				r.SetWidth(5)
				if r.Height() != 4 {
					return fmt.Errorf("height changed to %d after SetWidth(5)", r.Height())
				}
				return nil
			},
		},
		capability.Check[ResizableRectangle]{
			Name: "area is width times height",
			Verify: func(ctx context.Context, r ResizableRectangle) error {
				r.SetWidth(5)
				r.SetHeight(4)
				if r.Area() != 20 {
					return fmt.Errorf("area = %d, want 20", r.Area())
				}
				return nil
			},
		},
	)
}

// CollectionContract Collection 的可替换性契约
//
// 参数：
//   - sample: 追加使用的元素
//   - attempts: 每条检查追加的次数，应大于有界变体的容量
func CollectionContract[T any](sample T, attempts int) capability.Contract[Collection[T]] {
	return capability.NewContract("collection",
		"a successful add grows size by one; a rejected add leaves size unchanged",
		capability.Check[Collection[T]]{
			Name: "add grows size by one",
			Verify: func(ctx context.Context, c Collection[T]) error {
				for i := 0; i < attempts; i++ {
					before := c.Size()
					if err := c.Add(sample); err != nil {
						continue
					}
					if after := c.Size(); after != before+1 {
						return fmt.Errorf("add #%d: size %d -> %d", i+1, before, after)
					}
				}
				return nil
			},
		},
		capability.Check[Collection[T]]{
			Name: "rejected add leaves size unchanged",
			Verify: func(ctx context.Context, c Collection[T]) error {
				for i := 0; i < attempts; i++ {
					before := c.Size()
					if err := c.Add(sample); err == nil {
						continue
					}
					if after := c.Size(); after != before {
						return fmt.Errorf("rejected add #%d: size %d -> %d", i+1, before, after)
					}
				}
				return nil
			},
		},
		capability.Check[Collection[T]]{
			Name: "rejection is a precondition violation",
			Verify: func(ctx context.Context, c Collection[T]) error {
				for i := 0; i < attempts; i++ {
					if err := c.Add(sample); err != nil && !errors.IsPreconditionViolation(err) {
						return fmt.Errorf("add #%d: unexpected error: %w", i+1, err)
					}
				}
				return nil
			},
		},
	)
}
