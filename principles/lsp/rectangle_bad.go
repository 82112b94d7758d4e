package lsp

// ResizableRectangle 可独立调整宽高的矩形能力
//
// 契约：SetWidth 不改变高度，SetHeight 不改变宽度。
type ResizableRectangle interface {
	SetWidth(width int)
	SetHeight(height int)
	Width() int
	Height() int
	Area() int
}

// Rectangle 可变矩形
type Rectangle struct {
	width  int
	height int
}

// SetWidth 设置宽
func (r *Rectangle) SetWidth(width int) { r.width = width }

// SetHeight 设置高
func (r *Rectangle) SetHeight(height int) { r.height = height }

// Width 宽
func (r *Rectangle) Width() int { return r.width }

// Height 高
func (r *Rectangle) Height() int { return r.height }

// Area 面积
func (r *Rectangle) Area() int { return r.width * r.height }

// Square 违反里氏替换原则的正方形
//
// 它嵌入 Rectangle 并覆盖两个 setter 以保持边长相等，
// 作为 ResizableRectangle 使用时设置一边会悄悄改变另一边。
type Square struct {
	Rectangle
}

// SetWidth 同时修改宽和高
func (s *Square) SetWidth(width int) {
	s.Rectangle.SetWidth(width)
	s.Rectangle.SetHeight(width)
}

// SetHeight 同时修改宽和高
func (s *Square) SetHeight(height int) {
	s.Rectangle.SetHeight(height)
	s.Rectangle.SetWidth(height)
}

var (
	_ ResizableRectangle = (*Rectangle)(nil)
	_ ResizableRectangle = (*Square)(nil)
)
