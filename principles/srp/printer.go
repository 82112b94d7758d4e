package srp

import (
	"fmt"
	"io"
)

// InvoicePrinter 发票打印（只负责展示）
type InvoicePrinter struct {
	out io.Writer
}

// NewInvoicePrinter 创建打印器，out 为 nil 时丢弃输出
func NewInvoicePrinter(out io.Writer) *InvoicePrinter {
	if out == nil {
		out = io.Discard
	}
	return &InvoicePrinter{out: out}
}

// Print 打印发票
func (p *InvoicePrinter) Print(inv *Invoice) {
	fmt.Fprintln(p.out, "=== Invoice ===")
	fmt.Fprintf(p.out, "Customer: %s\n", inv.Customer())
	fmt.Fprintf(p.out, "Amount: $%.2f\n", inv.Amount())
	fmt.Fprintf(p.out, "Total (with tax): $%.2f\n", inv.CalculateTotal())
}
