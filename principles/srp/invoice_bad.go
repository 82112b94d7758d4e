package srp

import (
	"fmt"
	"io"
)

// InvoiceBad 违反单一职责原则的发票
//
// 计税、打印、持久化三种变化原因集中在同一类型中。保留它只作为反例。
type InvoiceBad struct {
	Customer string
	Amount   float64
}

// CalculateTotal 含税总额
func (i *InvoiceBad) CalculateTotal() float64 {
	return i.Amount * TaxMultiplier
}

// PrintInvoice 打印发票
func (i *InvoiceBad) PrintInvoice(w io.Writer) {
	fmt.Fprintf(w, "Invoice for: %s\n", i.Customer)
	fmt.Fprintf(w, "Total: $%.2f\n", i.CalculateTotal())
}

// SaveToDatabase 模拟保存
func (i *InvoiceBad) SaveToDatabase(w io.Writer) {
	fmt.Fprintf(w, "Saving invoice to database for customer: %s\n", i.Customer)
}
