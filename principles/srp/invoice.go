// Package srp 演示单一职责原则：一个类型只有一个变化原因。
//
// Invoice 只负责数据与计税，InvoicePrinter 只负责展示，
// InvoiceRepository 能力只负责保存。
package srp

import (
	"github.com/google/uuid"

	"gosolid/validation"
)

// TaxMultiplier 含 16% 税的乘数
const TaxMultiplier = 1.16

// Invoice 发票（只负责数据与计税）
type Invoice struct {
	id       string
	customer string
	amount   float64
}

// NewInvoice 创建发票
//
// 参数：
//   - customer: 客户名，不能为空
//   - amount: 税前金额，不能为负
func NewInvoice(customer string, amount float64) (*Invoice, error) {
	if err := validation.All(
		validation.ValidateRequired(customer, "customer"),
		validation.ValidateNonNegative(amount, "amount"),
	); err != nil {
		return nil, err
	}
	return &Invoice{
		id:       uuid.NewString(),
		customer: customer,
		amount:   amount,
	}, nil
}

// ID 发票编号
func (i *Invoice) ID() string { return i.id }

// Customer 客户名
func (i *Invoice) Customer() string { return i.customer }

// Amount 税前金额
func (i *Invoice) Amount() float64 { return i.amount }

// CalculateTotal 含税总额
func (i *Invoice) CalculateTotal() float64 {
	return i.amount * TaxMultiplier
}
