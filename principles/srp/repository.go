package srp

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"gosolid/errors"
)

// InvoiceRepository 发票保存能力（只负责持久化）
type InvoiceRepository interface {
	Save(ctx context.Context, inv *Invoice) error
}

// ConsoleInvoiceRepository 把保存动作输出到 writer 的演示仓储
type ConsoleInvoiceRepository struct {
	out io.Writer
}

// NewConsoleInvoiceRepository 创建控制台仓储
func NewConsoleInvoiceRepository(out io.Writer) *ConsoleInvoiceRepository {
	if out == nil {
		out = io.Discard
	}
	return &ConsoleInvoiceRepository{out: out}
}

// Save 实现 InvoiceRepository
func (r *ConsoleInvoiceRepository) Save(ctx context.Context, inv *Invoice) error {
	if inv == nil {
		return errors.NewError(errors.ErrCodeInvalidInput, "invoice cannot be nil")
	}
	fmt.Fprintf(r.out, "Saving invoice for %s with total $%.2f\n", inv.Customer(), inv.CalculateTotal())
	return nil
}

// MemoryInvoiceRepository 内存仓储
type MemoryInvoiceRepository struct {
	mu       sync.RWMutex
	invoices map[string]*Invoice
}

// NewMemoryInvoiceRepository 创建内存仓储
func NewMemoryInvoiceRepository() *MemoryInvoiceRepository {
	return &MemoryInvoiceRepository{
		invoices: make(map[string]*Invoice),
	}
}

// Save 实现 InvoiceRepository，重复编号返回 CONFLICT
func (r *MemoryInvoiceRepository) Save(ctx context.Context, inv *Invoice) error {
	if inv == nil {
		return errors.NewError(errors.ErrCodeInvalidInput, "invoice cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.invoices[inv.ID()]; exists {
		return errors.NewError(errors.ErrCodeConflict,
			fmt.Sprintf("invoice %s already exists", inv.ID()))
	}
	r.invoices[inv.ID()] = inv
	return nil
}

// Get 按编号读取
func (r *MemoryInvoiceRepository) Get(ctx context.Context, id string) (*Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inv, ok := r.invoices[id]
	if !ok {
		return nil, errors.NewError(errors.ErrCodeNotFound,
			fmt.Sprintf("invoice %s not found", id))
	}
	return inv, nil
}

// List 按客户名、编号排序返回全部发票
func (r *MemoryInvoiceRepository) List(ctx context.Context) []*Invoice {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		list = append(list, inv)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Customer() != list[j].Customer() {
			return list[i].Customer() < list[j].Customer()
		}
		return list[i].ID() < list[j].ID()
	})
	return list
}

// Len 已保存数量
func (r *MemoryInvoiceRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.invoices)
}

var (
	_ InvoiceRepository = (*ConsoleInvoiceRepository)(nil)
	_ InvoiceRepository = (*MemoryInvoiceRepository)(nil)
)
