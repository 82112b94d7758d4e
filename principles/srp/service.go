package srp

import (
	"context"

	"gosolid/errors"
	"gosolid/logging"
)

// InvoiceService 组合打印与保存，本身不承担任何一项职责
type InvoiceService struct {
	printer    *InvoicePrinter
	repository InvoiceRepository
	logger     logging.Logger
}

// NewInvoiceService 创建发票服务
func NewInvoiceService(printer *InvoicePrinter, repository InvoiceRepository, logger logging.Logger) *InvoiceService {
	if printer == nil {
		printer = NewInvoicePrinter(nil)
	}
	if logger == nil {
		logger = logging.ComponentLogger("srp.invoice_service")
	}
	return &InvoiceService{
		printer:    printer,
		repository: repository,
		logger:     logger,
	}
}

// Issue 打印并保存发票
func (s *InvoiceService) Issue(ctx context.Context, inv *Invoice) error {
	if inv == nil {
		return errors.NewError(errors.ErrCodeInvalidInput, "invoice cannot be nil")
	}
	if s.repository == nil {
		return errors.NewError(errors.ErrCodeInvalidInput, "invoice repository is not configured")
	}

	s.printer.Print(inv)
	if err := s.repository.Save(ctx, inv); err != nil {
		return errors.WrapWithLog(ctx, err, errors.GetErrorCode(err), "save invoice failed",
			logging.String("invoice_id", inv.ID()))
	}

	s.logger.Info(ctx, "invoice issued",
		logging.String("invoice_id", inv.ID()),
		logging.String("customer", inv.Customer()),
		logging.Float64("total", inv.CalculateTotal()))
	return nil
}
