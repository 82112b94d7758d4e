package ocp

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"gosolid/capability"
	"gosolid/errors"
	"gosolid/logging"
	"gosolid/validation"
)

// Payment 一次支付请求：支付方式 + 金额
type Payment struct {
	Method PaymentMethod
	Amount float64
}

// Receipt 支付完成回执
type Receipt struct {
	TransactionID string    `json:"transaction_id"`
	Method        string    `json:"method"`
	Amount        float64   `json:"amount"`
	Detail        string    `json:"detail"`
	ProcessedAt   time.Time `json:"processed_at"`
}

// ProcessorConfig 支付处理器配置
type ProcessorConfig struct {
	// Out 演示输出（nil 时丢弃）
	Out io.Writer

	// Separator 每笔支付之后输出的分隔线
	Separator string

	// Logger 组件 logger，为空时从全局 Logger 派生
	Logger logging.Logger
}

// DefaultProcessorConfig 默认配置
func DefaultProcessorConfig() *ProcessorConfig {
	return &ProcessorConfig{
		Out:       io.Discard,
		Separator: "----------------------------------",
	}
}

// PaymentProcessor 支付处理器（对修改关闭）
//
// 它只通过 PaymentMethod 能力与支付方式交互。
type PaymentProcessor struct {
	out        io.Writer
	separator  string
	logger     logging.Logger
	dispatcher *capability.Dispatcher[Payment, *Receipt]
	newID      func() string
	now        func() time.Time
}

// NewPaymentProcessor 创建支付处理器
func NewPaymentProcessor(config *ProcessorConfig) *PaymentProcessor {
	if config == nil {
		config = DefaultProcessorConfig()
	}
	p := &PaymentProcessor{
		out:       config.Out,
		separator: config.Separator,
		logger:    config.Logger,
		newID:     uuid.NewString,
		now:       time.Now,
	}
	if p.out == nil {
		p.out = io.Discard
	}
	if p.logger == nil {
		p.logger = logging.ComponentLogger("ocp.payment_processor")
	}

	p.dispatcher = capability.NewDispatcher("payment", p.process,
		capability.WithLogger[Payment, *Receipt](p.logger),
		capability.WithMiddlewares[Payment, *Receipt](
			capability.NewLoggingMiddleware[Payment, *Receipt](p.logger, "Pay"),
			capability.NewValidationMiddleware[Payment, *Receipt](validatePayment),
			capability.NewRecoverMiddleware[Payment, *Receipt](),
		),
	)
	return p
}

// ProcessPayment 处理一笔支付
//
// 参数：
//   - ctx: 上下文
//   - method: 任意支付方式
//   - amount: 金额，必须为正数
//
// 返回：
//   - *Receipt: 带交易号的回执
//   - error: 金额非法返回 VALIDATION_ERROR；支付方式失败时沿用其错误码；
//     支付方式 panic 时返回 INTERNAL_ERROR
func (p *PaymentProcessor) ProcessPayment(ctx context.Context, method PaymentMethod, amount float64) (*Receipt, error) {
	return p.dispatcher.Dispatch(ctx, Payment{Method: method, Amount: amount})
}

// ProcessAll 依次处理多笔支付，遇到第一笔失败即停止
func (p *PaymentProcessor) ProcessAll(ctx context.Context, payments ...Payment) ([]*Receipt, error) {
	return p.dispatcher.DispatchAll(ctx, payments...)
}

func (p *PaymentProcessor) process(ctx context.Context, payment Payment) (*Receipt, error) {
	name := payment.Method.Name()
	fmt.Fprintf(p.out, "Initiating %s payment...\n", name)

	detail, err := payment.Method.Pay(ctx, payment.Amount)
	if err != nil {
		return nil, errors.Wrap(ctx, err, errors.GetErrorCode(err),
			fmt.Sprintf("%s payment failed", name))
	}
	fmt.Fprintln(p.out, detail)
	fmt.Fprintln(p.out, "Payment completed successfully!")
	if p.separator != "" {
		fmt.Fprintln(p.out, p.separator)
	}

	return &Receipt{
		TransactionID: p.newID(),
		Method:        name,
		Amount:        payment.Amount,
		Detail:        detail,
		ProcessedAt:   p.now(),
	}, nil
}

func validatePayment(payment Payment) error {
	if payment.Method == nil {
		return errors.NewError(errors.ErrCodeInvalidInput, "payment method cannot be nil")
	}
	return validation.ValidatePositiveAmount(payment.Amount, "amount")
}
