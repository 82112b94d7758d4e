package ocp

import (
	"context"
	"fmt"

	"gosolid/validation"
)

// PaymentMethod 支付能力
//
// Pay 执行支付并返回面向用户的处理说明；Name 返回支付方式标签。
type PaymentMethod interface {
	Pay(ctx context.Context, amount float64) (string, error)
	Name() string
}

// CreditCardPayment 信用卡支付
type CreditCardPayment struct {
	cardNumber string
	cardHolder string
}

// NewCreditCardPayment 创建信用卡支付
//
// 卡号必须为至少 4 位数字，持卡人不能为空。
func NewCreditCardPayment(cardNumber, cardHolder string) (*CreditCardPayment, error) {
	if err := validation.All(
		validation.ValidateDigits(cardNumber, "cardNumber", 4),
		validation.ValidateRequired(cardHolder, "cardHolder"),
	); err != nil {
		return nil, err
	}
	return &CreditCardPayment{cardNumber: cardNumber, cardHolder: cardHolder}, nil
}

// Pay 实现 PaymentMethod
func (p *CreditCardPayment) Pay(ctx context.Context, amount float64) (string, error) {
	return fmt.Sprintf("Processing credit card payment of $%.2f for %s (Card: ****%s)",
		amount, p.cardHolder, p.lastFour()), nil
}

// Name 实现 PaymentMethod
func (p *CreditCardPayment) Name() string { return "Credit Card" }

func (p *CreditCardPayment) lastFour() string {
	if len(p.cardNumber) < 4 {
		return p.cardNumber
	}
	return p.cardNumber[len(p.cardNumber)-4:]
}

// PayPalPayment PayPal 支付
type PayPalPayment struct {
	email string
}

// NewPayPalPayment 创建 PayPal 支付
func NewPayPalPayment(email string) (*PayPalPayment, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return nil, err
	}
	return &PayPalPayment{email: email}, nil
}

// Pay 实现 PaymentMethod
func (p *PayPalPayment) Pay(ctx context.Context, amount float64) (string, error) {
	return fmt.Sprintf("Processing PayPal payment of $%.2f to %s", amount, p.email), nil
}

// Name 实现 PaymentMethod
func (p *PayPalPayment) Name() string { return "PayPal" }

// CryptoPayment 加密货币支付，无需修改 PaymentProcessor 即可接入
type CryptoPayment struct {
	walletAddress string
	cryptoType    string
}

// NewCryptoPayment 创建加密货币支付
func NewCryptoPayment(walletAddress, cryptoType string) (*CryptoPayment, error) {
	if err := validation.All(
		validation.ValidateRequired(walletAddress, "walletAddress"),
		validation.ValidateRequired(cryptoType, "cryptoType"),
	); err != nil {
		return nil, err
	}
	return &CryptoPayment{walletAddress: walletAddress, cryptoType: cryptoType}, nil
}

// Pay 实现 PaymentMethod，金额保留 4 位小数
func (p *CryptoPayment) Pay(ctx context.Context, amount float64) (string, error) {
	return fmt.Sprintf("Processing %s payment of %.4f to wallet %s",
		p.cryptoType, amount, p.walletAddress), nil
}

// Name 实现 PaymentMethod
func (p *CryptoPayment) Name() string { return p.cryptoType + " Crypto" }

var (
	_ PaymentMethod = (*CreditCardPayment)(nil)
	_ PaymentMethod = (*PayPalPayment)(nil)
	_ PaymentMethod = (*CryptoPayment)(nil)
)
