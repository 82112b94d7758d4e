package ocp

import (
	"gosolid/capability"
	"gosolid/validation"
)

// ShapeRegistry 返回包含内置图形的注册表
//
// 支持的 kind：circle{radius}、rectangle{length,width}、triangle{base,height}。
// 调用方可继续 Register 新图形。
func ShapeRegistry() *capability.Registry[Shape] {
	reg := capability.NewRegistry[Shape]("shape")
	reg.MustRegister("circle", func(p capability.Params) (Shape, error) {
		r, err := nonNegative(p, "radius")
		if err != nil {
			return nil, err
		}
		return NewCircle(r), nil
	})
	reg.MustRegister("rectangle", func(p capability.Params) (Shape, error) {
		l, err := nonNegative(p, "length")
		if err != nil {
			return nil, err
		}
		w, err := nonNegative(p, "width")
		if err != nil {
			return nil, err
		}
		return NewRectangle(l, w), nil
	})
	reg.MustRegister("triangle", func(p capability.Params) (Shape, error) {
		b, err := nonNegative(p, "base")
		if err != nil {
			return nil, err
		}
		h, err := nonNegative(p, "height")
		if err != nil {
			return nil, err
		}
		return NewTriangle(b, h), nil
	})
	return reg
}

// PaymentRegistry 返回包含内置支付方式的注册表
//
// 支持的 kind：credit_card{card_number,card_holder}、paypal{email}、
// crypto{wallet,crypto_type}。
func PaymentRegistry() *capability.Registry[PaymentMethod] {
	reg := capability.NewRegistry[PaymentMethod]("payment")
	reg.MustRegister("credit_card", func(p capability.Params) (PaymentMethod, error) {
		number, err := p.GetString("card_number")
		if err != nil {
			return nil, err
		}
		holder, err := p.GetString("card_holder")
		if err != nil {
			return nil, err
		}
		m, err := NewCreditCardPayment(number, holder)
		if err != nil {
			return nil, err
		}
		return m, nil
	})
	reg.MustRegister("paypal", func(p capability.Params) (PaymentMethod, error) {
		email, err := p.GetString("email")
		if err != nil {
			return nil, err
		}
		m, err := NewPayPalPayment(email)
		if err != nil {
			return nil, err
		}
		return m, nil
	})
	reg.MustRegister("crypto", func(p capability.Params) (PaymentMethod, error) {
		wallet, err := p.GetString("wallet")
		if err != nil {
			return nil, err
		}
		cryptoType, err := p.GetString("crypto_type")
		if err != nil {
			return nil, err
		}
		m, err := NewCryptoPayment(wallet, cryptoType)
		if err != nil {
			return nil, err
		}
		return m, nil
	})
	return reg
}

func nonNegative(p capability.Params, key string) (float64, error) {
	v, err := p.GetFloat(key)
	if err != nil {
		return 0, err
	}
	if err := validation.ValidateNonNegative(v, key); err != nil {
		return 0, err
	}
	return v, nil
}
