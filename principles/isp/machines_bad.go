package isp

import "gosolid/errors"

// MachineBad 违反接口隔离原则的胖设备接口
type MachineBad interface {
	Print() string
	Scan() error
	Fax() error
}

// BasicPrinterBad 被迫实现扫描与传真
type BasicPrinterBad struct{}

// Print 实现 MachineBad
func (BasicPrinterBad) Print() string { return "Basic print only" }

// Scan 总是返回 UNSUPPORTED_OPERATION
func (BasicPrinterBad) Scan() error {
	return errors.NewUnsupportedOperationError("Scan", "Basic printer can't scan!")
}

// Fax 总是返回 UNSUPPORTED_OPERATION
func (BasicPrinterBad) Fax() error {
	return errors.NewUnsupportedOperationError("Fax", "Basic printer can't fax!")
}

var _ MachineBad = BasicPrinterBad{}
