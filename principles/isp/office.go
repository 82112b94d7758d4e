package isp

import (
	"context"

	"gosolid/capability"
)

// Office 由窄能力组合而成的办公室
//
// 每类设备分别登记，一台一体机可以同时登记为打印机、扫描仪和传真机。
type Office struct {
	printers []Printer
	scanners []Scanner
	faxes    []Fax

	printDispatcher *capability.Dispatcher[Printer, string]
	scanDispatcher  *capability.Dispatcher[Scanner, string]
	faxDispatcher   *capability.Dispatcher[Fax, string]
}

// NewOffice 创建空办公室
func NewOffice() *Office {
	return &Office{
		printDispatcher: newDispatcher("print", capability.Func(Printer.Print)),
		scanDispatcher:  newDispatcher("scan", capability.Func(Scanner.Scan)),
		faxDispatcher:   newDispatcher("fax", capability.Func(Fax.Fax)),
	}
}

// AddPrinter 登记打印机
func (o *Office) AddPrinter(printers ...Printer) *Office {
	o.printers = append(o.printers, printers...)
	return o
}

// AddScanner 登记扫描仪
func (o *Office) AddScanner(scanners ...Scanner) *Office {
	o.scanners = append(o.scanners, scanners...)
	return o
}

// AddFax 登记传真机
func (o *Office) AddFax(faxes ...Fax) *Office {
	o.faxes = append(o.faxes, faxes...)
	return o
}

// PrintAll 所有打印机各打印一次
func (o *Office) PrintAll(ctx context.Context) ([]string, error) {
	return o.printDispatcher.DispatchAll(ctx, o.printers...)
}

// ScanAll 所有扫描仪各扫描一次
func (o *Office) ScanAll(ctx context.Context) ([]string, error) {
	return o.scanDispatcher.DispatchAll(ctx, o.scanners...)
}

// FaxAll 所有传真机各发送一次
func (o *Office) FaxAll(ctx context.Context) ([]string, error) {
	return o.faxDispatcher.DispatchAll(ctx, o.faxes...)
}
