package isp

// Printer 打印能力
type Printer interface {
	Print() string
}

// Scanner 扫描能力
type Scanner interface {
	Scan() string
}

// Fax 传真能力
type Fax interface {
	Fax() string
}

// MultiFunctionPrinter 多功能一体机
type MultiFunctionPrinter struct{}

// Print 实现 Printer
func (MultiFunctionPrinter) Print() string { return "Printing document..." }

// Scan 实现 Scanner
func (MultiFunctionPrinter) Scan() string { return "Scanning document..." }

// Fax 实现 Fax
func (MultiFunctionPrinter) Fax() string { return "Faxing document..." }

// BasicPrinter 只能打印
type BasicPrinter struct{}

// Print 实现 Printer
func (BasicPrinter) Print() string { return "Basic print only" }

var (
	_ Printer = MultiFunctionPrinter{}
	_ Scanner = MultiFunctionPrinter{}
	_ Fax     = MultiFunctionPrinter{}
	_ Printer = BasicPrinter{}
)
