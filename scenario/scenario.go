// Package scenario 加载演示场景文档
//
// 场景以 YAML 描述要构造的变体（kind + params），通过 capability.Registry 构建，
// 新增变体只需在注册表中登记，文档格式与加载代码不变。
package scenario

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gosolid/capability"
	"gosolid/errors"
	"gosolid/validation"
)

//go:embed default.yaml
var defaultDocument []byte

// VariantSpec 单个变体描述
type VariantSpec struct {
	// Kind 注册表中的变体类型
	Kind string `yaml:"kind"`

	// Label 展示名称，为空时使用 Kind
	Label string `yaml:"label,omitempty"`

	// Params 构造参数
	Params map[string]any `yaml:"params,omitempty"`
}

// DisplayName 返回展示名称
func (s VariantSpec) DisplayName() string {
	if s.Label != "" {
		return s.Label
	}
	return s.Kind
}

// PaymentSpec 支付描述：支付方式 + 金额
type PaymentSpec struct {
	VariantSpec `yaml:",inline"`

	Amount float64 `yaml:"amount"`
}

// Document 场景文档
type Document struct {
	Shapes   []VariantSpec `yaml:"shapes"`
	Payments []PaymentSpec `yaml:"payments"`
}

// Named 已构建的变体及其展示名称
type Named[C any] struct {
	Label string
	Value C
}

// Default 返回内置场景
func Default() *Document {
	doc, err := Parse(defaultDocument)
	if err != nil {
		panic(fmt.Sprintf("scenario: invalid built-in document: %v", err))
	}
	return doc
}

// Load 读取场景文件，path 为空时返回内置场景
func Load(path string) (*Document, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapError(err, errors.ErrCodeNotFound, "读取场景文件失败: "+path)
	}
	return Parse(data)
}

// Parse 解析场景内容
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapError(err, errors.ErrCodeInvalidInput, "解析场景文档失败")
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate 校验每个变体都声明了 kind
func (d *Document) Validate() error {
	for i, s := range d.Shapes {
		if err := validation.ValidateRequired(s.Kind, fmt.Sprintf("shapes[%d].kind", i)); err != nil {
			return err
		}
	}
	for i, p := range d.Payments {
		if err := validation.ValidateRequired(p.Kind, fmt.Sprintf("payments[%d].kind", i)); err != nil {
			return err
		}
	}
	return nil
}

// Build 通过注册表构建变体列表，遇到第一个失败即返回
func Build[C any](reg *capability.Registry[C], specs []VariantSpec) ([]Named[C], error) {
	if reg == nil {
		return nil, errors.NewError(errors.ErrCodeInvalidInput, "registry cannot be nil")
	}
	built := make([]Named[C], 0, len(specs))
	for i, s := range specs {
		v, err := reg.Build(s.Kind, s.Params)
		if err != nil {
			return built, errors.WrapKeepCode(err, errors.ErrCodeInvalidInput,
				fmt.Sprintf("%s[%d]", reg.Name(), i))
		}
		built = append(built, Named[C]{Label: s.DisplayName(), Value: v})
	}
	return built, nil
}

// PaymentVariants 提取支付描述中的变体部分，顺序与 Payments 一致
func (d *Document) PaymentVariants() []VariantSpec {
	specs := make([]VariantSpec, len(d.Payments))
	for i, p := range d.Payments {
		specs[i] = p.VariantSpec
	}
	return specs
}
