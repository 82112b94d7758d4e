package capability

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"gosolid/errors"
)

// Factory 根据参数构造一个满足能力 C 的变体
type Factory[C any] func(params Params) (C, error)

// Registry 变体工厂表：kind -> Factory
//
// 新增变体只需注册新的 kind，构建方（如 scenario 加载）无需修改。
// 并发安全。
type Registry[C any] struct {
	name      string
	mu        sync.RWMutex
	factories map[string]Factory[C]
}

// NewRegistry 创建空注册表
func NewRegistry[C any](name string) *Registry[C] {
	return &Registry[C]{
		name:      name,
		factories: make(map[string]Factory[C]),
	}
}

// Name 返回注册表名称（通常为能力名）
func (r *Registry[C]) Name() string {
	return r.name
}

// Register 注册变体工厂
//
// kind 为空或 factory 为 nil 返回 INVALID_INPUT；kind 已存在返回 CONFLICT。
func (r *Registry[C]) Register(kind string, factory Factory[C]) error {
	kind = normalizeKind(kind)
	if kind == "" {
		return errors.NewError(errors.ErrCodeInvalidInput, "variant kind is required")
	}
	if factory == nil {
		return errors.NewError(errors.ErrCodeInvalidInput,
			fmt.Sprintf("factory for %q cannot be nil", kind))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[kind]; exists {
		return errors.NewError(errors.ErrCodeConflict,
			fmt.Sprintf("%s: variant kind %q already registered", r.name, kind))
	}
	r.factories[kind] = factory
	return nil
}

// MustRegister 注册失败时 panic，用于包级初始化
func (r *Registry[C]) MustRegister(kind string, factory Factory[C]) *Registry[C] {
	if err := r.Register(kind, factory); err != nil {
		panic(err)
	}
	return r
}

// Build 按 kind 构造变体，未注册返回 NOT_FOUND
func (r *Registry[C]) Build(kind string, params Params) (C, error) {
	kind = normalizeKind(kind)

	r.mu.RLock()
	factory, ok := r.factories[kind]
	r.mu.RUnlock()

	if !ok {
		var zero C
		return zero, errors.NewError(errors.ErrCodeNotFound,
			fmt.Sprintf("%s: unknown variant kind %q", r.name, kind)).
			WithContext("known_kinds", r.Kinds())
	}
	if params == nil {
		params = Params{}
	}
	v, err := factory(params)
	if err != nil {
		var zero C
		return zero, errors.WrapKeepCode(err, errors.ErrCodeInvalidInput,
			fmt.Sprintf("%s: build %q", r.name, kind))
	}
	return v, nil
}

// Has 检查 kind 是否已注册
func (r *Registry[C]) Has(kind string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[normalizeKind(kind)]
	return ok
}

// Kinds 返回已注册 kind 的有序列表
func (r *Registry[C]) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.factories))
	for kind := range r.factories {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

func normalizeKind(kind string) string {
	return strings.ToLower(strings.TrimSpace(kind))
}

// Params 变体构造参数（通常来自 YAML 文档）
type Params map[string]any

// GetString 读取字符串参数
func (p Params) GetString(key string) (string, error) {
	raw, ok := p[key]
	if !ok {
		return "", missingParam(key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", mistypedParam(key, "string", raw)
	}
	return s, nil
}

// GetFloat 读取数值参数，接受 YAML/JSON 解码出的整型与浮点型
func (p Params) GetFloat(key string) (float64, error) {
	raw, ok := p[key]
	if !ok {
		return 0, missingParam(key)
	}
	switch n := raw.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	default:
		return 0, mistypedParam(key, "number", raw)
	}
}

func missingParam(key string) error {
	return errors.NewValidationError(fmt.Sprintf("缺少参数 %s", key))
}

func mistypedParam(key, want string, got any) error {
	return errors.NewValidationError(
		fmt.Sprintf("参数 %s 类型错误：期望 %s，实际 %T", key, want, got))
}
