package capability

import (
	"context"
	stdErrors "errors"
	"fmt"
	"strings"

	"gosolid/errors"
)

// Check 契约中的一条可替换性检查
type Check[C any] struct {
	// Name 检查名（出现在失败详情中）
	Name string

	// Verify 对一个全新构造的变体执行检查，违反时返回错误
	Verify func(ctx context.Context, v C) error
}

// Contract 能力契约
//
// 契约描述能力对所有变体的行为承诺。任何声明实现该能力的变体
// 都必须通过全部检查，才能安全地替换同一能力下的其他变体。
type Contract[C any] struct {
	// Name 契约名称（例如："rectangle"）
	Name string

	// Description 契约说明
	Description string

	// Checks 检查列表
	Checks []Check[C]
}

// NewContract 创建契约
func NewContract[C any](name, description string, checks ...Check[C]) Contract[C] {
	return Contract[C]{Name: name, Description: description, Checks: checks}
}

// Verify 用 factory 为每条检查构造新变体并执行
//
// 返回：
//   - nil: 全部通过
//   - CONTRACT_VIOLATION: 至少一条失败，details["failed"] 列出失败的检查名
//   - INVALID_INPUT: 契约为空或 factory 为 nil
func (c Contract[C]) Verify(ctx context.Context, factory func() C) error {
	if factory == nil {
		return errors.NewError(errors.ErrCodeInvalidInput, "contract factory cannot be nil")
	}
	if len(c.Checks) == 0 {
		return errors.NewError(errors.ErrCodeInvalidInput,
			fmt.Sprintf("contract %q has no checks", c.Name))
	}
	if ctx == nil {
		ctx = context.Background()
	}

	failed := make([]string, 0)
	causes := make([]error, 0)
	for _, check := range c.Checks {
		if err := runCheck(ctx, check, factory()); err != nil {
			failed = append(failed, check.Name)
			causes = append(causes, fmt.Errorf("%s: %w", check.Name, err))
		}
	}
	if len(failed) == 0 {
		return nil
	}

	return errors.NewErrorWithCause(errors.ErrCodeContractViolation,
		fmt.Sprintf("contract %q violated: %s", c.Name, strings.Join(failed, ", ")),
		stdErrors.Join(causes...),
	).WithDetails(map[string]any{
		"contract": c.Name,
		"failed":   failed,
	})
}

// FailedChecks 从 Verify 返回的错误中取出失败的检查名
func FailedChecks(err error) []string {
	var appErr *errors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Code() != errors.ErrCodeContractViolation {
		return nil
	}
	failed, _ := appErr.Details()["failed"].([]string)
	return failed
}

func runCheck[C any](ctx context.Context, check Check[C], v C) (err error) {
	if check.Verify == nil {
		return fmt.Errorf("check has no verify function")
	}
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("check panicked: %v", p)
		}
	}()
	return check.Verify(ctx, v)
}
