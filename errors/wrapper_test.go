package errors

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWrap 测试基本错误包装
func TestWrap(t *testing.T) {
	ctx := context.Background()
	originalErr := errors.New("原始错误")

	wrapped := Wrap(ctx, originalErr, ErrCodeInternal, "包装消息")

	require.Error(t, wrapped)
	assert.ErrorIs(t, wrapped, originalErr)
	assert.Equal(t, ErrCodeInternal, GetErrorCode(wrapped))
}

// TestWrap_NilError 测试包装nil错误
func TestWrap_NilError(t *testing.T) {
	assert.Nil(t, Wrap(context.Background(), nil, ErrCodeInternal, "消息"))
	assert.Nil(t, WrapWithLog(context.Background(), nil, ErrCodeInternal, "消息"))
	assert.Nil(t, WrapKeepCode(nil, ErrCodeInternal, "消息"))
}

// TestWrapKeepCode 沿用原错误码
func TestWrapKeepCode(t *testing.T) {
	precondition := NewPreconditionError("List is full")

	wrapped := WrapKeepCode(precondition, ErrCodeInternal, "add item 3")
	assert.True(t, IsPreconditionViolation(wrapped))
	assert.Contains(t, wrapped.Error(), "List is full")

	plain := WrapKeepCode(errors.New("boom"), ErrCodeInvalidInput, "dispatch")
	assert.Equal(t, ErrCodeInvalidInput, GetErrorCode(plain))
}

// TestNewValidationError 验证错误不带位置信息
func TestNewValidationError(t *testing.T) {
	err := NewValidationError("amount必须为正数")
	assert.True(t, IsValidation(err))
	assert.Equal(t, "[VALIDATION_ERROR] amount必须为正数", err.Error())
}

// TestSignalConstructors 测试两类教学错误信号
func TestSignalConstructors(t *testing.T) {
	unsupported := NewUnsupportedOperationError("Fly", "Ostriches can't fly!")
	assert.True(t, IsUnsupportedOperation(unsupported))
	assert.False(t, IsPreconditionViolation(unsupported))
	assert.Equal(t, "Ostriches can't fly!", unsupported.Message())
	assert.Equal(t, "Fly", unsupported.Details()["operation"])
	assert.ErrorIs(t, unsupported, ErrUnsupportedOperation)

	precondition := NewPreconditionError("List is full")
	assert.True(t, IsPreconditionViolation(precondition))
	assert.False(t, IsUnsupportedOperation(precondition))
	assert.ErrorIs(t, precondition, ErrPreconditionViolation)
}

// TestAppError_WithDetails 详情不可变
func TestAppError_WithDetails(t *testing.T) {
	base := NewError(ErrCodeContractViolation, "contract failed")
	derived := base.WithDetails(map[string]any{"failed": []string{"independent dimensions"}})

	assert.Empty(t, base.Details())
	assert.Len(t, derived.Details(), 1)
	assert.True(t, IsContractViolation(derived))
}

// TestAppError_Wrap 测试链式包装
func TestAppError_Wrap(t *testing.T) {
	base := NewError(ErrCodeNotFound, "invoice missing")
	wrapped := base.Wrap("lookup")

	assert.Equal(t, "lookup: invoice missing", wrapped.Message())
	assert.Equal(t, ErrCodeNotFound, wrapped.Code())
	assert.True(t, IsNotFound(wrapped))
	assert.Equal(t, base, wrapped.Cause())
}

// TestGetErrorCode 测试错误码提取
func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrorCode(""), GetErrorCode(nil))
	assert.Equal(t, ErrCodeInternal, GetErrorCode(errors.New("plain")))
	assert.Equal(t, ErrCodeConflict, GetErrorCode(NewError(ErrCodeConflict, "dup")))
	assert.False(t, IsErrorCode(nil, ErrCodeConflict))
}

// TestMultipleWrapCalls 测试多次包装
func TestMultipleWrapCalls(t *testing.T) {
	ctx := context.Background()
	originalErr := errors.New("原始错误")

	err1 := Wrap(ctx, originalErr, ErrCodePreconditionViolation, "第一层")
	err2 := Wrap(ctx, err1, ErrCodeInternal, "第二层")

	require.Error(t, err2)
	assert.ErrorIs(t, err2, originalErr)
	assert.Equal(t, ErrCodeInternal, GetErrorCode(err2))
}

// BenchmarkWrap 基准测试：基本包装
func BenchmarkWrap(b *testing.B) {
	ctx := context.Background()
	err := errors.New("测试错误")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Wrap(ctx, err, ErrCodeInternal, "基准测试")
	}
}
