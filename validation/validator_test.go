package validation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	sharederrors "gosolid/errors"
)

// TestValidateStringLength 测试字符串长度验证
func TestValidateStringLength(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		min     int
		max     int
		wantErr bool
	}{
		{name: "有效长度", value: "hello", min: 3, max: 10},
		{name: "长度太短", value: "ab", min: 3, max: 10, wantErr: true},
		{name: "长度太长", value: "abcdefghijk", min: 3, max: 10, wantErr: true},
		{name: "最小边界值", value: "abc", min: 3, max: 10},
		{name: "最大边界值", value: "abcdefghij", min: 3, max: 10},
		{name: "无最大限制", value: "very long string that exceeds normal limits", min: 3, max: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStringLength(tt.value, "字段", tt.min, tt.max)
			if tt.wantErr {
				assert.True(t, sharederrors.IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestValidateRequired 测试必填验证
func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "有效值", value: "hello"},
		{name: "空字符串", value: "", wantErr: true},
		{name: "空格字符串", value: "   ", wantErr: true},
		{name: "带前后空格的有效值", value: "  hello  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.value, "customer")
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

// TestValidatePositive 测试正整数验证
func TestValidatePositive(t *testing.T) {
	assert.NoError(t, ValidatePositive(2, "maxSize"))
	assert.Error(t, ValidatePositive(0, "maxSize"))
	assert.Error(t, ValidatePositive(-1, "maxSize"))
}

// TestValidatePositiveAmount 测试金额验证
func TestValidatePositiveAmount(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{name: "正数", value: 100},
		{name: "小额", value: 0.005},
		{name: "零", value: 0, wantErr: true},
		{name: "负数", value: -50.5, wantErr: true},
		{name: "NaN", value: math.NaN(), wantErr: true},
		{name: "无穷大", value: math.Inf(1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePositiveAmount(tt.value, "amount")
			if tt.wantErr {
				assert.True(t, sharederrors.IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestValidateNonNegative 测试非负数验证
func TestValidateNonNegative(t *testing.T) {
	assert.NoError(t, ValidateNonNegative(0, "amount"))
	assert.NoError(t, ValidateNonNegative(200, "amount"))
	assert.Error(t, ValidateNonNegative(-0.01, "amount"))
	assert.Error(t, ValidateNonNegative(math.NaN(), "amount"))
}

// TestValidateEmail 测试邮箱验证
func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("john.doe@example.com"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("john.doe"))
	assert.Error(t, ValidateEmail("john@localhost"))
}

// TestValidateDigits 测试数字串验证
func TestValidateDigits(t *testing.T) {
	assert.NoError(t, ValidateDigits("4111111111111111", "cardNumber", 4))
	assert.NoError(t, ValidateDigits("1234", "cardNumber", 4))
	assert.Error(t, ValidateDigits("123", "cardNumber", 4))
	assert.Error(t, ValidateDigits("4111-1111", "cardNumber", 4))
}

// TestValidateEnum 测试枚举验证
func TestValidateEnum(t *testing.T) {
	levels := []string{"debug", "info", "warn", "error"}
	assert.NoError(t, ValidateEnum("info", "level", levels))
	assert.Error(t, ValidateEnum("trace", "level", levels))
}

// TestAll 测试组合校验
func TestAll(t *testing.T) {
	assert.NoError(t, All(nil, nil))

	first := ValidateRequired("", "customer")
	assert.Equal(t, first, All(nil, first, ValidatePositive(0, "n")))
}
