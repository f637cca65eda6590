package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatWon(t *testing.T) {
	assert.Equal(t, "0원", FormatWon(0))
	assert.Equal(t, "100원", FormatWon(100))
	assert.Equal(t, "1,000원", FormatWon(1000))
	assert.Equal(t, "1,234,567원", FormatWon(1234567))
	assert.Equal(t, "40,000,000원", FormatWon(40000000))
	assert.Equal(t, "-1,500원", FormatWon(-1500))
}

func TestFormatMoneyNil(t *testing.T) {
	assert.Equal(t, "데이터 없음", FormatMoney(nil))

	v := int64(10_000_000)
	assert.Equal(t, "10,000,000원", FormatMoney(&v))
}

func TestFormatBool(t *testing.T) {
	assert.Equal(t, "판단 불가(데이터 없음)", FormatBool(nil))

	yes, no := true, false
	assert.Equal(t, "예", FormatBool(&yes))
	assert.Equal(t, "아니오", FormatBool(&no))
	assert.Equal(t, "예", FormatBoolValue(true))
	assert.Equal(t, "아니오", FormatBoolValue(false))
}
