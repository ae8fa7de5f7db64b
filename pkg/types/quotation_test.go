package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseQuotation(t *testing.T) {
	tests := []struct {
		input string
		want  Quotation
	}{
		{"102.35", Quotation{Units: 102, Nano: 350000000}},
		{"100", Quotation{Units: 100}},
		{"0.000000001", Quotation{Nano: 1}},
		{"-1.5", Quotation{Units: -1, Nano: -500000000}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			q, err := ParseQuotation(tt.input)
			if assert.NoError(t, err) {
				assert.Equal(t, tt.want, q)
				assert.True(t, decimal.RequireFromString(tt.input).Equal(q.Decimal()))
			}
		})
	}

	_, err := ParseQuotation("abc")
	assert.Error(t, err)
}

func TestParseQuotation_OutOfRange(t *testing.T) {
	for _, input := range []string{
		"100000000000000000000",
		"9223372036854775808",
		"-9223372036854775809.5",
	} {
		q, err := ParseQuotation(input)
		assert.ErrorIs(t, err, ErrQuotationOutOfRange, input)
		assert.Equal(t, Quotation{}, q)
	}

	q, err := ParseQuotation("9223372036854775807.999999999")
	if assert.NoError(t, err) {
		assert.Equal(t, Quotation{Units: 9223372036854775807, Nano: 999999999}, q)
	}
}

func TestQuotation_String(t *testing.T) {
	assert.Equal(t, "100", Quotation{Units: 100}.String())
	assert.Equal(t, "100.5", Quotation{Units: 100, Nano: 500000000}.String())
	assert.Equal(t, 100.5, Quotation{Units: 100, Nano: 500000000}.Float64())
	assert.True(t, NewQuotationFromFloat(0.01).IsPositive())
	assert.False(t, Quotation{}.IsPositive())
}

func TestMoneyValue_String(t *testing.T) {
	assert.Equal(t, "100.50 ₽", MoneyValue{Currency: "rub", Units: 100, Nano: 500000000}.String())
	assert.Equal(t, "1,250.00 ₽", MoneyValue{Currency: "RUB", Units: 1250}.String())
	assert.Equal(t, "$12.00", MoneyValue{Currency: "usd", Units: 12}.String())
	assert.Equal(t, "0.125 CHF", MoneyValue{Currency: "chf", Nano: 125000000}.String())
}
