package types

import (
	"math"
	"strings"

	"github.com/leekchan/accounting"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const nanoExp = 9

var (
	maxQuotationUnits = decimal.NewFromInt(math.MaxInt64)
	minQuotationUnits = decimal.NewFromInt(math.MinInt64)
)

var ErrQuotationOutOfRange = errors.New("quotation units out of int64 range")

// Quotation is the broker's fixed-point number: Units holds the integer part
// and Nano the fractional part in 1e-9 steps. Both carry the same sign.
type Quotation struct {
	Units int64 `json:"units"`
	Nano  int32 `json:"nano"`
}

func NewQuotationFromDecimal(d decimal.Decimal) Quotation {
	d = d.Truncate(nanoExp)
	units := d.IntPart()
	nano := d.Sub(decimal.NewFromInt(units)).Shift(nanoExp).IntPart()
	return Quotation{Units: units, Nano: int32(nano)}
}

func NewQuotationFromFloat(f float64) Quotation {
	return NewQuotationFromDecimal(decimal.NewFromFloat(f))
}

// ParseQuotation parses a decimal string like "102.35".
// Values whose integer part does not fit in int64 are rejected.
func ParseQuotation(s string) (Quotation, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Quotation{}, err
	}

	units := d.Truncate(0)
	if units.GreaterThan(maxQuotationUnits) || units.LessThan(minQuotationUnits) {
		return Quotation{}, errors.Wrapf(ErrQuotationOutOfRange, "quotation %s", s)
	}

	return NewQuotationFromDecimal(d), nil
}

func (q Quotation) Decimal() decimal.Decimal {
	return decimal.NewFromInt(q.Units).Add(decimal.New(int64(q.Nano), -nanoExp))
}

func (q Quotation) Float64() float64 {
	return q.Decimal().InexactFloat64()
}

func (q Quotation) IsPositive() bool {
	return q.Decimal().IsPositive()
}

func (q Quotation) String() string {
	return q.Decimal().String()
}

// MoneyValue is a Quotation with a currency code (lower case, e.g. "rub").
type MoneyValue struct {
	Currency string `json:"currency"`
	Units    int64  `json:"units"`
	Nano     int32  `json:"nano"`
}

func NewMoneyValue(currency string, q Quotation) MoneyValue {
	return MoneyValue{Currency: currency, Units: q.Units, Nano: q.Nano}
}

func (m MoneyValue) Quotation() Quotation {
	return Quotation{Units: m.Units, Nano: m.Nano}
}

func (m MoneyValue) Decimal() decimal.Decimal {
	return m.Quotation().Decimal()
}

func (m MoneyValue) Float64() float64 {
	return m.Quotation().Float64()
}

var currencySymbols = map[string]string{
	"rub": "₽",
	"usd": "$",
	"eur": "€",
	"cny": "¥",
	"gbp": "£",
}

// String formats the value as money, e.g. "1,250.50 ₽" or "$12.00".
func (m MoneyValue) String() string {
	return strings.TrimSpace(m.Formatter().FormatMoneyFloat64(m.Float64()))
}

// Formatter returns the money formatter for the currency with enough
// precision to show the value without rounding.
func (m MoneyValue) Formatter() *accounting.Accounting {
	precision := 2
	s := m.Decimal().String()
	if i := strings.IndexByte(s, '.'); i >= 0 && len(s)-i-1 > precision {
		precision = len(s) - i - 1
	}

	code := strings.ToLower(m.Currency)
	symbol, ok := currencySymbols[code]
	format := "%v %s"
	switch {
	case code == "usd":
		format = "%s%v"
	case !ok:
		symbol = strings.ToUpper(code)
	}

	return &accounting.Accounting{
		Symbol:    symbol,
		Precision: precision,
		Thousand:  ",",
		Decimal:   ".",
		Format:    format,
	}
}
