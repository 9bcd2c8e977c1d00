package store

import "github.com/shopspring/decimal"

// Currency and percentage columns all carry two decimal places.
const decimalScale = 2

// toDecimal rounds a float to the column scale before it is written as decimal text.
func toDecimal(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(decimalScale)
}

func toNullDecimal(v *float64) decimal.NullDecimal {
	if v == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(toDecimal(*v))
}

func fromDecimal(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func fromNullDecimal(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	f := d.Decimal.InexactFloat64()
	return &f
}
