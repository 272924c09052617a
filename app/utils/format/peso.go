package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var peso = accounting.Accounting{Symbol: "₱", Precision: 0, Thousand: ",", Decimal: "."}

// Peso formats an amount as whole pesos, e.g. ₱1,250. Unparseable input
// formats as ₱0.
func Peso(amount interface{}) string {
	var decAmount decimal.Decimal
	switch v := amount.(type) {
	case decimal.Decimal:
		decAmount = v
	case float64:
		decAmount = decimal.NewFromFloat(v)
	case int:
		decAmount = decimal.NewFromInt(int64(v))
	case int64:
		decAmount = decimal.NewFromInt(v)
	case string:
		parsed, err := decimal.NewFromString(v)
		if err != nil {
			return peso.FormatMoneyDecimal(decimal.Zero)
		}
		decAmount = parsed
	default:
		return peso.FormatMoneyDecimal(decimal.Zero)
	}

	return peso.FormatMoneyDecimal(decAmount.Round(0))
}
