package utils

import "github.com/shopspring/decimal"

const metricScale = 6

// SafeDivide divide a/b com a escala padrão de métricas, retornando zero
// quando o divisor é zero
func SafeDivide(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}

	return a.DivRound(b, metricScale)
}
