package wizard

import "math"

// Quote holds the pricing parameters for a transfer corridor. All derived
// values are pure functions of the amount so they can be recomputed on every
// edit without drift between the linked send/receive fields.
type Quote struct {
	Rate            float64 // units of receive currency per unit sent
	MinFee          float64 // flat minimum fee, in send currency
	FeeRate         float64 // proportional fee on the sent amount
	SendCurrency    string
	ReceiveCurrency string
}

// DefaultQuote is the USD to INR corridor used by the app.
func DefaultQuote() Quote {
	return Quote{
		Rate:            82.9,
		MinFee:          1.99,
		FeeRate:         0.01,
		SendCurrency:    "USD",
		ReceiveCurrency: "INR",
	}
}

// Converted returns the gross amount the recipient side sees.
func (q Quote) Converted(amount float64) float64 {
	return amount * q.Rate
}

// Fee returns max(MinFee, amount*FeeRate). The minimum applies even at zero.
func (q Quote) Fee(amount float64) float64 {
	return math.Max(q.MinFee, amount*q.FeeRate)
}

// Net returns what the recipient receives after the fee, floored at zero.
func (q Quote) Net(amount float64) float64 {
	return math.Max(q.Converted(amount)-q.Fee(amount)*q.Rate, 0)
}

// BackSolve derives the send amount from an edited receive amount using the
// same rate, so editing either linked field stays numerically consistent.
func (q Quote) BackSolve(receive float64) float64 {
	if q.Rate == 0 {
		return 0
	}
	return receive / q.Rate
}
