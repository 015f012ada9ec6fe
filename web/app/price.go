package app

import "strconv"

// Price is a display-only currency amount.
type Price struct {
	Currency string
	Amount   float64
}

// featuredPrice is the price shown on catalog cards.
var featuredPrice = Price{Currency: "R$", Amount: 2345.00}

// FormatAmount renders the amount with exactly two decimals.
func (p Price) FormatAmount() string {
	return strconv.FormatFloat(p.Amount, 'f', 2, 64)
}

func (p Price) String() string {
	return p.Currency + " " + p.FormatAmount()
}
