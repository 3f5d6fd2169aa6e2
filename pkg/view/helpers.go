package view

import "fmt"

// Money formats an upstream price for display. The upstream catalog prices
// everything in USD.
func Money(amount float64) string {
	return fmt.Sprintf("%s%.2f", currencySymbol("USD"), amount)
}

func currencySymbol(code string) string {
	switch code {
	case "EUR":
		return "€"
	case "USD":
		return "$"
	case "GBP":
		return "£"
	case "TRY":
		return "₺"
	default:
		return code + " "
	}
}
