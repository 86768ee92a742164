package domain

import "strings"

// Currency is a supported currency and its display metadata.
type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

const (
	CurrencyUSDT = "USDT"
	CurrencyMXN  = "MXN"
	CurrencyPEN  = "PEN"
	CurrencyCOP  = "COP"
	CurrencyVES  = "VES"
)

// HubCurrency is the stablecoin through which indirect rates are routed.
const HubCurrency = CurrencyUSDT

var currencies = []Currency{
	{Code: CurrencyUSDT, Name: "USDT", Symbol: "$"},
	{Code: CurrencyMXN, Name: "Pesos Mexicanos", Symbol: "$"},
	{Code: CurrencyPEN, Name: "Soles Peruanos", Symbol: "S/"},
	{Code: CurrencyCOP, Name: "Pesos Colombianos", Symbol: "$"},
	{Code: CurrencyVES, Name: "Bolívares", Symbol: "Bs."},
}

// Currencies returns a copy of the registry in display order.
func Currencies() []Currency {
	out := make([]Currency, len(currencies))
	copy(out, currencies)
	return out
}

// LookupCurrency finds a currency by code.
func LookupCurrency(code string) (Currency, bool) {
	for _, c := range currencies {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}

func IsSupportedCurrency(code string) bool {
	_, ok := LookupCurrency(code)
	return ok
}

// CurrencyPair builds the ordered "FROM/TO" key used by exchange rate rows.
func CurrencyPair(from, to string) string {
	return from + "/" + to
}

// SplitPair parses a "FROM/TO" key.
func SplitPair(pair string) (from, to string, ok bool) {
	from, to, ok = strings.Cut(pair, "/")
	if !ok || from == "" || to == "" || strings.Contains(to, "/") {
		return "", "", false
	}
	return from, to, true
}
