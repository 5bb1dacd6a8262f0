package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"kaineetam/internal/errors"
)

const (
	upiCurrency = "INR"
	upiNote     = "Vishu Kaineetam"
)

// UPIBuilder builds upi:// payment deep links.
type UPIBuilder struct{}

// NewUPIBuilder creates a new UPI link builder.
func NewUPIBuilder() *UPIBuilder {
	return &UPIBuilder{}
}

// BuildLink produces a UPI payment request link for the given payee handle,
// payee display name and amount. The handle goes into the link verbatim so
// payment apps can route on it; the display name is percent-encoded so spaces
// and special characters cannot corrupt the URI. The amount is always
// rendered with exactly two decimal places.
//
// Deterministic and side-effect-free: same inputs, same link.
func (b *UPIBuilder) BuildLink(upiID, payeeName string, amount decimal.Decimal) (string, error) {
	if strings.TrimSpace(upiID) == "" || strings.TrimSpace(payeeName) == "" || !amount.IsPositive() {
		// insufficient data to request a payment, not a system fault
		return "", errors.ErrNothingToEncode
	}

	return fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%s&cu=%s&tn=%s",
		upiID,
		escapeUPIParam(payeeName),
		amount.StringFixed(2),
		upiCurrency,
		escapeUPIParam(upiNote),
	), nil
}

// escapeUPIParam percent-encodes a query value. UPI apps expect spaces as
// %20, not the '+' that url.QueryEscape emits.
func escapeUPIParam(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}
