package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CartLine is one priced line of a checkout request. It lives only for
// the duration of the request and is never persisted directly.
type CartLine struct {
	Name      string
	Qty       int
	UnitPrice decimal.Decimal
}

// Total returns qty × unit price for this line.
func (l CartLine) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Qty)))
}

// EffectiveUnitPrice returns the promotional price when one is set,
// otherwise the base price.
func EffectiveUnitPrice(base decimal.Decimal, promo *decimal.Decimal) decimal.Decimal {
	if promo != nil {
		return *promo
	}
	return base
}

// Total sums qty × unit price over all lines in decimal arithmetic.
func Total(lines []CartLine) decimal.Decimal {
	total := decimal.NewFromInt(0)
	for _, l := range lines {
		total = total.Add(l.Total())
	}
	return total
}

// FormatBRL renders d with two fractional digits, a comma as the
// decimal separator and periods as thousands separators:
// 1234.56 -> "1.234,56". Output never depends on the host locale.
func FormatBRL(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(intPart[i])
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}

// MessageBuilder renders the order summary that gets embedded in the
// WhatsApp deep link.
type MessageBuilder struct {
	StoreName string
}

// Build produces the four-part message: store header, buyer line, one
// line per cart line and the grand total. The buyer line is present
// even when name and phone are empty. Identical input yields a
// byte-identical message.
func (b MessageBuilder) Build(lines []CartLine, total decimal.Decimal, customerName, customerPhone string) string {
	parts := make([]string, 0, len(lines)+3)
	parts = append(parts, "Order "+b.StoreName)
	parts = append(parts, strings.TrimSpace(fmt.Sprintf("Customer: %s | Phone: %s", customerName, customerPhone)))
	for _, l := range lines {
		parts = append(parts, fmt.Sprintf("- %s x%d = R$ %s", l.Name, l.Qty, FormatBRL(l.Total())))
	}
	parts = append(parts, "Total: R$ "+FormatBRL(total))
	return strings.TrimSpace(strings.Join(parts, "\n"))
}
