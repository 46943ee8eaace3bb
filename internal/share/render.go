package share

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultTitle heads a summary when the sheet has none
const DefaultTitle = "Discount split"

const currencyPrefix = "Rp"

var printer = message.NewPrinter(language.Indonesian)

// FormatAmount renders v as Rupiah with Indonesian digit grouping,
// e.g. 52500 -> "Rp52.500"
func FormatAmount(v float64) string {
	return currencyPrefix + printer.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

// Summary renders a plain-text summary suitable for a clipboard or chat message
func Summary(s Sheet) string {
	title := s.Title
	if title == "" {
		title = DefaultTitle
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	for i, l := range s.Lines {
		fmt.Fprintf(&b, "%d. %s: %s -> %s\n", i+1, l.Name, FormatAmount(l.Original), FormatAmount(float64(l.Allocated)))
	}
	fmt.Fprintf(&b, "Total: %s -> %s\n", FormatAmount(s.OriginalTotal), FormatAmount(float64(s.Total)))
	fmt.Fprintf(&b, "Total before discount: %s", FormatAmount(s.ReferenceTotal))

	return b.String()
}
