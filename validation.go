package cashbook

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

var (
	// ErrEmptyType is returned when the type field is blank.
	ErrEmptyType = errors.New("type is empty")
	// ErrInvalidPrice is returned when the price field is not a number.
	ErrInvalidPrice = errors.New("price is not a number")
)

// Form holds the raw text of the add and edit forms.
//
// The date is not validated: any date, including in the future, is accepted.
type Form struct {
	Type  string
	Price string
	Date  time.Time
}

// NewForm returns an empty form dated now.
func NewForm(now time.Time) Form { return Form{Date: now} }

// EditForm returns a form prefilled with tx. A zero price is shown as an
// empty field.
func EditForm(tx Transaction, loc Locale) Form {
	f := Form{Type: tx.Type, Date: tx.Date}
	if !tx.Price.IsZero() {
		f.Price = FormatPrice(tx.Price, loc)
	}
	return f
}

// Validate returns every reason why the form cannot be saved.
func (f Form) Validate(loc Locale) error {
	var errs error
	switch typ := strings.TrimSpace(f.Type); {
	case typ == "":
		errs = errors.Join(errs, ErrEmptyType)
	case len(typ) > MaxTypeLength:
		errs = errors.Join(errs, ErrTypeTooLong)
	}
	if _, err := ParsePrice(f.Price, loc); err != nil {
		errs = errors.Join(errs, err)
	}
	return errs
}

// CanSave reports whether the form can be saved.
func (f Form) CanSave(loc Locale) bool { return f.Validate(loc) == nil }

// Entry returns the validated entry, with the type trimmed.
func (f Form) Entry(loc Locale) (Entry, error) {
	if err := f.Validate(loc); err != nil {
		return Entry{}, err
	}
	price, _ := ParsePrice(f.Price, loc)
	return Entry{Type: strings.TrimSpace(f.Type), Price: price, Date: f.Date}, nil
}

var priceRE = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// ParsePrice parses a decimal number written with the conventions of loc.
// Grouping separators are optional, but when present they must split the
// integer part in groups of three digits. An empty text is zero.
func ParsePrice(text string, loc Locale) (decimal.Decimal, error) {
	if text == "" {
		return decimal.Zero, nil
	}
	invalid := fmt.Errorf("%q: %w", text, ErrInvalidPrice)

	s := strings.ReplaceAll(strings.TrimSpace(text), "−", "-") // minus sign
	intPart, fracPart, hasFrac := strings.Cut(s, string(loc.Decimal))
	if strings.ContainsFunc(fracPart, loc.isGroup) {
		return decimal.Zero, invalid
	}
	intPart, ok := ungroup(intPart, loc.isGroup)
	if !ok {
		return decimal.Zero, invalid
	}
	s = intPart
	if hasFrac {
		s += "." + fracPart
	}
	if !priceRE.MatchString(s) {
		return decimal.Zero, invalid
	}
	s = strings.TrimSuffix(strings.TrimPrefix(s, "+"), ".")
	if strings.HasPrefix(s, ".") || strings.HasPrefix(s, "-.") {
		s = strings.Replace(s, ".", "0.", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, invalid
	}
	return d, nil
}

// ungroup removes the grouping separators of an integer part, with an
// optional sign. It reports false if the groups are not of three digits,
// except the first one that has one to three.
func ungroup(s string, isGroup func(rune) bool) (string, bool) {
	if !strings.ContainsFunc(s, isGroup) {
		return s, true
	}
	sign := ""
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		sign, s = s[:1], s[1:]
	}
	var groups []string
	start := 0
	for i, r := range s {
		if isGroup(r) {
			groups = append(groups, s[start:i])
			start = i + utf8.RuneLen(r)
		}
	}
	groups = append(groups, s[start:])
	for i, g := range groups {
		if g == "" || len(g) > 3 || (i > 0 && len(g) != 3) || strings.ContainsFunc(g, notDigit) {
			return "", false
		}
	}
	return sign + strings.Join(groups, ""), true
}

func notDigit(r rune) bool { return r < '0' || r > '9' }

// FormatPrice writes p with the decimal separator of loc and no grouping.
func FormatPrice(p decimal.Decimal, loc Locale) string {
	return strings.Replace(p.String(), ".", string(loc.Decimal), 1)
}
