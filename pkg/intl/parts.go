package intl

import (
	"strings"
	"unicode"
)

// PartType tags a fragment of a rendered amount.
type PartType string

const (
	PartMinusSign PartType = "minusSign"
	PartInteger   PartType = "integer"
	PartGroup     PartType = "group"
	PartDecimal   PartType = "decimal"
	PartFraction  PartType = "fraction"
	PartCurrency  PartType = "currency"
	PartLiteral   PartType = "literal"
)

// Part is one typed fragment of a rendered amount.
type Part struct {
	Type  PartType `json:"type"`
	Value string   `json:"value"`
}

// Join concatenates part values in order.
func Join(parts []Part) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p.Value)
	}
	return b.String()
}

// Find returns the first part of the given type.
func Find(parts []Part, typ PartType) (Part, bool) {
	for _, p := range parts {
		if p.Type == typ {
			return p, true
		}
	}
	return Part{}, false
}

// splitNumber tokenizes a locale-rendered number. The last digit run is the
// fraction when scale > 0 and the separator run right before it the decimal
// mark; any other separator between digit runs is a grouping separator.
func splitNumber(s string, scale int, negative bool) []Part {
	type run struct {
		digits bool
		text   string
	}
	var runs []run
	for _, r := range s {
		d := unicode.IsDigit(r)
		if n := len(runs); n > 0 && runs[n-1].digits == d {
			runs[n-1].text += string(r)
			continue
		}
		runs = append(runs, run{digits: d, text: string(r)})
	}

	first, last := -1, -1
	for i, r := range runs {
		if r.digits {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return []Part{{Type: PartLiteral, Value: s}}
	}

	parts := make([]Part, 0, len(runs))
	for i := 0; i < first; i++ {
		typ := PartLiteral
		if negative {
			typ = PartMinusSign
		}
		parts = append(parts, Part{Type: typ, Value: runs[i].text})
	}
	for i := first; i <= last; i++ {
		r := runs[i]
		hasFraction := scale > 0 && last > first
		switch {
		case r.digits && hasFraction && i == last:
			parts = append(parts, Part{Type: PartFraction, Value: r.text})
		case r.digits:
			parts = append(parts, Part{Type: PartInteger, Value: r.text})
		case hasFraction && i == last-1:
			parts = append(parts, Part{Type: PartDecimal, Value: r.text})
		default:
			parts = append(parts, Part{Type: PartGroup, Value: r.text})
		}
	}
	for i := last + 1; i < len(runs); i++ {
		parts = append(parts, Part{Type: PartLiteral, Value: runs[i].text})
	}
	return parts
}
