// Package person models personal names and the Person aggregate that ties
// a name to its contact details.
package person

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	contact "github.com/zostay/go-contact"
)

// Name is an immutable personal name: a first name, an optional middle
// name, a last name, and an optional suffix ("Jr", "III").
type Name struct {
	first  string
	middle string
	last   string
	suffix string
}

// ParseName extracts a Name from input of the form
//
//	First [Middle ...] Last[, Suffix]
//
// A single comma separates an optional suffix. Words that arrive in a
// uniform case ("JANE", "doe") are canonicalized to title case; words with
// deliberate interior capitals ("McDonald", "DiCaprio") are kept as
// written. At least a first and a last name are required.
func ParseName(s string) (*Name, error) {
	base := strings.TrimSpace(s)

	var suffix string
	if i := strings.Index(base, ","); i >= 0 {
		suffix = canonicalWord(strings.TrimSpace(base[i+1:]))
		base = strings.TrimSpace(base[:i])
	}

	words := strings.Fields(base)
	if len(words) < 2 {
		return nil, &contact.InvalidInputError{
			Value:      s,
			Constraint: "a name requires at least a first and a last name",
		}
	}

	for i, w := range words {
		words[i] = canonicalWord(w)
	}
	return &Name{
		first:  words[0],
		middle: strings.Join(words[1:len(words)-1], " "),
		last:   words[len(words)-1],
		suffix: suffix,
	}, nil
}

// canonicalWord title-cases a word that arrived in a uniform case and
// leaves mixed-case words alone. A fresh Caser is taken per word because
// Caser values are not safe for concurrent use.
func canonicalWord(w string) string {
	if w == strings.ToLower(w) || w == strings.ToUpper(w) {
		return cases.Title(language.AmericanEnglish).String(strings.ToLower(w))
	}
	return w
}

// First returns the first name.
func (n *Name) First() string { return n.first }

// Middle returns the middle name or names, which is empty when none is
// set.
func (n *Name) Middle() string { return n.middle }

// Last returns the last name.
func (n *Name) Last() string { return n.last }

// Suffix returns the suffix, which is empty when none is set.
func (n *Name) Suffix() string { return n.suffix }

// Equal reports whether two names carry the same parts.
func (n *Name) Equal(other *Name) bool {
	if n == nil || other == nil {
		return n == other
	}
	return *n == *other
}

// String renders the name as "First [Middle ]Last[, Suffix]".
func (n *Name) String() string {
	parts := make([]string, 0, 3)
	if n.first != "" {
		parts = append(parts, n.first)
	}
	if n.middle != "" {
		parts = append(parts, n.middle)
	}
	if n.last != "" {
		parts = append(parts, n.last)
	}
	s := strings.Join(parts, " ")
	if n.suffix != "" {
		s += ", " + n.suffix
	}
	return s
}

// Sortable renders the name in last-name-first order, "Last, First", as
// used for alphabetizing.
func (n *Name) Sortable() string {
	if n.last == "" {
		return n.first
	}
	if n.first == "" {
		return n.last
	}
	return n.last + ", " + n.first
}
