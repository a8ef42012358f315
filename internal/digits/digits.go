// Package digits provides the digit-string scanning shared by the phone and
// postal parsers. Every structured identifier in this library (area codes,
// exchange codes, line numbers, ZIP codes) is a fixed-width run of digits
// that may arrive dressed up in punctuation, so the same strip-then-measure
// contract is reused everywhere with the width supplied as an argument.
package digits

import (
	"fmt"
	"strings"

	contact "github.com/zostay/go-contact"
)

// Strip removes every rune that is not an ASCII digit and returns what is
// left. It never fails; an input with no digits at all simply returns the
// empty string.
func Strip(s string) string {
	var out strings.Builder
	out.Grow(len(s))
	for _, c := range s {
		if c >= '0' && c <= '9' {
			out.WriteRune(c)
		}
	}
	return out.String()
}

// Exact strips s of non-digits and asserts that exactly width digits remain.
// On success it returns the digit string. On failure it returns a
// *contact.InvalidInputError carrying the original input and the required
// width.
func Exact(s string, width int) (string, error) {
	ds := Strip(s)
	if len(ds) != width {
		return "", &contact.InvalidInputError{
			Value:      s,
			Constraint: fmt.Sprintf("must contain exactly %d digits", width),
		}
	}
	return ds, nil
}

// Between strips s of non-digits and asserts that the remaining digit count
// falls within [min, max]. This is the variable-width seam used by values
// whose length is not fixed by the numbering plan, such as phone extensions.
func Between(s string, min, max int) (string, error) {
	ds := Strip(s)
	if len(ds) < min || len(ds) > max {
		return "", &contact.InvalidInputError{
			Value:      s,
			Constraint: fmt.Sprintf("must contain between %d and %d digits", min, max),
		}
	}
	return ds, nil
}
