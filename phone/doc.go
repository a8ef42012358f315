// Package phone models North American Numbering Plan (NANP) phone numbers.
//
// A complete NANP number is ten significant digits split into three
// fixed-width components: a three digit area code, a three digit exchange
// code, and a four digit line number. This package provides an immutable
// value type for each component and for the assembled Number, a liberal
// Parse function that accepts free-form input ("(503) 555-0123",
// "503.555.0123", and so on), a Builder for assembling numbers field by
// field, and a United States specialization that can infer the state a
// number belongs to from its area code.
//
// Parsing is deliberately liberal about what it accepts: a seven digit
// input yields a local Number with no area code, matching how numbers were
// customarily written before ten digit dialing. Operations that require a
// complete number, such as the United States specialization, reject local
// numbers at conversion time rather than at parse time.
//
// The area code tables in this package are built once on first use and are
// read-only afterward; every lookup is safe for concurrent use.
package phone
