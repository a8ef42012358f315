// Package geo holds the closed geographic vocabularies shared by the rest
// of the library: compass directions, continents, countries, and US states.
//
// Each enumeration is a small named string type whose value is the
// customary short code (USPS abbreviation for states, ISO 3166 alpha-2 for
// countries). The descriptive data behind each constant lives in unexported
// tables that are populated at initialization and never mutated afterward,
// so every lookup here is read-only and safe for concurrent use.
package geo
