// Package contact models real-world contact and geographic values: email
// addresses, NANP phone numbers, postal addresses, and the closed geographic
// vocabularies (countries, states, continents, compass directions) that
// support them.
//
// The library is organized by kind of value rather than by feature. The
// phone package handles North American Numbering Plan phone numbers, their
// fixed-width components, and the area code to state lookup tables. The
// postal package handles ZIP codes, street addresses, and the ZIP to state
// lookup tables. The email package handles mailbox addresses. The person
// package handles personal names and the Person aggregate. The geo package
// holds the State, Country, Continent, and Direction enumerations the other
// packages share.
//
// Every value in this library is immutable once constructed. Values are
// created only through validating factory functions (Parse* and friends) or
// through builders. A builder's setters always succeed; validation that
// depends on more than one field is deferred to the terminal Build method.
// Builders are not safe for concurrent use; a builder instance is assumed to
// have a single owner for its lifetime. The produced values, and the static
// lookup tables in phone and postal, are read-only and safe to share between
// goroutines without locking.
//
// This package itself holds only the error taxonomy shared by the
// sub-packages. See the errors documented here for how parse failures,
// failed lookups, and unsupported operations are reported.
package contact
