// Package postal models postal addresses and US ZIP codes.
//
// A Zip is the five digit US postal code with an optional four digit
// extension (ZIP+4). An Address is a street address assembled from a
// street, an optional unit, a city, a Zip, and a country through a Builder
// whose setters never fail; required-field validation happens only in the
// terminal Build call. The United States specialization fixes the country
// and can infer the state from the ZIP code using the standard USPS
// state-to-ZIP-range assignment.
//
// The ZIP range tables are built once on first use and are read-only
// afterward; every lookup is safe for concurrent use.
package postal
