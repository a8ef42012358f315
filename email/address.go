// Package email models mailbox addresses as structured values: a username
// at a Domain, where the Domain keeps its final label (the extension, e.g.
// "com") separate from the rest of its name.
//
// Two parsers are provided. Parse is strict: input must satisfy the
// RFC 5322 grammar as checked by github.com/zostay/go-addr, which is what
// you want when validating data entry. ParseLiberal takes the
// strict-out/liberal-in position instead and extracts something usable
// from the mess real-world data tends to be.
package email

import (
	"strings"

	"github.com/zostay/go-addr/pkg/addr"

	contact "github.com/zostay/go-contact"
)

// Domain is the host part of a mailbox address, split at its final dot
// into a name and an extension: "example.com" has name "example" and
// extension "com", "mail.example.co.uk" has name "mail.example.co" and
// extension "uk".
type Domain struct {
	name string
	ext  string
}

// ParseDomain splits a host name at its final dot. It fails with a
// *contact.InvalidInputError when the input is empty, has no dot, has an
// empty label on either side of the final dot, or contains characters
// that cannot appear in a host name.
func ParseDomain(s string) (Domain, error) {
	ds := strings.TrimSpace(s)
	if strings.ContainsAny(ds, "@ \t") || ds == "" {
		return Domain{}, &contact.InvalidInputError{
			Value:      s,
			Constraint: "a domain must be a host name without spaces or @",
		}
	}

	dot := strings.LastIndex(ds, ".")
	if dot <= 0 || dot == len(ds)-1 {
		return Domain{}, &contact.InvalidInputError{
			Value:      s,
			Constraint: "a domain requires a name and an extension separated by a dot",
		}
	}
	return Domain{name: ds[:dot], ext: ds[dot+1:]}, nil
}

// IsZero is true when no domain is set.
func (d Domain) IsZero() bool { return d.name == "" }

// Name returns everything before the final dot.
func (d Domain) Name() string { return d.name }

// Extension returns the final label (the top-level domain).
func (d Domain) Extension() string { return d.ext }

// String renders the domain as "{name}.{extension}".
func (d Domain) String() string {
	if d.IsZero() {
		return ""
	}
	return d.name + "." + d.ext
}

// Address is an immutable mailbox address: a username at a Domain, with an
// optional display name.
type Address struct {
	display  string
	username string
	domain   Domain
}

// New constructs an Address from a username and a Domain. It fails with a
// *contact.InvalidInputError when the username is empty or contains
// characters that cannot appear in one.
func New(username string, d Domain) (*Address, error) {
	if username == "" || strings.ContainsAny(username, "@ \t") {
		return nil, &contact.InvalidInputError{
			Value:      username,
			Constraint: "a username must be non-empty without spaces or @",
		}
	}
	if d.IsZero() {
		return nil, &contact.InvalidInputError{
			Value:      username,
			Constraint: "a domain is required",
		}
	}
	return &Address{username: username, domain: d}, nil
}

// Parse extracts an Address from input that must satisfy the RFC 5322
// mailbox grammar. Both bare addresses ("jdoe@example.com") and
// display-name forms ("Jane Doe <jdoe@example.com>") are accepted. Input
// the strict grammar rejects fails with a *contact.InvalidInputError; use
// ParseLiberal for dirty data.
func Parse(s string) (*Address, error) {
	in := strings.TrimSpace(s)
	if _, err := addr.ParseEmailAddress(in); err != nil {
		return nil, &contact.InvalidInputError{
			Value:      s,
			Constraint: "not an RFC 5322 mailbox address",
		}
	}
	return ParseLiberal(in)
}

// ParseLiberal extracts an Address without insisting on the strict
// grammar. The last whitespace-separated word containing an @ is taken as
// the mailbox (angle brackets stripped); everything before it becomes the
// display name. It fails with a *contact.InvalidInputError only when no
// usable user@host pair can be found at all.
func ParseLiberal(s string) (*Address, error) {
	words := strings.Fields(s)

	var display, mailbox string
	if n := len(words); n > 0 {
		mailbox = strings.Trim(words[n-1], "<>")
		display = strings.Join(words[:n-1], " ")
	}

	at := strings.LastIndex(mailbox, "@")
	if at <= 0 || at == len(mailbox)-1 {
		return nil, &contact.InvalidInputError{
			Value:      s,
			Constraint: "an email address requires a username and a domain separated by @",
		}
	}

	d, err := ParseDomain(mailbox[at+1:])
	if err != nil {
		return nil, err
	}

	a, err := New(mailbox[:at], d)
	if err != nil {
		return nil, err
	}
	a.display = display
	return a, nil
}

// DisplayName returns the display name, which is empty when none was
// present in the parsed input.
func (a *Address) DisplayName() string { return a.display }

// Username returns the part before the @.
func (a *Address) Username() string { return a.username }

// Domain returns the part after the @.
func (a *Address) Domain() Domain { return a.domain }

// Equal reports whether two addresses carry the same display name,
// username, and domain.
func (a *Address) Equal(other *Address) bool {
	if a == nil || other == nil {
		return a == other
	}
	return *a == *other
}

// String renders the bare address as "{username}@{domain}.{extension}".
// The display name is not rendered; see Format.
func (a *Address) String() string {
	return a.username + "@" + a.domain.String()
}

// Format renders the address with its display name when one is set, as
// "Jane Doe <jdoe@example.com>", and like String otherwise.
func (a *Address) Format() string {
	if a.display == "" {
		return a.String()
	}
	return a.display + " <" + a.String() + ">"
}
