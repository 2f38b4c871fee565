package service

import "strings"

// DefaultMailDomain is the institution's student mail domain.
const DefaultMailDomain = "muj.manipal.edu"

// AddressResolver derives a student's mailbox from their identity.
type AddressResolver interface {
	Address(firstname, regno string) string
}

// InstitutionalAddress builds firstname.regno@Domain, with the first name
// lowercased.
type InstitutionalAddress struct {
	Domain string
}

func (a InstitutionalAddress) Address(firstname, regno string) string {
	domain := a.Domain
	if domain == "" {
		domain = DefaultMailDomain
	}
	return strings.ToLower(firstname) + "." + regno + "@" + domain
}
