package domain

import "fmt"

// PhoneNumber is an E.164-ish phone number kept as an opaque string.
type PhoneNumber string

// Address is a minimal postal address.
type Address struct {
	Street     string
	City       string
	PostalCode string
}

// ContactMethod is a closed set of ways to reach a customer. Exactly one
// variant applies to a value; dispatch with a type switch over the variants.
type ContactMethod interface {
	isContactMethod()
}

type PostalMail struct{ Address Address }

type Email struct{ Address string }

type VoiceMail struct{ Number PhoneNumber }

type SMS struct{ Number PhoneNumber }

func (PostalMail) isContactMethod() {}
func (Email) isContactMethod()      {}
func (VoiceMail) isContactMethod()  {}
func (SMS) isContactMethod()        {}

// Describe renders a contact method as a one-line human-readable string.
func Describe(m ContactMethod) string {
	switch c := m.(type) {
	case PostalMail:
		return fmt.Sprintf("postal: %s, %s %s", c.Address.Street, c.Address.PostalCode, c.Address.City)
	case Email:
		return fmt.Sprintf("email: %s", c.Address)
	case VoiceMail:
		return fmt.Sprintf("voicemail: %s", c.Number)
	case SMS:
		return fmt.Sprintf("sms: %s", c.Number)
	case nil:
		return "no contact on file"
	default:
		return "unknown contact method"
	}
}
