package kernel

import (
	"errors"
	"strings"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// ErrContactIsNotConstructed is returned when a Contact was not created via
// NewContact.
var ErrContactIsNotConstructed = errs.NewValueIsRequiredError(
	"contact must be created via NewContact constructor")

// Contact represents the person reachable at an origin or destination.
// Both the name and the phone number are mandatory.
type Contact struct { //nolint:recvcheck //using for validation
	name        string
	phoneNumber string
	guard       guard.ConstructorGuard
}

// NewContact creates a Contact from a name and a phone number.
func NewContact(name, phoneNumber string) (Contact, error) {
	contact := Contact{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(contact.setName(name), contact.setPhoneNumber(phoneNumber)); err != nil {
		return Contact{}, err
	}

	return contact, nil
}

// Validate checks that the Contact was created through its constructor.
func (c Contact) Validate() error {
	return c.guard.Validate(ErrContactIsNotConstructed)
}

// Name returns the contact person's name.
func (c Contact) Name() string {
	return c.name
}

// PhoneNumber returns the contact phone number.
func (c Contact) PhoneNumber() string {
	return c.phoneNumber
}

func (c *Contact) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("contact name")
	}
	c.name = name
	return nil
}

func (c *Contact) setPhoneNumber(phoneNumber string) error {
	if strings.TrimSpace(phoneNumber) == "" {
		return errs.NewValueIsRequiredError("contact phone number")
	}
	c.phoneNumber = phoneNumber
	return nil
}
