package models

import (
	"encoding/json"
	"fmt"
)

// RegistrationRequest is the body posted to the device registration endpoint.
type RegistrationRequest struct {
	// Name is the display name the device is registered under.
	Name string `json:"name"`

	// OrganisationPassword authorises the registration within the organisation.
	OrganisationPassword string `json:"organisationpassword"`

	// DeviceIdentifier is the trimmed content of the local identifier file.
	DeviceIdentifier string `json:"deviceidentifier"`
}

// RegistrationSuccess represents the server response to an accepted registration.
type RegistrationSuccess struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Message string `json:"message"`
}

func (r RegistrationSuccess) String() string {
	return fmt.Sprintf("success=%t token=%s message=%s", r.Success, r.Token, r.Message)
}

// RegistrationError represents the body of a rejected registration.
// It is returned as an error so callers can tell it apart with errors.As.
type RegistrationError struct {
	Message string          `json:"message"`
	Errors  json.RawMessage `json:"errors,omitempty"`

	// StatusCode is the HTTP status the server answered with.
	StatusCode int `json:"-"`
}

// Error returns the server supplied message unchanged.
func (e *RegistrationError) Error() string {
	return e.Message
}
