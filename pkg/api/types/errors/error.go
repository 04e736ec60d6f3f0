// Package errors defines the body of error responses.
package errors

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrorResponse is the JSON body of error responses.
type ErrorResponse struct {
	Message ErrorMessage `json:"message"`
}

// ErrorMessage tells clients what went wrong.
//
// Reason is shown to users as it is, like "Client not found".
type ErrorMessage struct {
	Reason string `json:"reason"`
	Advice string `json:"advice,omitempty"`

	// Cause is kept for logs. It is not sent to clients.
	Cause error `json:"-"`
}

var errNoReason = errors.New(`error message: "reason" is required`)

func (em *ErrorMessage) UnmarshalJSON(b []byte) error {
	type body struct {
		Reason *string `json:"reason"`
		Advice string  `json:"advice"`
	}
	var m body
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	if m.Reason == nil {
		return errNoReason
	}
	*em = ErrorMessage{Reason: *m.Reason, Advice: m.Advice}
	return nil
}

func (em ErrorMessage) String() string {
	b := new(strings.Builder)
	b.WriteString(em.Reason)
	if em.Advice != "" {
		b.WriteString(" (" + em.Advice + ")")
	}
	if em.Cause != nil {
		b.WriteString(": " + em.Cause.Error())
	}
	return b.String()
}

func (em ErrorMessage) Error() string {
	return em.String()
}

func (em ErrorMessage) Unwrap() error {
	return em.Cause
}
