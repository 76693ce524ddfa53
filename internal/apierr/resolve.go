package apierr

import (
	"errors"
	"net/http"
)

// Body is the JSON shape of every error response.
type Body struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
	Error   string       `json:"error,omitempty"`
}

type Outcome struct {
	Status int
	Body   Body
}

// Resolve maps any error to its transport outcome. The checks run in a fixed
// order and the first match wins; anything unrecognised is a server fault
// whose message is only disclosed when exposeFaults is set.
func Resolve(err error, exposeFaults bool) Outcome {
	var e *Error
	if !errors.As(err, &e) {
		return fault(err, exposeFaults)
	}
	switch e.Kind {
	case InvalidCredentials:
		return Outcome{Status: http.StatusUnauthorized, Body: Body{Message: e.Message}}
	case InvalidOrExpiredToken:
		return Outcome{Status: http.StatusUnauthorized, Body: Body{Message: e.Message}}
	case EntityNotFound, ParentNotFound:
		return Outcome{Status: http.StatusNotFound, Body: Body{Message: e.Message}}
	case DomainConstraintViolated:
		return Outcome{Status: http.StatusBadRequest, Body: Body{Message: e.Message}}
	case ValidationFailed:
		return Outcome{Status: http.StatusBadRequest, Body: Body{Message: e.Message, Errors: e.Fields}}
	}
	return fault(err, exposeFaults)
}

func fault(err error, expose bool) Outcome {
	out := Outcome{Status: http.StatusInternalServerError, Body: Body{Message: MsgInternal}}
	if expose && err != nil {
		out.Body.Error = err.Error()
	}
	return out
}
