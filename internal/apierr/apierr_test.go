package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"credentials", Credentials(), http.StatusUnauthorized, MsgInvalidCredentials},
		{"missing token", Token(MsgMissingToken, nil), http.StatusUnauthorized, MsgMissingToken},
		{"expired token", Token(MsgInvalidToken, errors.New("token is expired")), http.StatusUnauthorized, MsgInvalidToken},
		{"entity", NotFound("Rotina não encontrada"), http.StatusNotFound, "Rotina não encontrada"},
		{"parent", ParentMissing(MsgProfileNotFound), http.StatusNotFound, MsgProfileNotFound},
		{"wrapped parent", fmt.Errorf("create routine: %w", ParentMissing(MsgProfileNotFound)), http.StatusNotFound, MsgProfileNotFound},
		{"constraint", Constraint("Intensidade deve estar entre 1 e 5"), http.StatusBadRequest, "Intensidade deve estar entre 1 e 5"},
		{"validation", Validation(FieldError{Field: "time", Message: "x"}), http.StatusBadRequest, MsgValidation},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError, MsgInternal},
		{"unclassified kind", &Error{Message: "odd"}, http.StatusInternalServerError, MsgInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Resolve(tt.err, false)
			assert.Equal(t, tt.status, out.Status)
			assert.Equal(t, tt.message, out.Body.Message)
			assert.Empty(t, out.Body.Error)
		})
	}
}

func TestResolveNotFoundMatchesByKindNotText(t *testing.T) {
	// A fault whose text mentions "não encontrado" is still a fault.
	out := Resolve(errors.New("arquivo não encontrado"), false)
	assert.Equal(t, http.StatusInternalServerError, out.Status)

	out = Resolve(NotFound("Missing"), false)
	assert.Equal(t, http.StatusNotFound, out.Status)
}

func TestResolveExposesFaultsOnlyWhenAsked(t *testing.T) {
	err := errors.New("nil map write")

	assert.Equal(t, "nil map write", Resolve(err, true).Body.Error)
	assert.Empty(t, Resolve(err, false).Body.Error)
}

func TestResolveValidationKeepsAllFields(t *testing.T) {
	err := Validation(
		FieldError{Field: "title", Message: "Título é obrigatório"},
		FieldError{Field: "time", Message: "Horário deve estar no formato HH:mm"},
	)

	out := Resolve(err, false)

	assert.Len(t, out.Body.Errors, 2)
	assert.Equal(t, "time", out.Body.Errors[1].Field)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, EntityNotFound, KindOf(fmt.Errorf("wrap: %w", NotFound("x"))))
	assert.Equal(t, Unclassified, KindOf(errors.New("plain")))
	assert.Equal(t, Unclassified, KindOf(nil))
}
