// Package apierr defines the domain error taxonomy shared by every layer and
// the single function that turns those errors into transport outcomes.
package apierr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure. Services raise errors of a kind; only Resolve
// decides what a kind means on the wire.
type Kind uint8

const (
	Unclassified Kind = iota
	InvalidCredentials
	InvalidOrExpiredToken
	ValidationFailed
	ParentNotFound
	EntityNotFound
	DomainConstraintViolated
)

func (k Kind) String() string {
	switch k {
	case InvalidCredentials:
		return "invalid_credentials"
	case InvalidOrExpiredToken:
		return "invalid_token"
	case ValidationFailed:
		return "validation_failed"
	case ParentNotFound:
		return "parent_not_found"
	case EntityNotFound:
		return "not_found"
	case DomainConstraintViolated:
		return "constraint_violated"
	default:
		return "unclassified"
	}
}

// FieldError is one failed input rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

const (
	MsgInvalidCredentials = "Credenciais inválidas"
	MsgInvalidToken       = "Token inválido ou expirado"
	MsgMissingToken       = "Token não fornecido"
	MsgMalformedToken     = "Formato de token inválido"
	MsgValidation         = "Erro de validação"
	MsgProfileNotFound    = "Perfil não encontrado"
	MsgInternal           = "Erro interno do servidor"
	MsgRouteNotFound      = "Endpoint não encontrado"
)

func Credentials() *Error { return New(InvalidCredentials, MsgInvalidCredentials) }

// Token reports a missing, malformed or rejected bearer token.
func Token(msg string, cause error) *Error {
	return &Error{Kind: InvalidOrExpiredToken, Message: msg, Err: cause}
}

func NotFound(msg string) *Error { return New(EntityNotFound, msg) }

func ParentMissing(msg string) *Error { return New(ParentNotFound, msg) }

func Constraint(msg string) *Error { return New(DomainConstraintViolated, msg) }

// Validation carries every failed field rule of a request, never just the first.
func Validation(fields ...FieldError) *Error {
	return &Error{Kind: ValidationFailed, Message: MsgValidation, Fields: fields}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unclassified
}
