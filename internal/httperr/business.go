package httperr

import "errors"

// ===============================
// Erros de negócio
// ===============================

// Kind agrupa os códigos nas quatro famílias que o core devolve.
type Kind string

const (
	KindValidation        Kind = "validation_error"
	KindNotFound          Kind = "not_found"
	KindInvalidTransition Kind = "invalid_transition"
	KindQueueFull         Kind = "queue_full"
)

type BusinessError struct {
	Kind Kind
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrValidation(code string) error {
	return BusinessError{Kind: KindValidation, Code: code}
}

func ErrNotFound(code string) error {
	return BusinessError{Kind: KindNotFound, Code: code}
}

func ErrInvalidTransition(code string) error {
	return BusinessError{Kind: KindInvalidTransition, Code: code}
}

func ErrQueueFull(code string) error {
	return BusinessError{Kind: KindQueueFull, Code: code}
}

func IsKind(err error, kind Kind) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
