package apperrors

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
	KindUpstream
)

var kindStatusCode = map[Kind]int{
	KindValidation:      fiber.StatusBadRequest,
	KindUnauthenticated: fiber.StatusUnauthorized,
	KindForbidden:       fiber.StatusForbidden,
	KindNotFound:        fiber.StatusNotFound,
	KindConflict:        fiber.StatusConflict,
	KindUpstream:        fiber.StatusInternalServerError,
}

type Error struct {
	kind    Kind
	message string
	cause   error
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) Kind() Kind {
	return e.kind
}

func New(kind Kind, message string) error {
	return &Error{kind: kind, message: message}
}

func Wrap(kind Kind, cause error, message string) error {
	return &Error{kind: kind, message: message, cause: cause}
}

func Validation(message string) error {
	return New(KindValidation, message)
}

func Unauthenticated(message string) error {
	return New(KindUnauthenticated, message)
}

func Forbidden(message string) error {
	return New(KindForbidden, message)
}

func NotFound(message string) error {
	return New(KindNotFound, message)
}

func Conflict(message string) error {
	return New(KindConflict, message)
}

func Upstream(cause error, message string) error {
	return Wrap(KindUpstream, cause, message)
}

func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.kind
	}
	return 0
}

// StatusCode возвращает HTTP статус для ошибки обработчика,
// для нетипизированных ошибок - 500
func StatusCode(err error) int {
	if code, exist := kindStatusCode[KindOf(err)]; exist {
		return code
	}
	return fiber.StatusInternalServerError
}
