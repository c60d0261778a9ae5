package service

import "errors"

var (
	ErrValidation                = errors.New("validation")                   // 400
	ErrInvalidCredentials        = errors.New("invalid credentials")          // 400
	ErrProductDeletionNotAllowed = errors.New("product deletion not allowed") // 400
	ErrUnauthenticated           = errors.New("unauthenticated")              // 401
	ErrForbidden                 = errors.New("forbidden")                    // 403
	ErrNotFound                  = errors.New("not found")                    // 404
)

// Error carries the message shown to the client and unwraps to one of the sentinels above.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func notFound(msg string) error { return &Error{Kind: ErrNotFound, Msg: msg} }

func unauthenticated(msg string) error { return &Error{Kind: ErrUnauthenticated, Msg: msg} }

func forbidden(msg string) error { return &Error{Kind: ErrForbidden, Msg: msg} }

func invalidCredentials(msg string) error { return &Error{Kind: ErrInvalidCredentials, Msg: msg} }

func validation(msg string) error { return &Error{Kind: ErrValidation, Msg: msg} }
