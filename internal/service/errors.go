package service

import (
	"errors"
	"fmt"

	"github.com/kingrain94/notes-api/internal/authz"
)

// Kinds. Every error a service returns wraps exactly one of these, and the
// api layer picks the status code from it.
var (
	ErrValidation                 = errors.New("validation failed")
	ErrUnauthenticated            = errors.New("authentication required")
	ErrForbidden                  = errors.New("access denied")
	ErrNotFound                   = errors.New("not found")
	ErrConflict                   = errors.New("conflict")
	ErrInvalidOrExpiredInvitation = errors.New("invalid or expired invitation")
	ErrSlugAllocationFailed       = errors.New("unable to generate unique organization URL, please try a different name")
	ErrQuotaExceeded              = errors.New("note limit reached, ask an admin to upgrade to the pro plan")
	ErrQuotaBlocksTransition      = errors.New("note volume blocks plan transition")
)

var (
	// Session errors
	ErrInvalidCredential = newError(ErrUnauthenticated, "invalid or expired token")
	ErrUnknownSubject    = newError(ErrUnauthenticated, "user not found")
	ErrInvalidLogin      = newError(ErrUnauthenticated, "invalid credentials")

	// Account errors
	ErrEmailAlreadyExists = newError(ErrConflict, "an account with this email already exists")
	ErrInvitationPending  = newError(ErrConflict, "invitation already sent to this email")

	// Plan errors
	ErrInvalidTransition = newError(ErrConflict, "invalid plan transition")

	// Authorization errors
	ErrSelfRemoval = newError(ErrForbidden, "cannot delete your own account")
	ErrWrongTenant = newError(ErrForbidden, "access denied, can only manage your own tenant")
	ErrAdminOnly   = newError(ErrForbidden, "access denied, admin role required")

	ErrNoteNotFound = newError(ErrNotFound, "note not found")
	ErrUserNotFound = newError(ErrNotFound, "user not found")
)

// kindError pairs a client-facing message with the kind it belongs to
type kindError struct {
	msg  string
	kind error
}

func newError(kind error, msg string) error {
	return &kindError{msg: msg, kind: kind}
}

func (e *kindError) Error() string {
	return e.msg
}

func (e *kindError) Unwrap() error {
	return e.kind
}

func validationError(format string, args ...any) error {
	return newError(ErrValidation, fmt.Sprintf(format, args...))
}

// QuotaBlockedError reports a downgrade refused because the tenant holds more
// notes than the target plan allows.
type QuotaBlockedError struct {
	Count int64
	Limit int64
}

func (e *QuotaBlockedError) Error() string {
	return fmt.Sprintf("cannot downgrade: tenant has %d notes, the free plan allows %d; delete notes first", e.Count, e.Limit)
}

func (e *QuotaBlockedError) Unwrap() error {
	return ErrQuotaBlocksTransition
}

// forbidden translates an authorizer denial into the service taxonomy
func forbidden(err error) error {
	switch {
	case errors.Is(err, authz.ErrSelfRemoval):
		return ErrSelfRemoval
	case errors.Is(err, authz.ErrCrossTenant):
		return ErrWrongTenant
	case errors.Is(err, authz.ErrAdminOnly):
		return ErrAdminOnly
	case errors.Is(err, authz.ErrNoSubject):
		return ErrUnauthenticated
	default:
		return newError(ErrForbidden, err.Error())
	}
}
