package domain

import "errors"

// Stable error kinds. Handlers and callers branch on these with errors.Is;
// the wrapping message carries the detail.
var (
	ErrInvalidVoucher    = errors.New("voucher is invalid")
	ErrVoucherRejected   = errors.New("voucher rejected")
	ErrFieldUnavailable  = errors.New("field slot is unavailable")
	ErrInvalidTransition = errors.New("invalid booking transition")
	ErrForbidden         = errors.New("forbidden")
	ErrArtifactNotReady  = errors.New("export artifact is not ready")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
)
