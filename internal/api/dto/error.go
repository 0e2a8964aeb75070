package dto

// Error codes carried in Error.Code
const (
	CodeValidation           = "validation_error"
	CodeUnauthenticated      = "unauthenticated"
	CodeForbidden            = "forbidden"
	CodeNotFound             = "not_found"
	CodeConflict             = "conflict"
	CodeInvalidInvitation    = "invalid_invitation"
	CodeSlugAllocation       = "slug_allocation_failed"
	CodeQuotaExceeded        = "quota_exceeded"
	CodeQuotaBlocks          = "quota_blocks_transition"
	CodeSelfRemoval          = "self_removal"
	CodeRateLimited          = "rate_limited"
	CodeRequestTooLarge      = "request_too_large"
	CodeUnsupportedMediaType = "unsupported_media_type"
	CodeInternal             = "internal"
)

// Error represents a standard error response
type Error struct {
	Error        string `json:"error" example:"error message"`
	Code         string `json:"code" example:"validation_error"`
	LimitReached bool   `json:"limit_reached,omitempty" example:"true"`
	NeedsAction  bool   `json:"needs_action,omitempty" example:"true"`
	NoteCount    int64  `json:"note_count,omitempty" example:"5"`
}
