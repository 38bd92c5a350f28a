package services

import "errors"

// OutcomeKind tells the delivery layer which notice channel to use.
type OutcomeKind string

const (
	OutcomeSuccess OutcomeKind = "success"
	OutcomeFailure OutcomeKind = "error"
)

// User-facing notices.
const (
	NoticePostCreated           = "Post created successfully!"
	NoticePostUpdated           = "Post updated successfully!"
	NoticePostDeleted           = "Post deleted successfully!"
	NoticeCommentAdded          = "Comment added!"
	NoticePostNotFound          = "Post not found!"
	NoticePostFieldsRequired    = "Title and Content are required!"
	NoticeCommentFieldsRequired = "Both name and comment are required!"
)

// Outcome is the result every mutating operation reports. Err is the domain
// error behind a failure (*ValidationError or *NotFoundError) and nil on
// success.
type Outcome struct {
	Kind    OutcomeKind `json:"kind"`
	Message string      `json:"message"`
	Err     error       `json:"-"`
}

// Success builds a successful outcome.
func Success(message string) Outcome {
	return Outcome{Kind: OutcomeSuccess, Message: message}
}

// Failure builds a failed outcome carrying the notice of a domain error.
func Failure(err error) Outcome {
	return Outcome{Kind: OutcomeFailure, Message: noticeOf(err), Err: err}
}

// OK reports whether the operation succeeded.
func (o Outcome) OK() bool {
	return o.Kind == OutcomeSuccess
}

// IsNotFound reports whether the operation failed on a missing post.
func (o Outcome) IsNotFound() bool {
	var notFoundErr *NotFoundError
	return errors.As(o.Err, &notFoundErr)
}

// IsValidation reports whether the operation failed on missing fields.
func (o Outcome) IsValidation() bool {
	var validationErr *ValidationError
	return errors.As(o.Err, &validationErr)
}
