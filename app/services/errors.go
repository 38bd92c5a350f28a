package services

import (
	"fmt"
	"strings"
)

// ValidationError reports required fields that were missing. Nothing is
// written when it is returned.
type ValidationError struct {
	Fields []string
	Notice string
}

func (err *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(err.Fields, ", "))
}

// NotFoundError reports that no post matches the identifier. ID is kept as
// given, since unparsable identifiers end up here too.
type NotFoundError struct {
	ID string
}

func (err *NotFoundError) Error() string {
	return fmt.Sprintf("post with id %q not found", err.ID)
}

func noticeOf(err error) string {
	switch e := err.(type) {
	case *ValidationError:
		return e.Notice
	case *NotFoundError:
		return NoticePostNotFound
	default:
		return err.Error()
	}
}
