package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConflictErrorMessage(t *testing.T) {
	assert.Equal(t, "creator already exists", (&ConflictError{Resource: "creator"}).Error())
	assert.Equal(t, "another submission is already in progress",
		(&ConflictError{Resource: "video submission", Message: "another submission is already in progress"}).Error())
}

func TestNotFoundErrorMessage(t *testing.T) {
	assert.Equal(t, "video not found", (&NotFoundError{Resource: "video"}).Error())
	assert.Equal(t, "invoice not found", (&NotFoundError{Resource: "invoice"}).Error())
}
