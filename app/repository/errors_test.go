package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateEntry(t *testing.T) {
	assert.True(t, IsDuplicateEntry(errors.New("Error 1062 (23000): Duplicate entry 'jamie@example.com' for key 'idx_creators_email'")))
	assert.True(t, IsDuplicateEntry(errors.New("duplicate key value violates unique constraint")))
	assert.False(t, IsDuplicateEntry(errors.New("connection refused")))
	assert.False(t, IsDuplicateEntry(nil))
}
