package blobstore

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	key := ObjectKey("9f4c2e1a-0000-4d6e-8b2a-1234567890ab", "my review.mp4")

	parts := strings.SplitN(key, "/", 2)
	require.Len(t, parts, 2)
	assert.Equal(t, "9f4c2e1a-0000-4d6e-8b2a-1234567890ab", parts[0])
	assert.True(t, strings.HasSuffix(parts[1], "-my_review.mp4"))
}

func TestObjectKeyStripsDirectories(t *testing.T) {
	key := ObjectKey("uuid", "../../etc/passwd")
	assert.NotContains(t, key, "..")
	assert.True(t, strings.HasSuffix(key, "-passwd"))
}
