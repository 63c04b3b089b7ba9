package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCreatorStartsInactive(t *testing.T) {
	cr, err := CreateCreator("Jamie", "jamie@example.com", "s3cret-pass", "JAMIE10")
	require.NoError(t, err)

	assert.Equal(t, STATUS_INACTIVE, cr.Status)
	assert.Equal(t, ROLE_CREATOR, cr.Role)
	assert.False(t, cr.IsActive())
	assert.True(t, CheckPasswordHash("s3cret-pass", cr.Password))
}

func TestGenerateActivationToken(t *testing.T) {
	cr := &Creator{}
	require.NoError(t, cr.GenerateActivationToken())

	assert.Len(t, cr.ActivationToken, 32)
	require.NotNil(t, cr.ActivationSentAt)

	first := cr.ActivationToken
	require.NoError(t, cr.GenerateActivationToken())
	assert.NotEqual(t, first, cr.ActivationToken)
}
