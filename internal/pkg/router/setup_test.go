package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouterImplementations(t *testing.T) {
	assert.Implements(t, (*Router)(nil), NewHttpRouter())
	assert.Implements(t, (*Router)(nil), NewApiRouter())
}
