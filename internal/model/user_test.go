package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	user := &User{Username: "alice"}
	assert.Equal(t, "alice", user.DisplayName())

	user.FirstName = "Alice"
	assert.Equal(t, "alice", user.DisplayName())

	user.LastName = "Liddell"
	assert.Equal(t, "Alice Liddell", user.DisplayName())
}
