package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	assert.NoError(t, err)
	assert.Equal(t, ID(42), id)
	assert.Equal(t, "42", id.String())
}

func TestParseIDInvalid(t *testing.T) {
	for _, input := range []string{"", "abc", "-1", "1.5"} {
		_, err := ParseID(input)
		assert.Error(t, err, "input %q", input)
	}
}
