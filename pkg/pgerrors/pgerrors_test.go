package pgerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestCodes(t *testing.T) {
	unique := fmt.Errorf("wrapped: %w", &pq.Error{Code: "23505"})

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsCheckViolation(unique))
	assert.True(t, IsCheckViolation(&pq.Error{Code: "23514"}))
	assert.True(t, IsSerializationFailure(&pq.Error{Code: "40001"}))
	assert.False(t, IsUniqueViolation(errors.New("plain")))
	assert.False(t, IsUniqueViolation(nil))
}
