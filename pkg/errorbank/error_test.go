package errorbank

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindStatusCodes(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, BadRequest("x").StatusCode())
	assert.Equal(t, http.StatusNotFound, NotFound("x").StatusCode())
	assert.Equal(t, http.StatusConflict, Conflict("x").StatusCode())
	assert.Equal(t, http.StatusUnprocessableEntity, Unprocessable("x").StatusCode())
	assert.Equal(t, http.StatusInternalServerError, Internal("x").StatusCode())
}

func TestWithCauseUnwraps(t *testing.T) {
	cause := errors.New("boom")
	err := Internal("wrapped", WithCause(cause))

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "boom")
}

func TestFromPassesThroughAppErrors(t *testing.T) {
	original := NotFound("Order not found")
	got := From(original)
	assert.Same(t, original, got)
}

func TestFromWrapsForeignErrors(t *testing.T) {
	got := From(errors.New("driver: bad connection"))
	require.NotNil(t, got)
	assert.Equal(t, KindInternal, got.Kind())
	assert.ErrorContains(t, got, "bad connection")
}

func TestDetails(t *testing.T) {
	err := BadRequest("invalid id", WithDetail("id", "abc"))
	assert.Equal(t, "abc", err.Details()["id"])
}
