package errx

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryNew(t *testing.T) {
	reg := NewRegistry("TEST")
	code := reg.Register("NOT_FOUND", TypeNotFound, http.StatusNotFound, "thing not found")

	err := reg.New(code)
	require.NotNil(t, err)
	assert.Equal(t, Code("TEST.NOT_FOUND"), err.Code)
	assert.Equal(t, TypeNotFound, err.Type)
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus)
	assert.Equal(t, "thing not found", err.Message)
}

func TestWithDetailChaining(t *testing.T) {
	reg := NewRegistry("TEST")
	code := reg.Register("CONFLICT", TypeConflict, http.StatusConflict, "dup")

	err := reg.New(code).WithDetail("id", "abc").WithDetail("n", 2)
	assert.Equal(t, "abc", err.Details["id"])
	assert.Equal(t, 2, err.Details["n"])

	body := err.ToHTTPResponse()
	assert.Equal(t, Code("TEST.CONFLICT"), body["code"])
	assert.NotNil(t, body["details"])
}

func TestWrapPassesThroughRegisteredErrors(t *testing.T) {
	reg := NewRegistry("TEST")
	code := reg.Register("BUSY", TypeBusiness, http.StatusUnprocessableEntity, "busy")

	orig := reg.New(code)
	wrapped := Wrap(orig, "should be ignored", TypeInternal)
	assert.Same(t, orig, wrapped)
}

func TestWrapPlainError(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(cause, "db write failed", TypeInternal)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
	assert.ErrorIs(t, err, cause)
	assert.Nil(t, Wrap(nil, "nothing", TypeInternal))
}
