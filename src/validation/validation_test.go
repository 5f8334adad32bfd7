package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"exceptionlogger/src/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name     string  `json:"name" validate:"required"`
	Optional *string `json:"optional,omitempty"`
}

func TestDecodeJSONBody(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"svc"}`))
		var p payload

		require.NoError(t, DecodeJSONBody(req, &p))
		assert.Equal(t, "svc", p.Name)
		assert.Nil(t, p.Optional)
	})

	t.Run("missing required field", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"optional":"x"}`))
		var p payload

		err := DecodeJSONBody(req, &p)
		typed := apperror.As(err)
		require.NotNil(t, typed)
		assert.Equal(t, apperror.CodeValidation, typed.Code())
		assert.Equal(t, "is required", typed.Details()["name"])
	})

	t.Run("wrong type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":42}`))
		var p payload

		err := DecodeJSONBody(req, &p)
		typed := apperror.As(err)
		require.NotNil(t, typed)
		assert.Equal(t, apperror.CodeValidation, typed.Code())
		assert.Equal(t, "must be a string", typed.Details()["name"])
	})

	t.Run("malformed json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
		var p payload

		err := DecodeJSONBody(req, &p)
		require.Error(t, err)
		assert.Equal(t, apperror.CodeValidation, apperror.As(err).Code())
	})
}

func TestRequiredQueryInt64(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?app_id=42&bad=x", nil)

	id, err := RequiredQueryInt64(req, "app_id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = RequiredQueryInt64(req, "bad")
	require.Error(t, err)
	assert.Equal(t, "query parameter bad must be an integer", apperror.As(err).Detail())

	_, err = RequiredQueryInt64(req, "missing")
	require.Error(t, err)
	assert.Equal(t, "missing required query parameter missing", apperror.As(err).Detail())
}

func TestRequiredQueryAllowsEmptyValue(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?type=", nil)

	value, err := RequiredQuery(req, "type")
	require.NoError(t, err)
	assert.Equal(t, "", value)
}
