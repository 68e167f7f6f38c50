package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func parseErrorDetail(t *testing.T, body []byte) ErrorDetail {
	t.Helper()
	var detail ErrorDetail
	require.NoError(t, json.Unmarshal(body, &detail))
	return detail
}

func TestOK(t *testing.T) {
	c, rec := newContext()

	err := OK(c, map[string]string{"hello": "world"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"hello":"world"}`, rec.Body.String())
}

func TestHealth(t *testing.T) {
	c, rec := newContext()

	err := Health(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestInvalidRequestBody(t *testing.T) {
	c, rec := newContext()

	err := InvalidRequestBody(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	detail := parseErrorDetail(t, rec.Body.Bytes())
	assert.Equal(t, CodeInvalidRequest, detail.Code)
	assert.Equal(t, MsgInvalidRequestBody, detail.Message)
}

func TestValidationError(t *testing.T) {
	c, rec := newContext()

	err := ValidationError(c, map[string]string{"max_price": "must not be negative"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	detail := parseErrorDetail(t, rec.Body.Bytes())
	assert.Equal(t, CodeValidationError, detail.Code)
	assert.Equal(t, MsgValidationFailed, detail.Message)
	assert.Equal(t, "must not be negative", detail.Details["max_price"])
}

func TestValidationErrorWithMessage(t *testing.T) {
	c, rec := newContext()

	err := ValidationErrorWithMessage(c, "query must not be empty")

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	detail := parseErrorDetail(t, rec.Body.Bytes())
	assert.Equal(t, CodeValidationError, detail.Code)
	assert.Equal(t, "query must not be empty", detail.Message)
	assert.Empty(t, detail.Details)
}

func TestCatalogUnavailable(t *testing.T) {
	c, rec := newContext()

	err := CatalogUnavailable(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	detail := parseErrorDetail(t, rec.Body.Bytes())
	assert.Equal(t, CodeServiceUnavailable, detail.Code)
	assert.Equal(t, MsgCatalogUnavailable, detail.Message)
}

func TestInternalServerError(t *testing.T) {
	c, rec := newContext()

	err := InternalServerError(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	detail := parseErrorDetail(t, rec.Body.Bytes())
	assert.Equal(t, CodeInternalError, detail.Code)
}
