package address

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"namedup-service/internal/config"
)

func TestValidateHandlerNoUserID(t *testing.T) {
	h := ValidateHandler(config.Config{USPSBaseURL: "http://example.invalid"}, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/address/validate",
		strings.NewReader(`{"street":"6406 Ivy Lane","city":"Greenbelt","state":"MD","zip":"20770"}`))
	rec := httptest.NewRecorder()
	h(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestValidateHandlerBadJSON(t *testing.T) {
	h := ValidateHandler(config.Config{}, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/address/validate", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	h(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestValidateHandlerMissingStreet(t *testing.T) {
	h := ValidateHandler(config.Config{}, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/address/validate", strings.NewReader(`{"city":"Greenbelt"}`))
	rec := httptest.NewRecorder()
	h(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
