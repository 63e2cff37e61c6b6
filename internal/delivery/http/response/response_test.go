package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "orderguard/internal/delivery/context"
	domainerrors "orderguard/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-9")

	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestError_DetailsPolicy(t *testing.T) {
	denial := NewDenialDetails(domainerrors.NewLimitExceeded("cart_items", "50", "51", "customer"))

	tests := []struct {
		name        string
		status      int
		details     any
		wantDetails bool
	}{
		{name: "client error keeps details", status: http.StatusBadRequest, details: "bad field", wantDetails: true},
		{name: "server error drops details", status: http.StatusServiceUnavailable, details: "dsn=postgres://", wantDetails: false},
		{name: "server error drops denial details", status: http.StatusInternalServerError, details: denial, wantDetails: false},
		{name: "forbidden keeps denial details", status: http.StatusForbidden, details: denial, wantDetails: true},
		{name: "forbidden drops plain details", status: http.StatusForbidden, details: "role customer", wantDetails: false},
		{name: "unauthorized drops plain details", status: http.StatusUnauthorized, details: "unknown email", wantDetails: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, Error(c, tt.status, "CODE", "message", tt.details))

			assert.Equal(t, tt.status, rec.Code)
			body := decode(t, rec)
			errInfo := body["error"].(map[string]any)
			_, hasDetails := errInfo["details"]
			assert.Equal(t, tt.wantDetails, hasDetails)
			assert.Equal(t, "req-9", body["meta"].(map[string]any)["request_id"])
		})
	}
}

func TestNewDenialDetails(t *testing.T) {
	details := NewDenialDetails(domainerrors.NewPermissionDenied("special", []string{"refund_processing"}, "seller"))

	assert.Equal(t, domainerrors.GatePermission, details.Gate)
	assert.Equal(t, "special:refund_processing", details.Required)
	assert.Equal(t, "role seller", details.Current)
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]int{"n": 1}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"n":1},"meta":{"request_id":"req-9"}}`, rec.Body.String())
}
