package v1_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/FelipeFerreiradv/legal-lead-page-pro/config"
	"github.com/FelipeFerreiradv/legal-lead-page-pro/internal/delivery/http/response"
	v1 "github.com/FelipeFerreiradv/legal-lead-page-pro/internal/delivery/http/v1"
	"github.com/FelipeFerreiradv/legal-lead-page-pro/internal/domain"
	"github.com/FelipeFerreiradv/legal-lead-page-pro/internal/usecase"
	"github.com/FelipeFerreiradv/legal-lead-page-pro/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Send(ctx context.Context, lead *domain.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func newTestRouter(transport domain.Transport) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return v1.NewRouter(v1.RouterDeps{
		ContactUC: usecase.NewContactUsecase(transport, validation.New()),
		Config: &config.Config{
			AllowedOrigins: []string{"http://localhost:5173"},
		},
	})
}

func postContact(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "Mozilla/5.0")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const validBody = `{
	"name": "Jon Doe",
	"email": "jon@example.com",
	"phone": "11999999999",
	"service": "landing-page",
	"message": "Preciso de um site para meu escritório.",
	"consent": true,
	"honeypot": ""
}`

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Body {
	t.Helper()
	var b response.Body
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	return b
}

func TestSubmitContactEndpoint(t *testing.T) {
	t.Run("Valid payload dispatches once and acknowledges", func(t *testing.T) {
		transport := new(MockTransport)
		transport.On("Send", mock.Anything, mock.Anything).Return(nil)
		router := newTestRouter(transport)

		w := postContact(router, validBody)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
		transport.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("Honeypot body is byte-identical to success and never dispatches", func(t *testing.T) {
		transport := new(MockTransport)
		router := newTestRouter(transport)

		body := strings.Replace(validBody, `"honeypot": ""`, `"honeypot": "http://spam.example"`, 1)
		w := postContact(router, body)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `{"ok":true}`, w.Body.String())
		transport.AssertNotCalled(t, "Send")
	})

	t.Run("Short name is rejected with the field listed", func(t *testing.T) {
		transport := new(MockTransport)
		router := newTestRouter(transport)

		w := postContact(router, strings.Replace(validBody, "Jon Doe", "Jo", 1))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		b := decode(t, w)
		assert.False(t, b.OK)
		assert.Equal(t, "validation_failed", b.Error)
		assert.Equal(t, []string{"name"}, b.Fields)
		transport.AssertNotCalled(t, "Send")
	})

	t.Run("Bad email is rejected with the field listed", func(t *testing.T) {
		transport := new(MockTransport)
		router := newTestRouter(transport)

		w := postContact(router, strings.Replace(validBody, "jon@example.com", "bad", 1))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, []string{"email"}, decode(t, w).Fields)
	})

	t.Run("Refused consent always lists consent", func(t *testing.T) {
		transport := new(MockTransport)
		router := newTestRouter(transport)

		w := postContact(router, strings.Replace(validBody, `"consent": true`, `"consent": false`, 1))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode(t, w).Fields, "consent")
	})

	t.Run("Consent accepts the string form", func(t *testing.T) {
		transport := new(MockTransport)
		transport.On("Send", mock.Anything, mock.Anything).Return(nil)
		router := newTestRouter(transport)

		w := postContact(router, strings.Replace(validBody, `"consent": true`, `"consent": "true"`, 1))
		assert.Equal(t, http.StatusOK, w.Code)
		transport.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("Unparseable body validates as an empty payload", func(t *testing.T) {
		transport := new(MockTransport)
		router := newTestRouter(transport)

		w := postContact(router, `{"name": `)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		b := decode(t, w)
		assert.Equal(t, "validation_failed", b.Error)
		assert.Equal(t, []string{"name", "email", "phone", "message", "consent"}, b.Fields)
	})

	t.Run("Transport failure returns mail_error with detail", func(t *testing.T) {
		transport := new(MockTransport)
		transport.On("Send", mock.Anything, mock.Anything).Return(errors.New("smtp: connection refused"))
		router := newTestRouter(transport)

		w := postContact(router, validBody)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		b := decode(t, w)
		assert.False(t, b.OK)
		assert.Equal(t, "mail_error", b.Error)
		assert.Equal(t, "smtp: connection refused", b.Detail)
		transport.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("Caller metadata reaches the composed lead", func(t *testing.T) {
		transport := new(MockTransport)
		var got *domain.Lead
		transport.On("Send", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
			got = args.Get(1).(*domain.Lead)
		})
		router := newTestRouter(transport)

		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(validBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", "curl/8.0")
		req.Header.Set("X-Forwarded-For", "203.0.113.7")
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, got)
		assert.Equal(t, "curl/8.0", got.UserAgent)
		assert.NotEmpty(t, got.RemoteIP)
	})
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(new(MockTransport))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"ok":true}`, w.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(new(MockTransport))

	t.Run("Allowed origin passes preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Unknown origin gets no CORS headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
		req.Header.Set("Origin", "https://evil.example")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}
