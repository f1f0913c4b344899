package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dterekhov/go-mem-sync/internal/logger"
	"github.com/dterekhov/go-mem-sync/internal/service"
	"github.com/dterekhov/go-mem-sync/internal/utils"
	"github.com/dterekhov/go-mem-sync/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Helpers ----

func newHandlerWithAuthService(authSvc service.AuthService) *Handler {
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService: authSvc,
		},
	}
}

// injectNopLogger кладёт nop-логгер в контекст запроса.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

// deviceToken builds a parsed-token fixture carrying a device and account
// identity the way ParseToken would return it.
func deviceToken(deviceID, accountID string) models.Token {
	return models.Token{
		RegisteredClaims: jwt.RegisteredClaims{Subject: deviceID},
		DeviceID:         deviceID,
		AccountID:        accountID,
	}
}

// ---- getTokenFromAuthHeader unit tests ----

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{
			name:      "valid Bearer token",
			header:    "Bearer my-jwt-token",
			wantToken: "my-jwt-token",
		},
		{
			name:    "missing token part",
			header:  "Bearer",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:    "empty header",
			header:  "",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:      "non-Bearer scheme still parses second part",
			header:    "Basic dXNlcjpwYXNz",
			wantToken: "dXNlcjpwYXNz",
		},
		{
			name:    "only spaces",
			header:  " ",
			wantErr: ErrEmptyToken,
		},
		{
			name:      "extra parts, second part is used",
			header:    "Bearer token extra-part",
			wantToken: "token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

// ---- auth middleware table test ----

func TestAuth_Middleware_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		parseTokenFn   func(ctx context.Context, s string) (models.Token, error)
		expectedStatus int
		nextCalled     bool
		wantDeviceID   string
		wantAccountID  string
	}{
		{
			name:           "empty Authorization header gives 401",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
			nextCalled:     false,
		},
		{
			name:           "invalid header format (no space) gives 401",
			authHeader:     "BearerTokenWithoutSpace",
			expectedStatus: http.StatusUnauthorized,
			nextCalled:     false,
		},
		{
			name:       "valid token, next called with identity in context",
			authHeader: "Bearer valid-token",
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return deviceToken("dev-42", "acc-7"), nil
			},
			expectedStatus: http.StatusOK,
			nextCalled:     true,
			wantDeviceID:   "dev-42",
			wantAccountID:  "acc-7",
		},
		{
			name:       "expired token gives 401 with specific error",
			authHeader: "Bearer expired-token",
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return models.Token{}, service.ErrTokenIsExpired
			},
			expectedStatus: http.StatusUnauthorized,
			nextCalled:     false,
		},
		{
			name:       "token without subject claim gives 401",
			authHeader: "Bearer no-subject",
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return models.Token{}, nil
			},
			expectedStatus: http.StatusUnauthorized,
			nextCalled:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var authSvc service.AuthService
			if tt.parseTokenFn != nil {
				authSvc = &mockAuthService{parseTokenFn: tt.parseTokenFn}
			} else {
				// parseTokenFn не должна вызваться — header пустой или невалидный
				authSvc = &mockAuthService{parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
					t.Fatal("ParseToken should not be called")
					return models.Token{}, nil
				}}
			}

			h := newHandlerWithAuthService(authSvc)

			nextCalled := false
			var capturedDeviceID, capturedAccountID any
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				capturedDeviceID = r.Context().Value(utils.DeviceIDCtxKey)
				capturedAccountID = r.Context().Value(utils.AccountIDCtxKey)
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.authHeader, next)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)

			if tt.nextCalled {
				assert.Equal(t, tt.wantDeviceID, capturedDeviceID)
				assert.Equal(t, tt.wantAccountID, capturedAccountID)
			}
		})
	}
}

// ---- Тело ответа при ошибках ----

func TestAuth_ErrorResponseBodies(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpired
		},
	})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("empty header error body", func(t *testing.T) {
		rr := executeAuth(h, "", next)
		assert.Contains(t, rr.Body.String(), ErrEmptyAuthorizationHeader.Error())
	})

	t.Run("expired token error body", func(t *testing.T) {
		rr := executeAuth(h, "Bearer expired", next)
		assert.Contains(t, rr.Body.String(), service.ErrTokenIsExpired.Error())
	})
}

// ---- Идентичность корректно кладётся в контекст ----

func TestAuth_IdentityInContext(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return deviceToken("dev-99", "acc-99"), nil
		},
	})

	var gotDeviceID, gotAccountID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDeviceID, _ = utils.GetDeviceIDFromContext(r.Context())
		gotAccountID, _ = utils.GetAccountIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := executeAuth(h, "Bearer some-token", next)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "dev-99", gotDeviceID)
	assert.Equal(t, "acc-99", gotAccountID)
}

// ---- Оригинальный контекст не мутируется ----

func TestAuth_OriginalRequestNotMutated(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return deviceToken("dev-1", "acc-1"), nil
		},
	})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	req.Header.Set("Authorization", "Bearer token")
	originalCtx := req.Context()

	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	assert.Equal(t, originalCtx, req.Context(), "original request context must not be mutated")
	assert.Equal(t, http.StatusOK, rr.Code)
}
