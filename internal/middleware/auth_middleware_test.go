package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/havenstay/backend/internal/models"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return signed
}

func demoClaims(userID uuid.UUID, expiresAt time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":   userID.String(),
		"email": "owner@mail.com",
		"name":  "Demo Owner",
		"role":  string(models.RoleOwner),
		"iss":   TokenIssuer,
		"iat":   time.Now().Unix(),
		"exp":   expiresAt.Unix(),
	}
}

// -----------------------------------------------------------------------------
// ValidateToken
// -----------------------------------------------------------------------------

func TestValidateTokenExtractsIdentity(t *testing.T) {
	userID := uuid.New()
	token := signToken(t, testSecret, demoClaims(userID, time.Now().Add(time.Hour)))

	claims, err := ValidateToken(token, testSecret)
	require.NoError(t, err)
	require.Equal(t, userID, claims.UserID)
	require.Equal(t, "owner@mail.com", claims.Email)
	require.Equal(t, "Demo Owner", claims.Name)
	require.Equal(t, models.RoleOwner, claims.Role)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token := signToken(t, []byte("other-secret"), demoClaims(uuid.New(), time.Now().Add(time.Hour)))

	_, err := ValidateToken(token, testSecret)
	require.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	token := signToken(t, testSecret, demoClaims(uuid.New(), time.Now().Add(-time.Hour)))

	_, err := ValidateToken(token, testSecret)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateTokenRejectsWrongIssuer(t *testing.T) {
	claims := demoClaims(uuid.New(), time.Now().Add(time.Hour))
	claims["iss"] = "SomeoneElse"
	token := signToken(t, testSecret, claims)

	_, err := ValidateToken(token, testSecret)
	require.ErrorContains(t, err, "issuer")
}

func TestValidateTokenRejectsMalformedSubject(t *testing.T) {
	claims := demoClaims(uuid.New(), time.Now().Add(time.Hour))
	claims["sub"] = "not-a-uuid"
	token := signToken(t, testSecret, claims)

	_, err := ValidateToken(token, testSecret)
	require.ErrorContains(t, err, "subject")
}

// -----------------------------------------------------------------------------
// AuthMiddleware
// -----------------------------------------------------------------------------

func protectedEcho(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(ContextKeyUserID).(uuid.UUID)
		require.True(t, ok)
		role, ok := r.Context().Value(ContextKeyUserRole).(models.RoleType)
		require.True(t, ok)
		w.Header().Set("X-User-ID", userID.String())
		w.Header().Set("X-User-Role", string(role))
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddlewareInjectsIdentityIntoContext(t *testing.T) {
	userID := uuid.New()
	token := signToken(t, testSecret, demoClaims(userID, time.Now().Add(time.Hour)))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	AuthMiddleware(testSecret)(protectedEcho(t)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, userID.String(), rec.Header().Get("X-User-ID"))
	require.Equal(t, string(models.RoleOwner), rec.Header().Get("X-User-Role"))
}

func TestMiddlewareRejectsMissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
	rec := httptest.NewRecorder()

	AuthMiddleware(testSecret)(protectedEcho(t)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "missing Authorization header")
}

func TestMiddlewareRejectsMalformedHeader(t *testing.T) {
	for _, header := range []string{"Bearer", "Basic abc", "Bearer "} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()

		AuthMiddleware(testSecret)(protectedEcho(t)).ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestMiddlewareReportsExpiredTokenCode(t *testing.T) {
	token := signToken(t, testSecret, demoClaims(uuid.New(), time.Now().Add(-time.Minute)))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	AuthMiddleware(testSecret)(protectedEcho(t)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "token_expired")
}

func TestMiddlewareRejectsTamperedToken(t *testing.T) {
	token := signToken(t, testSecret, demoClaims(uuid.New(), time.Now().Add(time.Hour)))
	tampered := token[:len(token)-2] + "xx"

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+tampered)
	rec := httptest.NewRecorder()

	AuthMiddleware(testSecret)(protectedEcho(t)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "Invalid token")
}
