package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type stubResolver struct {
	principals map[string]*Principal
}

func (r *stubResolver) Resolve(ctx context.Context, email string) (*Principal, error) {
	p, ok := r.principals[email]
	if !ok {
		return nil, ErrPrincipalNotFound
	}
	return p, nil
}

func runMiddleware(t *testing.T, authHeader string, tokens *TokenService, resolver PrincipalResolver) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *Principal
	handler := func(c echo.Context) error {
		seen = PrincipalFromContext(c.Request().Context())
		return c.String(http.StatusOK, "ok")
	}
	err := Middleware(tokens, resolver)(handler)(c)
	if err == nil && seen == nil {
		t.Error("handler ran without a principal in context")
	}
	return rec, err
}

func TestMiddleware_MissingHeader(t *testing.T) {
	tokens := NewTokenService(testSecret, time.Minute)
	rec, err := runMiddleware(t, "", tokens, &stubResolver{})

	assertHTTPError(t, err, http.StatusUnauthorized, "Could not validate credentials")
	if got := rec.Header().Get(echo.HeaderWWWAuthenticate); got != "Bearer" {
		t.Errorf("expected WWW-Authenticate: Bearer, got %q", got)
	}
}

func TestMiddleware_BadHeaderFormat(t *testing.T) {
	tokens := NewTokenService(testSecret, time.Minute)

	for _, header := range []string{"Token abc", "Bearer", "Basic dXNlcjpwYXNz"} {
		_, err := runMiddleware(t, header, tokens, &stubResolver{})
		assertHTTPError(t, err, http.StatusUnauthorized, "Could not validate credentials")
	}
}

func TestMiddleware_ValidToken(t *testing.T) {
	tokens := NewTokenService(testSecret, time.Minute)
	want := &Principal{
		ID:          uuid.New(),
		Email:       "doc@example.com",
		RoleName:    "Doctor",
		HasRole:     true,
		Permissions: []string{"read_patients"},
	}
	resolver := &stubResolver{principals: map[string]*Principal{"doc@example.com": want}}

	token, err := tokens.Issue("doc@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := runMiddleware(t, "Bearer "+token, tokens, resolver); err != nil {
		t.Fatalf("expected request to pass, got %v", err)
	}
}

func TestMiddleware_DeletedPrincipal(t *testing.T) {
	tokens := NewTokenService(testSecret, time.Minute)

	token, err := tokens.Issue("gone@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Token is valid but the account no longer exists. Must look identical
	// to a forged token.
	_, mwErr := runMiddleware(t, "Bearer "+token, tokens, &stubResolver{})
	assertHTTPError(t, mwErr, http.StatusUnauthorized, "Could not validate credentials")
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	issuer := NewTokenService(testSecret, time.Minute, WithClock(func() time.Time { return now }))
	verifier := NewTokenService(testSecret, time.Minute, WithClock(func() time.Time { return now.Add(time.Hour) }))

	token, err := issuer.Issue("doc@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, mwErr := runMiddleware(t, "Bearer "+token, verifier, &stubResolver{})
	assertHTTPError(t, mwErr, http.StatusUnauthorized, "Could not validate credentials")
}
