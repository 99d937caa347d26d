package staff

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hms/hms/internal/platform/auth"
)

func loginRequest(t *testing.T, h *Handler, username, password string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return rec, h.Login(c)
}

func TestLogin(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	tokens := auth.NewTokenService([]byte("test-secret"), 30*time.Minute)
	h := NewHandler(svc, tokens)

	if _, err := svc.Create(context.Background(), &StaffCreate{
		Email:    "doc@example.com",
		Password: "pw123",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	rec, err := loginRequest(t, h, "doc@example.com", "pw123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.TokenType != "bearer" {
		t.Errorf("expected token_type bearer, got %q", resp.TokenType)
	}

	subject, err := tokens.Verify(resp.AccessToken)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if subject != "doc@example.com" {
		t.Errorf("expected token subject doc@example.com, got %q", subject)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	tokens := auth.NewTokenService([]byte("test-secret"), 30*time.Minute)
	h := NewHandler(svc, tokens)

	if _, err := svc.Create(context.Background(), &StaffCreate{
		Email:    "doc@example.com",
		Password: "pw123",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "doc@example.com", "nope"},
		{"unknown user", "ghost@example.com", "pw123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := loginRequest(t, h, tt.username, tt.password)
			httpErr, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("expected echo.HTTPError, got %T (%v)", err, err)
			}
			if httpErr.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", httpErr.Code)
			}
			if got := rec.Header().Get(echo.HeaderWWWAuthenticate); got != "Bearer" {
				t.Errorf("expected WWW-Authenticate: Bearer, got %q", got)
			}
		})
	}
}
