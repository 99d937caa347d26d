package auth

import (
	"errors"
	"testing"
	"time"
)

var testSecret = []byte("test-secret-key-for-unit-tests-only")

func TestTokenService_IssueVerifyRoundTrip(t *testing.T) {
	svc := NewTokenService(testSecret, 30*time.Minute)

	token, err := svc.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	subject, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if subject != "alice@example.com" {
		t.Errorf("expected subject alice@example.com, got %q", subject)
	}
}

func TestTokenService_EmptySubject(t *testing.T) {
	svc := NewTokenService(testSecret, 30*time.Minute)
	if _, err := svc.Issue(""); err == nil {
		t.Fatal("expected error for empty subject")
	}
}

func TestTokenService_ExpiryBoundary(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ttl := 30 * time.Minute

	tests := []struct {
		name    string
		elapsed time.Duration
		wantOK  bool
	}{
		{"fresh", 0, true},
		{"just inside ttl", ttl - time.Second, true},
		{"just past ttl", ttl + time.Second, false},
		{"long expired", 24 * time.Hour, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := t0
			svc := NewTokenService(testSecret, ttl, WithClock(func() time.Time { return now }))

			token, err := svc.Issue("bob@example.com")
			if err != nil {
				t.Fatalf("issue: %v", err)
			}

			now = t0.Add(tt.elapsed)
			_, err = svc.Verify(token)
			if tt.wantOK && err != nil {
				t.Errorf("expected valid token at +%v, got %v", tt.elapsed, err)
			}
			if !tt.wantOK {
				if !errors.Is(err, ErrInvalidToken) {
					t.Errorf("expected ErrInvalidToken at +%v, got %v", tt.elapsed, err)
				}
			}
		})
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService(testSecret, 30*time.Minute)
	verifier := NewTokenService([]byte("a-different-secret"), 30*time.Minute)

	token, err := issuer.Issue("carol@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestTokenService_GarbageToken(t *testing.T) {
	svc := NewTokenService(testSecret, 30*time.Minute)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := svc.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken for %q, got %v", token, err)
		}
	}
}

func TestTokenService_TamperedToken(t *testing.T) {
	svc := NewTokenService(testSecret, 30*time.Minute)

	token, err := svc.Issue("dave@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := svc.Verify(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}
