package token

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewSessionIDIsUUID(t *testing.T) {
	sid := NewSessionID()
	if _, err := uuid.Parse(sid); err != nil {
		t.Fatalf("session id %q is not a uuid: %v", sid, err)
	}
	if NewSessionID() == sid {
		t.Fatal("expected distinct session ids")
	}
}

func TestNewAuthTokenIsOpaqueAndUnique(t *testing.T) {
	a, err := NewAuthToken()
	if err != nil {
		t.Fatalf("NewAuthToken: %v", err)
	}
	b, err := NewAuthToken()
	if err != nil {
		t.Fatalf("NewAuthToken: %v", err)
	}
	if a == "" || a == b {
		t.Fatalf("expected unique non-empty tokens, got %q and %q", a, b)
	}
	if len(a) < 40 {
		t.Fatalf("token looks too short to be 32 random bytes: %q", a)
	}
}
