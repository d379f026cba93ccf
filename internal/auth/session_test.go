package auth

import (
	"testing"
	"time"

	"golang.org/x/oauth2"
)

func testToken(access string, expiry time.Time) *oauth2.Token {
	token := &oauth2.Token{
		AccessToken: access,
		TokenType:   "Bearer",
		Expiry:      expiry,
	}
	return token.WithExtra(map[string]interface{}{
		"scope": "user-read-private user-read-email",
	})
}

func TestSessionStoreCreateAndGet(t *testing.T) {
	store := NewSessionStore()

	session := store.Create("user-1", testToken("tok-1", time.Now().Add(time.Hour)))
	if session.ID == "" {
		t.Fatal("session ID should not be empty")
	}
	if session.AccessToken != "tok-1" {
		t.Fatalf("unexpected access token: %s", session.AccessToken)
	}
	if len(session.Scopes) != 2 {
		t.Fatalf("expected 2 scopes, got %v", session.Scopes)
	}

	got, ok := store.Get(session.ID)
	if !ok {
		t.Fatal("session should be retrievable")
	}
	if got.UserID != "user-1" {
		t.Fatalf("unexpected user ID: %s", got.UserID)
	}
}

func TestSessionStoreSupersedesPriorSession(t *testing.T) {
	store := NewSessionStore()

	first := store.Create("user-1", testToken("tok-1", time.Now().Add(time.Hour)))
	second := store.Create("user-1", testToken("tok-2", time.Now().Add(time.Hour)))

	if _, ok := store.Get(first.ID); ok {
		t.Fatal("first session should be invalidated by the second login")
	}
	got, ok := store.Get(second.ID)
	if !ok {
		t.Fatal("second session should be active")
	}
	if got.AccessToken != "tok-2" {
		t.Fatalf("unexpected access token: %s", got.AccessToken)
	}
}

func TestSessionStoreDistinctUsersCoexist(t *testing.T) {
	store := NewSessionStore()

	a := store.Create("user-a", testToken("tok-a", time.Now().Add(time.Hour)))
	b := store.Create("user-b", testToken("tok-b", time.Now().Add(time.Hour)))

	if _, ok := store.Get(a.ID); !ok {
		t.Fatal("user-a session should still be active")
	}
	if _, ok := store.Get(b.ID); !ok {
		t.Fatal("user-b session should still be active")
	}
}

func TestSessionStoreExpiry(t *testing.T) {
	store := NewSessionStore()

	session := store.Create("user-1", testToken("tok-1", time.Now().Add(-time.Minute)))
	if _, ok := store.Get(session.ID); ok {
		t.Fatal("expired session should not be returned")
	}
	// Expired read must also release the user binding so a fresh login works.
	fresh := store.Create("user-1", testToken("tok-2", time.Now().Add(time.Hour)))
	if _, ok := store.Get(fresh.ID); !ok {
		t.Fatal("fresh session should be active")
	}
}

func TestSessionStoreDelete(t *testing.T) {
	store := NewSessionStore()

	session := store.Create("user-1", testToken("tok-1", time.Now().Add(time.Hour)))
	store.Delete(session.ID)
	if _, ok := store.Get(session.ID); ok {
		t.Fatal("deleted session should not be returned")
	}
}

func TestSessionNoExpiryFallsBackToTTL(t *testing.T) {
	store := NewSessionStore()

	session := store.Create("user-1", testToken("tok-1", time.Time{}))
	if session.ExpiresAt.IsZero() {
		t.Fatal("session without token expiry should get a bounded TTL")
	}
	if _, ok := store.Get(session.ID); !ok {
		t.Fatal("session should be active inside the fallback TTL")
	}
}
