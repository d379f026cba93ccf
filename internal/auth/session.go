package auth

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// defaultSessionTTL bounds sessions whose token carries no expiry.
const defaultSessionTTL = time.Hour

// Session represents an authenticated user session holding the Spotify token.
type Session struct {
	ID           string
	UserID       string
	AccessToken  string
	TokenType    string
	RefreshToken string
	ExpiresAt    time.Time
	Scopes       []string
	CreatedAt    time.Time
}

// SessionStore manages user sessions (in-memory).
//
// At most one session is active per Spotify user: creating a new session
// for a user supersedes any prior one, so a token captured before a second
// login is rejected afterwards.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]Session
	byUser   map[string]string // user ID -> active session ID
}

// NewSessionStore creates a new session store.
func NewSessionStore() *SessionStore {
	store := &SessionStore{
		sessions: make(map[string]Session),
		byUser:   make(map[string]string),
	}
	// Start background cleanup goroutine
	go store.cleanupExpiredSessions()
	return store
}

// Create creates a session bound to the given Spotify user, invalidating
// any session that user already holds.
func (s *SessionStore) Create(userID string, token *oauth2.Token) Session {
	expiresAt := token.Expiry
	if expiresAt.IsZero() {
		expiresAt = time.Now().Add(defaultSessionTTL)
	}

	session := Session{
		ID:           uuid.New().String(),
		UserID:       userID,
		AccessToken:  token.AccessToken,
		TokenType:    token.TokenType,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    expiresAt,
		Scopes:       grantedScopes(token),
		CreatedAt:    time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.byUser[userID]; ok {
		delete(s.sessions, prev)
	}
	s.sessions[session.ID] = session
	s.byUser[userID] = session.ID
	return session
}

// Get retrieves a session by ID. Expired sessions are dropped on read.
func (s *SessionStore) Get(sessionID string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, false
	}
	if time.Now().After(session.ExpiresAt) {
		s.remove(session)
		return nil, false
	}
	return &session, true
}

// Delete removes a session.
func (s *SessionStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session, ok := s.sessions[sessionID]; ok {
		s.remove(session)
	}
}

// remove drops a session and its user binding. Caller holds the lock.
func (s *SessionStore) remove(session Session) {
	delete(s.sessions, session.ID)
	if s.byUser[session.UserID] == session.ID {
		delete(s.byUser, session.UserID)
	}
}

// cleanupExpiredSessions runs periodically to remove expired sessions.
func (s *SessionStore) cleanupExpiredSessions() {
	ticker := time.NewTicker(15 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		s.mu.Lock()
		for _, session := range s.sessions {
			if now.After(session.ExpiresAt) {
				s.remove(session)
			}
		}
		s.mu.Unlock()
	}
}

// grantedScopes parses the space-separated scope field Spotify returns
// alongside the token.
func grantedScopes(token *oauth2.Token) []string {
	raw, ok := token.Extra("scope").(string)
	if !ok {
		return nil
	}
	return strings.Fields(raw)
}
