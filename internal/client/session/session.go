// Package session owns the single authentication credential of the client
// and its persistence across restarts.
//
// Presence of a credential is the only authority for "authenticated": the
// token is neither validated nor checked for expiry when read.
package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/flowgate/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/flowgate/internal/dbx"
	"github.com/dmitrijs2005/flowgate/internal/logging"
)

const (
	// TokenKey is the well-known metadata key holding the credential.
	TokenKey = "token"
	// SignedInAtKey records when the credential was stored (unix seconds).
	SignedInAtKey = "signed_in_at"
)

var ErrEmptyToken = errors.New("empty session token")

// Listener is notified after every successful Set or Clear.
type Listener func(authenticated bool)

// Store keeps the credential in memory and mirrors it into the metadata table.
type Store struct {
	db  dbx.Beginner
	log logging.Logger
	now func() time.Time

	mu        sync.RWMutex
	token     string
	listeners map[int]Listener
	nextID    int
}

// NewStore builds a Store over db, which must have the metadata table migrated.
func NewStore(db dbx.Beginner, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	return &Store{
		db:        db,
		log:       log.With("component", "session"),
		now:       time.Now,
		listeners: make(map[int]Listener),
	}
}

// Initialize loads a persisted credential, if any, and reports whether one exists.
// Listeners are not notified; callers read the result directly.
func (s *Store) Initialize(ctx context.Context) (bool, error) {
	var token []byte
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		token, err = metadata.NewSQLiteRepository(tx).Get(ctx, TokenKey)
		return err
	})
	if err != nil {
		return false, fmt.Errorf("load session: %w", err)
	}

	s.mu.Lock()
	s.token = string(token)
	s.mu.Unlock()

	present := len(token) > 0
	s.log.Debug(ctx, "session initialized", "authenticated", present)
	return present, nil
}

// Set persists token, replacing any previous credential, and notifies listeners.
func (s *Store) Set(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, TokenKey, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, SignedInAtKey, []byte(strconv.FormatInt(s.now().Unix(), 10)))
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	s.log.Info(ctx, "session stored")
	s.notify(true)
	return nil
}

// Clear removes the credential and notifies listeners.
func (s *Store) Clear(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, TokenKey); err != nil {
			return err
		}
		return repo.Delete(ctx, SignedInAtKey)
	})
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()

	s.log.Info(ctx, "session cleared")
	s.notify(false)
	return nil
}

// Token returns the current credential, "" when signed out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) Authenticated() bool {
	return s.Token() != ""
}

// Subscribe registers l and returns a function that removes it.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store) notify(authenticated bool) {
	s.mu.RLock()
	ls := make([]Listener, 0, len(s.listeners))
	for id := 0; id < s.nextID; id++ {
		if l, ok := s.listeners[id]; ok {
			ls = append(ls, l)
		}
	}
	s.mu.RUnlock()

	for _, l := range ls {
		l(authenticated)
	}
}

// Identity returns the email (or subject) claim of the credential when it is
// a JWT, for display only. The signature is not verified and expiry is
// ignored; opaque tokens yield "".
func (s *Store) Identity() string {
	token := s.Token()
	if token == "" {
		return ""
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	if email, ok := claims["email"].(string); ok && email != "" {
		return email
	}
	sub, _ := claims.GetSubject()
	return sub
}
