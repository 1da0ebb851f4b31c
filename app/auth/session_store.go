package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/trs-1342/rss-hattab/app/models"
)

var (
	ErrNoSession = errors.New("session not found")
)

const (
	// SessionTTL matches the original cookie lifetime of eight hours.
	SessionTTL = 8 * time.Hour

	// CookieName is the session cookie's name.
	CookieName = "sid"

	sessionKeyPrefix = "session:"
)

// Session is the server-side record a cookie token points at.
type Session struct {
	Token     string      `json:"token"`
	User      models.User `json:"user"`
	CreatedAt time.Time   `json:"createdAt"`
}

// SessionStore keeps sessions in a Badger DB so they survive restarts and
// expire on their own via TTL.
type SessionStore struct {
	db       *badger.DB
	dbPath   string
	isTestDB bool
}

// NewSessionStore opens (or initializes) the session database at path. An
// empty path creates an isolated temporary database for testing.
func NewSessionStore(path string) (*SessionStore, error) {
	isTest := false
	if path == "" {
		tempPath, err := os.MkdirTemp("", "rss_hattab_test_sessions_")
		if err != nil {
			return nil, fmt.Errorf("error creating temp dir: %v", err)
		}
		path = tempPath
		isTest = true
	}
	opts := badger.DefaultOptions(path).
		WithLogger(nil).
		WithSyncWrites(false).
		WithNumVersionsToKeep(1).
		WithNumGoroutines(1)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	if isTest {
		if err := db.DropAll(); err != nil {
			return nil, fmt.Errorf("failed to drop all keys: %v", err)
		}
	}
	return &SessionStore{
		db:       db,
		dbPath:   path,
		isTestDB: isTest,
	}, nil
}

// Close closes the database and removes it when it was a test instance.
func (s *SessionStore) Close() error {
	if err := s.db.Close(); err != nil {
		return err
	}
	if s.isTestDB {
		if err := os.RemoveAll(s.dbPath); err != nil {
			return fmt.Errorf("failed to cleanup test database: %v", err)
		}
	}
	return nil
}

// Create stores a new session for user and returns it. The record carries
// the session TTL, so stale sessions disappear without a sweeper.
func (s *SessionStore) Create(user models.User) (*Session, error) {
	session := &Session{
		Token:     uuid.NewString(),
		User:      user,
		CreatedAt: time.Now(),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		key := []byte(sessionKeyPrefix + session.Token)
		entry := badger.NewEntry(key, data).WithTTL(SessionTTL)
		return txn.SetEntry(entry)
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// Get resolves a cookie token to its session. Unknown and expired tokens
// both report ErrNoSession.
func (s *SessionStore) Get(token string) (*Session, error) {
	var session Session
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(sessionKeyPrefix + token))
		if err == badger.ErrKeyNotFound {
			return ErrNoSession
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &session)
		})
	})
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Delete removes a session, ending it immediately.
func (s *SessionStore) Delete(token string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(sessionKeyPrefix + token))
	})
}
