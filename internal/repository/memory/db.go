// Package memory is an in-process implementation of the model stores. It keeps
// the same atomicity guarantees as the postgres repositories by serialising
// every write behind one mutex, and publishes score writes like the postgres
// trigger does.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/spacegame-server/internal/model"
)

// DB holds all collections. Repositories are thin views over it.
type DB struct {
	mu            sync.Mutex
	scores        map[uuid.UUID]model.Score
	users         map[uuid.UUID]model.Profile
	usernames     map[string]uuid.UUID
	identities    map[uuid.UUID]model.Identity
	emails        map[string]uuid.UUID
	refreshTokens map[string]model.RefreshToken

	subMu       sync.Mutex
	subscribers map[*subscriber]struct{}

	now func() time.Time
}

func NewDB() *DB {
	return &DB{
		scores:        make(map[uuid.UUID]model.Score),
		users:         make(map[uuid.UUID]model.Profile),
		usernames:     make(map[string]uuid.UUID),
		identities:    make(map[uuid.UUID]model.Identity),
		emails:        make(map[string]uuid.UUID),
		refreshTokens: make(map[string]model.RefreshToken),
		subscribers:   make(map[*subscriber]struct{}),
		now:           time.Now,
	}
}

func (db *DB) Ping(context.Context) error {
	return nil
}

func (db *DB) Close() error {
	return nil
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
