package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/dtroode/spacegame-server/internal/model"
)

var (
	_ model.IdentityStore     = (*IdentityRepository)(nil)
	_ model.RefreshTokenStore = (*RefreshTokenRepository)(nil)
)

type IdentityRepository struct {
	db *DB
}

func NewIdentityRepository(db *DB) *IdentityRepository {
	return &IdentityRepository{db: db}
}

func (r *IdentityRepository) GetByEmail(_ context.Context, email string) (model.Identity, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	id, ok := r.db.emails[emailKey(email)]
	if !ok {
		return model.Identity{}, model.ErrNotFound
	}
	return r.db.identities[id], nil
}

func (r *IdentityRepository) GetByID(_ context.Context, id uuid.UUID) (model.Identity, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	identity, ok := r.db.identities[id]
	if !ok {
		return model.Identity{}, model.ErrNotFound
	}
	return identity, nil
}

func (r *IdentityRepository) Create(_ context.Context, identity model.Identity) (model.Identity, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	key := emailKey(identity.Email)
	if _, ok := r.db.emails[key]; ok {
		return model.Identity{}, model.ErrEmailTaken
	}

	r.db.emails[key] = identity.ID
	r.db.identities[identity.ID] = identity
	return identity, nil
}

// Delete removes the identity together with its refresh tokens.
func (r *IdentityRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	identity, ok := r.db.identities[id]
	if !ok {
		return nil
	}
	delete(r.db.emails, emailKey(identity.Email))
	delete(r.db.identities, id)

	for jti, rt := range r.db.refreshTokens {
		if rt.UserID == id {
			delete(r.db.refreshTokens, jti)
		}
	}
	return nil
}

type RefreshTokenRepository struct {
	db *DB
}

func NewRefreshTokenRepository(db *DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

func (r *RefreshTokenRepository) Create(_ context.Context, token model.RefreshToken) error {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.identities[token.UserID]; !ok {
		return model.ErrNotFound
	}
	r.db.refreshTokens[token.JTI] = token
	return nil
}

func (r *RefreshTokenRepository) GetByJTI(_ context.Context, jti string) (model.RefreshToken, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	rt, ok := r.db.refreshTokens[jti]
	if !ok {
		return model.RefreshToken{}, model.ErrNotFound
	}
	return rt, nil
}

func (r *RefreshTokenRepository) RevokeByJTI(_ context.Context, jti string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	rt, ok := r.db.refreshTokens[jti]
	if !ok || rt.RevokedAt != nil {
		return nil
	}
	now := r.db.now()
	rt.RevokedAt = &now
	r.db.refreshTokens[jti] = rt
	return nil
}

func (r *RefreshTokenRepository) RevokeAllByUser(_ context.Context, userID uuid.UUID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	now := r.db.now()
	for jti, rt := range r.db.refreshTokens {
		if rt.UserID != userID || rt.RevokedAt != nil {
			continue
		}
		rt.RevokedAt = &now
		r.db.refreshTokens[jti] = rt
	}
	return nil
}
