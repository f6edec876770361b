package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/dtroode/spacegame-server/internal/model"
)

var _ model.ProfileStore = (*ProfileRepository)(nil)

type ProfileRepository struct {
	db *DB
}

func NewProfileRepository(db *DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetByID(_ context.Context, id uuid.UUID) (model.Profile, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	p, ok := r.db.users[id]
	if !ok {
		return model.Profile{}, model.ErrNotFound
	}
	return p, nil
}

func (r *ProfileRepository) HandleExists(_ context.Context, handle string) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	_, ok := r.db.usernames[handle]
	return ok, nil
}

func (r *ProfileRepository) Create(_ context.Context, profile model.Profile) (model.Profile, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.usernames[profile.Username]; ok {
		return model.Profile{}, model.ErrHandleTaken
	}
	if _, ok := r.db.users[profile.ID]; ok {
		return model.Profile{}, model.ErrProfileExists
	}

	r.db.usernames[profile.Username] = profile.ID
	r.db.users[profile.ID] = profile
	return profile, nil
}

func (r *ProfileRepository) ChangeHandle(_ context.Context, id uuid.UUID, handle string) (model.Profile, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	current, ok := r.db.users[id]
	if !ok {
		return model.Profile{}, model.ErrNotFound
	}
	if current.Username == handle {
		return current, nil
	}
	if _, taken := r.db.usernames[handle]; taken {
		return model.Profile{}, model.ErrHandleTaken
	}

	r.db.usernames[handle] = id
	if owner, ok := r.db.usernames[current.Username]; ok && owner == id {
		delete(r.db.usernames, current.Username)
	}

	current.Username = handle
	r.db.users[id] = current
	return current, nil
}
