package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/spacegame-server/internal/model"
)

func TestScoreRepository_Ordering(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewScoreRepository(NewDB())

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	late, err := repo.Add(ctx, model.Score{PlayerName: "late", Value: 100, Timestamp: base.Add(time.Minute)})
	require.NoError(t, err)
	early, err := repo.Add(ctx, model.Score{PlayerName: "early", Value: 100, Timestamp: base})
	require.NoError(t, err)
	best, err := repo.Add(ctx, model.Score{PlayerName: "best", Value: 900, Timestamp: base.Add(time.Hour)})
	require.NoError(t, err)

	ordered, err := repo.ListOrdered(ctx)
	require.NoError(t, err)
	require.Len(t, ordered, 3)
	assert.Equal(t, best.ID, ordered[0].ID)
	assert.Equal(t, early.ID, ordered[1].ID)
	assert.Equal(t, late.ID, ordered[2].ID)

	top, err := repo.Top(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, top, 2)

	top, err = repo.Top(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, top, 3)
}

func TestScoreRepository_DeleteBatchIgnoresAbsent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewScoreRepository(NewDB())

	s, err := repo.Add(ctx, model.Score{PlayerName: "a", Value: 1})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteBatch(ctx, []uuid.UUID{s.ID, uuid.New()}))
	require.NoError(t, repo.DeleteBatch(ctx, []uuid.UUID{s.ID}))

	left, err := repo.ListOrdered(ctx)
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestProfileRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewProfileRepository(NewDB())
	uid := uuid.New()

	_, err := repo.Create(ctx, model.Profile{ID: uid, Username: "ACE", Email: "a@example.com"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, model.Profile{ID: uuid.New(), Username: "ACE"})
	assert.ErrorIs(t, err, model.ErrHandleTaken)

	_, err = repo.Create(ctx, model.Profile{ID: uid, Username: "SECOND"})
	assert.ErrorIs(t, err, model.ErrProfileExists)
	exists, err := repo.HandleExists(ctx, "SECOND")
	require.NoError(t, err)
	assert.False(t, exists)

	same, err := repo.ChangeHandle(ctx, uid, "ACE")
	require.NoError(t, err)
	assert.Equal(t, "ACE", same.Username)

	changed, err := repo.ChangeHandle(ctx, uid, "VIPER")
	require.NoError(t, err)
	assert.Equal(t, "VIPER", changed.Username)

	exists, err = repo.HandleExists(ctx, "ACE")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.ChangeHandle(ctx, uuid.New(), "GHOST")
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestAccountRepository_Erase(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := NewDB()
	profiles := NewProfileRepository(db)
	scores := NewScoreRepository(db)
	accounts := NewAccountRepository(db)

	uid := uuid.New()
	_, err := profiles.Create(ctx, model.Profile{ID: uid, Username: "ACE"})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := scores.Add(ctx, model.Score{UserID: uid, PlayerName: "ACE", Value: float64(i)})
		require.NoError(t, err)
	}
	other, err := scores.Add(ctx, model.Score{PlayerName: "anon", Value: 5})
	require.NoError(t, err)

	res, err := accounts.Erase(ctx, model.EraseParams{UserID: uid})
	require.NoError(t, err)
	assert.Equal(t, model.EraseResult{ProfileDeleted: true, ReservationDeleted: true, ScoresDeleted: 3}, res)

	left, err := scores.ListOrdered(ctx)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, other.ID, left[0].ID)

	res, err = accounts.Erase(ctx, model.EraseParams{UserID: uid})
	require.NoError(t, err)
	assert.Equal(t, model.EraseResult{}, res)
}

func TestAccountRepository_EraseKeepsForeignReservation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := NewDB()
	profiles := NewProfileRepository(db)
	accounts := NewAccountRepository(db)

	owner := uuid.New()
	_, err := profiles.Create(ctx, model.Profile{ID: owner, Username: "ACE"})
	require.NoError(t, err)

	res, err := accounts.Erase(ctx, model.EraseParams{UserID: uuid.New()})
	require.NoError(t, err)
	assert.False(t, res.ReservationDeleted)

	exists, err := profiles.HandleExists(ctx, "ACE")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestAccountRepository_EraseReleasesCurrentHandle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := NewDB()
	profiles := NewProfileRepository(db)
	accounts := NewAccountRepository(db)

	uid := uuid.New()
	_, err := profiles.Create(ctx, model.Profile{ID: uid, Username: "ACE"})
	require.NoError(t, err)
	_, err = profiles.ChangeHandle(ctx, uid, "MAVERICK")
	require.NoError(t, err)

	res, err := accounts.Erase(ctx, model.EraseParams{UserID: uid})
	require.NoError(t, err)
	assert.True(t, res.ReservationDeleted)

	db.mu.Lock()
	defer db.mu.Unlock()
	for h, owner := range db.usernames {
		assert.NotEqual(t, uid, owner, h)
	}
}

func TestIdentityRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := NewDB()
	identities := NewIdentityRepository(db)
	tokens := NewRefreshTokenRepository(db)

	id := model.Identity{ID: uuid.New(), Email: "Pilot@Example.com"}
	_, err := identities.Create(ctx, id)
	require.NoError(t, err)

	_, err = identities.Create(ctx, model.Identity{ID: uuid.New(), Email: "pilot@example.com"})
	assert.ErrorIs(t, err, model.ErrEmailTaken)

	got, err := identities.GetByEmail(ctx, " PILOT@example.com ")
	require.NoError(t, err)
	assert.Equal(t, id.ID, got.ID)

	require.NoError(t, tokens.Create(ctx, model.RefreshToken{JTI: "a", UserID: id.ID}))
	require.NoError(t, tokens.Create(ctx, model.RefreshToken{JTI: "b", UserID: id.ID}))
	require.NoError(t, tokens.RevokeAllByUser(ctx, id.ID))

	rt, err := tokens.GetByJTI(ctx, "a")
	require.NoError(t, err)
	assert.NotNil(t, rt.RevokedAt)

	require.NoError(t, identities.Delete(ctx, id.ID))
	require.NoError(t, identities.Delete(ctx, id.ID))

	_, err = identities.GetByID(ctx, id.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
	_, err = tokens.GetByJTI(ctx, "b")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestRefreshTokenRepository_RequiresIdentity(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tokens := NewRefreshTokenRepository(NewDB())

	err := tokens.Create(ctx, model.RefreshToken{JTI: "orphan", UserID: uuid.New()})
	require.ErrorIs(t, err, model.ErrNotFound)

	_, err = tokens.GetByJTI(ctx, "orphan")
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestDB_ChangesPublishesWrites(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db := NewDB()
	scores := NewScoreRepository(db)

	changes, err := db.Changes(ctx)
	require.NoError(t, err)

	s, err := scores.Add(ctx, model.Score{PlayerName: "a", Value: 1})
	require.NoError(t, err)
	s.Value = 2
	_, err = scores.Add(ctx, s)
	require.NoError(t, err)
	require.NoError(t, scores.DeleteBatch(ctx, []uuid.UUID{s.ID}))

	assert.Equal(t, model.ScoreChange{ID: s.ID, Op: model.ScoreOpInsert, Exists: true}, <-changes)
	assert.Equal(t, model.ScoreChange{ID: s.ID, Op: model.ScoreOpUpdate, Exists: true}, <-changes)
	assert.Equal(t, model.ScoreChange{ID: s.ID, Op: model.ScoreOpDelete, Exists: false}, <-changes)

	cancel()
	for range changes {
	}

	db.subMu.Lock()
	defer db.subMu.Unlock()
	assert.Empty(t, db.subscribers)
}

func TestDB_WritersDoNotBlockOnIdleSubscriber(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db := NewDB()
	scores := NewScoreRepository(db)

	_, err := db.Changes(ctx)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			_, _ = scores.Add(ctx, model.Score{PlayerName: "spam", Value: float64(i)})
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("writes blocked on an idle subscriber")
	}
}
