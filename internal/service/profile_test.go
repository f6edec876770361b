package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/spacegame-server/internal/mocks"
	"github.com/dtroode/spacegame-server/internal/model"
	"github.com/dtroode/spacegame-server/internal/testutil"
)

func TestProfiles_CheckHandle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		raw    string
		exists *bool
		want   model.HandleCheck
	}{
		{
			name:   "free handle is normalized",
			raw:    "ace",
			exists: ptr(false),
			want:   model.HandleCheck{Handle: "ACE", Available: true},
		},
		{
			name:   "taken handle",
			raw:    "Ace",
			exists: ptr(true),
			want:   model.HandleCheck{Handle: "ACE", Available: false, Reason: "taken"},
		},
		{
			name: "too short",
			raw:  "ab",
			want: model.HandleCheck{Available: false, Reason: "min 3 chars"},
		},
		{
			name: "bad characters",
			raw:  "ace-1",
			want: model.HandleCheck{Available: false, Reason: "alphanumeric only"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			profiles := mocks.NewProfileStore(t)
			if tt.exists != nil {
				profiles.On("HandleExists", ctx, tt.want.Handle).Return(*tt.exists, nil).Once()
			}

			svc := NewProfiles(profiles, mocks.NewIdentityStore(t), testutil.MakeNoopLogger())

			got, err := svc.CheckHandle(ctx, tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProfiles_CheckHandle_StoreError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	profiles := mocks.NewProfileStore(t)
	profiles.On("HandleExists", ctx, "ACE").Return(false, assert.AnError).Once()

	svc := NewProfiles(profiles, mocks.NewIdentityStore(t), testutil.MakeNoopLogger())

	_, err := svc.CheckHandle(ctx, "ace")
	require.ErrorIs(t, err, assert.AnError)
}

func TestProfiles_Get(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	uid := uuid.New()

	t.Run("unauthenticated", func(t *testing.T) {
		t.Parallel()

		svc := NewProfiles(mocks.NewProfileStore(t), mocks.NewIdentityStore(t), testutil.MakeNoopLogger())
		_, err := svc.Get(ctx, uuid.Nil)
		require.ErrorIs(t, err, model.ErrUnauthenticated)
	})

	t.Run("not found passes through", func(t *testing.T) {
		t.Parallel()

		profiles := mocks.NewProfileStore(t)
		profiles.On("GetByID", ctx, uid).Return(model.Profile{}, model.ErrNotFound).Once()

		svc := NewProfiles(profiles, mocks.NewIdentityStore(t), testutil.MakeNoopLogger())
		_, err := svc.Get(ctx, uid)
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		want := model.Profile{ID: uid, Username: "ACE"}
		profiles := mocks.NewProfileStore(t)
		profiles.On("GetByID", ctx, uid).Return(want, nil).Once()

		svc := NewProfiles(profiles, mocks.NewIdentityStore(t), testutil.MakeNoopLogger())
		got, err := svc.Get(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestProfiles_SetHandle_ChangesExisting(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	uid := uuid.New()

	profiles := mocks.NewProfileStore(t)
	profiles.On("ChangeHandle", ctx, uid, "VIPER").Return(model.Profile{ID: uid, Username: "VIPER"}, nil).Once()

	svc := NewProfiles(profiles, mocks.NewIdentityStore(t), testutil.MakeNoopLogger())

	got, err := svc.SetHandle(ctx, uid, " viper ")
	require.NoError(t, err)
	assert.Equal(t, "VIPER", got.Username)
}

func TestProfiles_SetHandle_CreatesMissingProfile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	uid := uuid.New()
	now := time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC)

	profiles := mocks.NewProfileStore(t)
	identities := mocks.NewIdentityStore(t)
	profiles.On("ChangeHandle", ctx, uid, "ACE").Return(model.Profile{}, model.ErrNotFound).Once()
	identities.On("GetByID", ctx, uid).Return(model.Identity{ID: uid, Email: "a@example.com"}, nil).Once()
	profiles.On("Create", ctx, model.Profile{ID: uid, Username: "ACE", Email: "a@example.com", CreatedAt: now}).
		Return(model.Profile{ID: uid, Username: "ACE", Email: "a@example.com", CreatedAt: now}, nil).Once()

	svc := NewProfiles(profiles, identities, testutil.MakeNoopLogger())
	svc.now = func() time.Time { return now }

	got, err := svc.SetHandle(ctx, uid, "ace")
	require.NoError(t, err)
	assert.Equal(t, "ACE", got.Username)
}

func TestProfiles_SetHandle_Errors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	uid := uuid.New()

	t.Run("invalid handle", func(t *testing.T) {
		t.Parallel()

		svc := NewProfiles(mocks.NewProfileStore(t), mocks.NewIdentityStore(t), testutil.MakeNoopLogger())
		_, err := svc.SetHandle(ctx, uid, "x")
		assert.True(t, model.IsValidation(err))
	})

	t.Run("taken", func(t *testing.T) {
		t.Parallel()

		profiles := mocks.NewProfileStore(t)
		profiles.On("ChangeHandle", ctx, uid, "ACE").Return(model.Profile{}, model.ErrHandleTaken).Once()

		svc := NewProfiles(profiles, mocks.NewIdentityStore(t), testutil.MakeNoopLogger())
		_, err := svc.SetHandle(ctx, uid, "ace")
		require.ErrorIs(t, err, model.ErrHandleTaken)
	})

	t.Run("identity gone", func(t *testing.T) {
		t.Parallel()

		profiles := mocks.NewProfileStore(t)
		identities := mocks.NewIdentityStore(t)
		profiles.On("ChangeHandle", ctx, uid, "ACE").Return(model.Profile{}, model.ErrNotFound).Once()
		identities.On("GetByID", ctx, uid).Return(model.Identity{}, model.ErrNotFound).Once()

		svc := NewProfiles(profiles, identities, testutil.MakeNoopLogger())
		_, err := svc.SetHandle(ctx, uid, "ace")
		require.ErrorIs(t, err, model.ErrUnauthenticated)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()

		profiles := mocks.NewProfileStore(t)
		profiles.On("ChangeHandle", ctx, uid, "ACE").Return(model.Profile{}, assert.AnError).Once()

		svc := NewProfiles(profiles, mocks.NewIdentityStore(t), testutil.MakeNoopLogger())
		_, err := svc.SetHandle(ctx, uid, "ace")
		require.ErrorIs(t, err, assert.AnError)
	})

	t.Run("nil caller", func(t *testing.T) {
		t.Parallel()

		profiles := mocks.NewProfileStore(t)
		svc := NewProfiles(profiles, mocks.NewIdentityStore(t), testutil.MakeNoopLogger())
		_, err := svc.SetHandle(ctx, uuid.Nil, "ace")
		require.ErrorIs(t, err, model.ErrUnauthenticated)
		profiles.AssertNotCalled(t, "ChangeHandle", mock.Anything, mock.Anything, mock.Anything)
	})
}

func ptr[T any](v T) *T {
	return &v
}

func TestProfiles_SetHandle_ConcurrentSameHandle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newIdentityFixture()
	svc := NewProfiles(f.profiles, f.identities, testutil.MakeNoopLogger())

	const racers = 10
	uids := make([]uuid.UUID, racers)
	for n := range uids {
		session, err := f.svc.SignUp(ctx, model.SignUpParams{
			Email:    fmt.Sprintf("wing%d@example.com", n),
			Password: "hunter22",
			Handle:   fmt.Sprintf("wing%d", n),
		})
		require.NoError(t, err)
		uids[n] = session.UserID
	}

	var (
		wg    sync.WaitGroup
		errs  = make([]error, racers)
		start = make(chan struct{})
	)
	for n, uid := range uids {
		wg.Add(1)
		go func(n int, uid uuid.UUID) {
			defer wg.Done()
			<-start
			_, errs[n] = svc.SetHandle(ctx, uid, "viper")
		}(n, uid)
	}
	close(start)
	wg.Wait()

	holders := 0
	for n, uid := range uids {
		profile, err := f.profiles.GetByID(ctx, uid)
		require.NoError(t, err)

		if errs[n] == nil {
			holders++
			assert.Equal(t, "VIPER", profile.Username)
			continue
		}
		assert.ErrorIs(t, errs[n], model.ErrHandleTaken)
		assert.Equal(t, fmt.Sprintf("WING%d", n), profile.Username, "loser keeps its handle")

		kept, err := f.profiles.HandleExists(ctx, profile.Username)
		require.NoError(t, err)
		assert.True(t, kept)
	}
	assert.Equal(t, 1, holders)
}
