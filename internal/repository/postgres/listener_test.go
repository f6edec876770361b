package postgres

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/spacegame-server/internal/model"
)

func TestDecodeScoreChange(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	tests := []struct {
		name    string
		payload string
		want    model.ScoreChange
		wantErr bool
	}{
		{
			name:    "insert",
			payload: `{"id":"` + id.String() + `","op":"INSERT"}`,
			want:    model.ScoreChange{ID: id, Op: model.ScoreOpInsert, Exists: true},
		},
		{
			name:    "update",
			payload: `{"id":"` + id.String() + `","op":"UPDATE"}`,
			want:    model.ScoreChange{ID: id, Op: model.ScoreOpUpdate, Exists: true},
		},
		{
			name:    "delete is a tombstone",
			payload: `{"id":"` + id.String() + `","op":"DELETE"}`,
			want:    model.ScoreChange{ID: id, Op: model.ScoreOpDelete, Exists: false},
		},
		{
			name:    "truncate is rejected",
			payload: `{"id":"` + id.String() + `","op":"TRUNCATE"}`,
			wantErr: true,
		},
		{
			name:    "bad id",
			payload: `{"id":"nope","op":"INSERT"}`,
			wantErr: true,
		},
		{
			name:    "not json",
			payload: `INSERT`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := decodeScoreChange(tt.payload)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewScoreFeed(t *testing.T) {
	feed := NewScoreFeed("postgres://localhost/db", 16, nil)

	assert.Equal(t, "postgres://localhost/db", feed.dsn)
	assert.Equal(t, 16, feed.buffer)
	assert.NotNil(t, feed.newBackOff())
}

func TestUUIDStrings(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	assert.Equal(t, []string{a.String(), b.String()}, uuidStrings([]uuid.UUID{a, b}))
	assert.Empty(t, uuidStrings(nil))
}

func TestNullableUUID(t *testing.T) {
	assert.Nil(t, nullableUUID(uuid.Nil))

	id := uuid.New()
	got := nullableUUID(id)
	require.NotNil(t, got)
	assert.Equal(t, id, *got)
}
