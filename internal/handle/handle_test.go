package handle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/spacegame-server/internal/model"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr string
	}{
		{name: "lower case folded", in: "commander", want: "COMMANDER"},
		{name: "mixed case with underscore", in: "Ace_42", want: "ACE_42"},
		{name: "surrounding space trimmed", in: "  ace  ", want: "ACE"},
		{name: "exactly min length", in: "abc", want: "ABC"},
		{name: "exactly max length", in: "abcdefghijklmno", want: "ABCDEFGHIJKLMNO"},
		{name: "empty", in: "   ", wantErr: "required"},
		{name: "too short", in: "ab", wantErr: "min 3 chars"},
		{name: "too long", in: "abcdefghijklmnop", wantErr: "max 15 chars"},
		{name: "dash rejected", in: "ace-1", wantErr: "alphanumeric only"},
		{name: "inner space rejected", in: "ace one", wantErr: "alphanumeric only"},
		{name: "non ascii letter rejected", in: "josé", wantErr: "alphanumeric only"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Normalize(tt.in)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, model.IsValidation(err))
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	once, err := Normalize("pilot_7")
	require.NoError(t, err)
	twice, err := Normalize(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}
