package dashboardqueries

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildFilter_Empty(t *testing.T) {
	f := BuildFilter("", "", "", "", "")

	assert.Nil(t, f.Branch)
	assert.Nil(t, f.Subject)
	assert.Empty(t, f.ExamType)
	assert.Nil(t, f.From)
	assert.Nil(t, f.To)
	assert.False(t, f.MatchesNothing())
}

func TestBuildFilter_ValidIdentifiers(t *testing.T) {
	branch := primitive.NewObjectID()
	subject := primitive.NewObjectID()

	f := BuildFilter(branch.Hex(), subject.Hex(), "mid", "", "")

	require.NotNil(t, f.Branch)
	assert.Equal(t, branch, *f.Branch)
	require.NotNil(t, f.Subject)
	assert.Equal(t, subject, *f.Subject)
	assert.Equal(t, "mid", f.ExamType)
	assert.False(t, f.MatchesNothing())
}

func TestBuildFilter_InvalidIdentifierMatchesNothing(t *testing.T) {
	t.Run("bad branch", func(t *testing.T) {
		f := BuildFilter("not-a-hex-id", "", "", "", "")
		assert.True(t, f.MatchesNothing())
	})

	t.Run("bad subject", func(t *testing.T) {
		f := BuildFilter("", "zzz", "", "", "")
		assert.True(t, f.MatchesNothing())
	})
}

func TestBuildFilter_Dates(t *testing.T) {
	t.Run("plain dates", func(t *testing.T) {
		f := BuildFilter("", "", "", "2025-01-01", "2025-06-30")
		require.NotNil(t, f.From)
		require.NotNil(t, f.To)
		assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), *f.From)
		assert.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), *f.To)
	})

	t.Run("invalid date means no bound, not an error", func(t *testing.T) {
		f := BuildFilter("", "", "", "yesterday", "2025-13-45")
		assert.Nil(t, f.From)
		assert.Nil(t, f.To)
		assert.False(t, f.MatchesNothing())
	})

	t.Run("rfc3339 accepted", func(t *testing.T) {
		f := BuildFilter("", "", "", "2025-01-01T10:30:00Z", "")
		require.NotNil(t, f.From)
		assert.Equal(t, 10, f.From.Hour())
	})
}
