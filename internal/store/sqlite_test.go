package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ugaemi/zombiedash/internal/record"
)

func setupSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "scores.db")

	s, err := NewSQLiteStore(context.Background(), path)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})
	return s
}

func TestSQLiteStore(t *testing.T) {
	runScoreStoreSuite(t, func(t *testing.T) ScoreStore {
		return setupSQLiteStore(t)
	})
}

func TestSQLiteStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")
	ctx := context.Background()

	s, err := NewSQLiteStore(ctx, path)
	require.NoError(t, err)
	rec := record.NewRecord("재시작", 700, 2, record.OutcomeGameOver)
	require.NoError(t, s.Save(ctx, rec))
	require.NoError(t, s.Close())

	s, err = NewSQLiteStore(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	found, err := s.FindByID(ctx, rec.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 700, found.Score)
}

// runScoreStoreSuite exercises the ScoreStore contract against a fresh store.
func runScoreStoreSuite(t *testing.T, open func(t *testing.T) ScoreStore) {
	ctx := context.Background()

	t.Run("save and find", func(t *testing.T) {
		s := open(t)
		rec := record.NewRecord("테스트유저", 4500, 3, record.OutcomeAllLevelsDone)
		require.NoError(t, s.Save(ctx, rec))

		found, err := s.FindByID(ctx, rec.ID)
		require.NoError(t, err)
		require.NotNil(t, found)

		assert.Equal(t, rec.ID, found.ID)
		assert.Equal(t, "테스트유저", found.Nickname)
		assert.Equal(t, 4500, found.Score)
		assert.Equal(t, 3, found.Level)
		assert.Equal(t, record.OutcomeAllLevelsDone, found.Outcome)
		assert.WithinDuration(t, rec.CreatedAt, found.CreatedAt, time.Millisecond)
	})

	t.Run("find missing", func(t *testing.T) {
		s := open(t)

		found, err := s.FindByID(ctx, "nonexistent-id")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("negative score", func(t *testing.T) {
		s := open(t)
		rec := record.NewRecord("불운", -2000, 1, record.OutcomeGameOver)
		require.NoError(t, s.Save(ctx, rec))

		found, err := s.FindByID(ctx, rec.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, -2000, found.Score)
	})

	t.Run("top orders by score", func(t *testing.T) {
		s := open(t)
		for _, score := range []int{500, -1000, 2500, 1500} {
			require.NoError(t, s.Save(ctx, record.NewRecord("p", score, 1, record.OutcomeGameOver)))
		}

		top, err := s.Top(ctx, 3)
		require.NoError(t, err)
		require.Len(t, top, 3)
		assert.Equal(t, 2500, top[0].Score)
		assert.Equal(t, 1500, top[1].Score)
		assert.Equal(t, 500, top[2].Score)
	})

	t.Run("top default limit", func(t *testing.T) {
		s := open(t)
		for i := 0; i < DefaultTopLimit+2; i++ {
			require.NoError(t, s.Save(ctx, record.NewRecord("p", i*10, 1, record.OutcomeAbandoned)))
		}

		top, err := s.Top(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, top, DefaultTopLimit)
	})

	t.Run("top empty", func(t *testing.T) {
		s := open(t)

		top, err := s.Top(ctx, 5)
		require.NoError(t, err)
		assert.Empty(t, top)
	})
}
