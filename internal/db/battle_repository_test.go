package db_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/udisondev/monbattle/internal/db"
	"github.com/udisondev/monbattle/internal/testutil"
)

type BattleRepositorySuite struct {
	suite.Suite
	ctx  context.Context
	dsn  string
	repo *db.BattleRepository
}

func TestBattleRepository(t *testing.T) {
	suite.Run(t, new(BattleRepositorySuite))
}

func (s *BattleRepositorySuite) SetupSuite() {
	database, dsn := testutil.SetupTestDB(s.T())
	s.ctx = context.Background()
	s.dsn = dsn
	s.repo = database.Battles()
}

func (s *BattleRepositorySuite) SetupTest() {
	_, err := s.repo.Delete(s.ctx, "alpha")
	s.Require().NoError(err)
	_, err = s.repo.Delete(s.ctx, "beta")
	s.Require().NoError(err)
}

func record(batch string, seed uint64, winner int) db.BattleRecord {
	return db.BattleRecord{
		ID:        uuid.New(),
		Batch:     batch,
		Seed:      seed,
		Winner:    winner,
		Turns:     int(seed) + 3,
		Survivors: [2]int{1, 0},
		RNGDraws:  1 << 40,
		StartedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Duration:  1500 * time.Microsecond,
	}
}

func (s *BattleRepositorySuite) TestMigrationVersion() {
	v, err := db.MigrationVersion(s.ctx, s.dsn)
	s.Require().NoError(err)
	s.Equal(int64(1), v)
}

func (s *BattleRepositorySuite) TestSaveAndGet() {
	rec := record("alpha", 7, 0)
	s.Require().NoError(s.repo.Save(s.ctx, rec))

	got, err := s.repo.Get(s.ctx, rec.ID)
	s.Require().NoError(err)
	s.Equal(rec.ID, got.ID)
	s.Equal(rec.Seed, got.Seed)
	s.Equal(rec.Turns, got.Turns)
	s.Equal(rec.Survivors, got.Survivors)
	s.Equal(rec.RNGDraws, got.RNGDraws)
	s.Equal(rec.Duration, got.Duration)
	s.True(rec.StartedAt.Equal(got.StartedAt))

	// saving again replaces the outcome
	rec.Winner, rec.Fled = -1, true
	s.Require().NoError(s.repo.Save(s.ctx, rec))
	got, err = s.repo.Get(s.ctx, rec.ID)
	s.Require().NoError(err)
	s.Equal(-1, got.Winner)
	s.True(got.Fled)
}

func (s *BattleRepositorySuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, uuid.New())
	s.ErrorIs(err, db.ErrRecordNotFound)
}

func (s *BattleRepositorySuite) TestListAndStats() {
	recs := []db.BattleRecord{
		record("alpha", 3, 1),
		record("alpha", 1, 0),
		record("alpha", 2, 0),
		record("beta", 1, 1),
	}
	fled := record("alpha", 4, -1)
	fled.Fled = true
	recs = append(recs, fled)
	s.Require().NoError(s.repo.SaveBatch(s.ctx, recs))

	list, err := s.repo.List(s.ctx, "alpha")
	s.Require().NoError(err)
	s.Require().Len(list, 4)
	for i, r := range list {
		s.Equal(uint64(i+1), r.Seed)
	}

	stats, err := s.repo.Stats(s.ctx, "alpha")
	s.Require().NoError(err)
	s.Equal(4, stats.Battles)
	s.Equal([2]int{2, 1}, stats.Wins)
	s.Zero(stats.Draws)
	s.Equal(1, stats.Fled)
	s.InDelta(5.5, stats.AvgTurns, 1e-9)

	n, err := s.repo.Delete(s.ctx, "beta")
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	empty, err := s.repo.Stats(s.ctx, "beta")
	s.Require().NoError(err)
	s.Zero(empty.Battles)
	s.Zero(empty.AvgTurns)
}

func TestNew_Unreachable(t *testing.T) {
	t.Parallel()

	_, err := db.New(testutil.Context(t, time.Second), "postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database")
}
