package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrRecordNotFound is returned when no battle record has the requested id.
var ErrRecordNotFound = errors.New("battle record not found")

// BattleRecord is one row of battle_records.
type BattleRecord struct {
	ID        uuid.UUID
	Batch     string
	Seed      uint64
	Winner    int // -1 for a draw or a flee
	Fled      bool
	Turns     int
	Survivors [2]int
	RNGDraws  uint64
	StartedAt time.Time
	Duration  time.Duration
}

// BatchStats aggregates the records of a batch.
type BatchStats struct {
	Battles  int
	Wins     [2]int
	Draws    int
	Fled     int
	AvgTurns float64
}

// BattleRepository stores self-play battle records.
type BattleRepository struct {
	pool *pgxpool.Pool
}

// NewBattleRepository creates a new BattleRepository.
func NewBattleRepository(pool *pgxpool.Pool) *BattleRepository {
	return &BattleRepository{pool: pool}
}

// Save inserts rec. Saving the same id twice keeps the last version.
func (r *BattleRepository) Save(ctx context.Context, rec BattleRecord) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO battle_records
		 (id, batch, seed, winner, fled, turns, survivors_0, survivors_1, rng_draws, started_at, duration_us)
		 VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 ON CONFLICT (id) DO UPDATE SET
		   winner = EXCLUDED.winner, fled = EXCLUDED.fled, turns = EXCLUDED.turns,
		   survivors_0 = EXCLUDED.survivors_0, survivors_1 = EXCLUDED.survivors_1,
		   rng_draws = EXCLUDED.rng_draws, started_at = EXCLUDED.started_at,
		   duration_us = EXCLUDED.duration_us`,
		rec.ID.String(), rec.Batch, int64(rec.Seed), rec.Winner, rec.Fled, rec.Turns,
		rec.Survivors[0], rec.Survivors[1], int64(rec.RNGDraws), rec.StartedAt, rec.Duration.Microseconds(),
	)
	if err != nil {
		return fmt.Errorf("saving battle record %s: %w", rec.ID, err)
	}
	return nil
}

// SaveBatch inserts records in one transaction.
func (r *BattleRepository) SaveBatch(ctx context.Context, recs []BattleRecord) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	for _, rec := range recs {
		batch.Queue(
			`INSERT INTO battle_records
			 (id, batch, seed, winner, fled, turns, survivors_0, survivors_1, rng_draws, started_at, duration_us)
			 VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			 ON CONFLICT (id) DO NOTHING`,
			rec.ID.String(), rec.Batch, int64(rec.Seed), rec.Winner, rec.Fled, rec.Turns,
			rec.Survivors[0], rec.Survivors[1], int64(rec.RNGDraws), rec.StartedAt, rec.Duration.Microseconds(),
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("saving %d battle records: %w", len(recs), err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit battle records: %w", err)
	}
	return nil
}

const selectRecord = `SELECT id::text, batch, seed, winner, fled, turns, survivors_0, survivors_1,
	rng_draws, started_at, duration_us FROM battle_records`

// Get returns the record with id, ErrRecordNotFound if none.
func (r *BattleRepository) Get(ctx context.Context, id uuid.UUID) (BattleRecord, error) {
	rows, err := r.pool.Query(ctx, selectRecord+` WHERE id = $1::uuid`, id.String())
	if err != nil {
		return BattleRecord{}, fmt.Errorf("querying battle record %s: %w", id, err)
	}
	rec, err := pgx.CollectExactlyOneRow(rows, scanRecord)
	if errors.Is(err, pgx.ErrNoRows) {
		return BattleRecord{}, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
	}
	if err != nil {
		return BattleRecord{}, fmt.Errorf("scanning battle record %s: %w", id, err)
	}
	return rec, nil
}

// List returns the records of batch in seed order.
func (r *BattleRepository) List(ctx context.Context, batch string) ([]BattleRecord, error) {
	rows, err := r.pool.Query(ctx, selectRecord+` WHERE batch = $1 ORDER BY seed`, batch)
	if err != nil {
		return nil, fmt.Errorf("querying battle records of %q: %w", batch, err)
	}
	recs, err := pgx.CollectRows(rows, scanRecord)
	if err != nil {
		return nil, fmt.Errorf("scanning battle records of %q: %w", batch, err)
	}
	return recs, nil
}

// Stats aggregates the records of batch.
func (r *BattleRepository) Stats(ctx context.Context, batch string) (BatchStats, error) {
	var (
		s     BatchStats
		avg   *float64
		wins0 int
		wins1 int
	)
	err := r.pool.QueryRow(ctx,
		`SELECT count(*),
		        count(*) FILTER (WHERE winner = 0),
		        count(*) FILTER (WHERE winner = 1),
		        count(*) FILTER (WHERE winner = -1 AND NOT fled),
		        count(*) FILTER (WHERE fled),
		        avg(turns)::float8
		 FROM battle_records WHERE batch = $1`, batch,
	).Scan(&s.Battles, &wins0, &wins1, &s.Draws, &s.Fled, &avg)
	if err != nil {
		return s, fmt.Errorf("aggregating battle records of %q: %w", batch, err)
	}
	s.Wins = [2]int{wins0, wins1}
	if avg != nil {
		s.AvgTurns = *avg
	}
	return s, nil
}

// Delete removes the records of batch and returns how many were removed.
func (r *BattleRepository) Delete(ctx context.Context, batch string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM battle_records WHERE batch = $1`, batch)
	if err != nil {
		return 0, fmt.Errorf("deleting battle records of %q: %w", batch, err)
	}
	return tag.RowsAffected(), nil
}

func scanRecord(row pgx.CollectableRow) (BattleRecord, error) {
	var (
		rec        BattleRecord
		id         string
		seed       int64
		draws      int64
		durationUS int64
	)
	if err := row.Scan(&id, &rec.Batch, &seed, &rec.Winner, &rec.Fled, &rec.Turns,
		&rec.Survivors[0], &rec.Survivors[1], &draws, &rec.StartedAt, &durationUS); err != nil {
		return rec, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return rec, fmt.Errorf("parsing id %q: %w", id, err)
	}
	rec.ID = parsed
	rec.Seed = uint64(seed)
	rec.RNGDraws = uint64(draws)
	rec.Duration = time.Duration(durationUS) * time.Microsecond
	return rec, nil
}
