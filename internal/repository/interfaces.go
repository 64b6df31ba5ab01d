package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/momentum/pkg/daybucket"
	"github.com/limbo/momentum/pkg/entity"
)

type DayEntriesRepositoryI interface {
	// Inserts the first entry of the day. Returns ErrVersionConflict when another
	// writer created the row first, so the caller can re-read and merge
	Create(ctx context.Context, entry *entity.DayEntry) error
	// Looks up the entry for (uid, bucket). ErrEntryNotFound when absent
	GetByUserAndBucket(ctx context.Context, uid uuid.UUID, bucket daybucket.Bucket) (*entity.DayEntry, error)
	// Conditionally updates the entry; applies only when the stored version
	// still equals expected, otherwise ErrVersionConflict
	UpdateVersioned(ctx context.Context, entry *entity.DayEntry, expected int64) error
	// Lists the user's entries, newest bucket first
	GetRecent(ctx context.Context, uid uuid.UUID, limit int) ([]*entity.DayEntry, error)
	// Removes the whole day. ErrEntryNotFound when there was nothing to remove
	Delete(ctx context.Context, uid uuid.UUID, bucket daybucket.Bucket) error
}

type ScoreCardsRepositoryI interface {
	// Inserts the first scorecard of the day. ErrVersionConflict on a create race
	Create(ctx context.Context, card *entity.ScoreCard) error
	// Looks up the scorecard for (uid, bucket). ErrScoreNotFound when absent
	GetByUserAndBucket(ctx context.Context, uid uuid.UUID, bucket daybucket.Bucket) (*entity.ScoreCard, error)
	// Conditional update guarded by the version column
	UpdateVersioned(ctx context.Context, card *entity.ScoreCard, expected int64) error
	// Live sum of total_points over every scorecard the user owns. This is the
	// authoritative cumulative total
	SumTotalPoints(ctx context.Context, uid uuid.UUID) (int, error)
	// Best-effort bump of the advisory user_totals cache. Never read back for
	// scoring decisions
	BumpCachedTotal(ctx context.Context, uid uuid.UUID, delta int) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
