package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/pkg/cleanup"
	"github.com/limbo/momentum/pkg/daybucket"
	"github.com/limbo/momentum/pkg/entity"
)

type DayEntriesRepository struct {
	conn PgConnection
}

func NewDayEntriesRepo(cfg DBConfig) *DayEntriesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for dayEntriesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for dayEntriesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing day entries pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &DayEntriesRepository{
		conn: pool,
	}
}

func NewDayEntriesRepoWithConn(conn PgConnection) *DayEntriesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for dayEntriesRepo: " + err.Error())
	}
	return &DayEntriesRepository{
		conn: conn,
	}
}

func (der *DayEntriesRepository) Create(ctx context.Context, entry *entity.DayEntry) error {
	_, err := der.conn.Exec(ctx, `INSERT INTO day_entries
		(user_id, bucket, photos, captions, habit_tags, total_photos, total_habits, submission_count, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 1);`,
		entry.UserID,
		entry.Bucket.String(),
		entry.Photos,
		entry.Captions,
		entry.HabitTags,
		entry.TotalPhotos,
		entry.TotalHabits,
		entry.SubmissionCount,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation: another writer created this day first
			case "23505":
				return errorvalues.ErrVersionConflict
			}
		}
		return errors.New("creating day entry error: " + err.Error())
	}
	return nil
}

func (der *DayEntriesRepository) GetByUserAndBucket(ctx context.Context, uid uuid.UUID, bucket daybucket.Bucket) (*entity.DayEntry, error) {
	var entry entity.DayEntry
	entry.UserID = uid
	entry.Bucket = bucket
	row := der.conn.QueryRow(ctx, `SELECT photos, captions, habit_tags, total_photos, total_habits, submission_count, version, created_at, updated_at
		FROM day_entries WHERE user_id = $1 AND bucket = $2;`, uid, bucket.String())
	err := row.Scan(&entry.Photos, &entry.Captions, &entry.HabitTags, &entry.TotalPhotos,
		&entry.TotalHabits, &entry.SubmissionCount, &entry.Version, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrEntryNotFound
		}
		return nil, errors.New("getting day entry error: " + err.Error())
	}
	return &entry, nil
}

func (der *DayEntriesRepository) UpdateVersioned(ctx context.Context, entry *entity.DayEntry, expected int64) error {
	ct, err := der.conn.Exec(ctx, `UPDATE day_entries
		SET photos = $1, captions = $2, habit_tags = $3, total_photos = $4, total_habits = $5,
			submission_count = $6, version = version + 1, updated_at = NOW()
		WHERE user_id = $7 AND bucket = $8 AND version = $9;`,
		entry.Photos,
		entry.Captions,
		entry.HabitTags,
		entry.TotalPhotos,
		entry.TotalHabits,
		entry.SubmissionCount,
		entry.UserID,
		entry.Bucket.String(),
		expected,
	)
	if err != nil {
		return errors.New("updating day entry error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrVersionConflict
	}
	return nil
}

func (der *DayEntriesRepository) GetRecent(ctx context.Context, uid uuid.UUID, limit int) ([]*entity.DayEntry, error) {
	entries := make([]*entity.DayEntry, 0)
	rows, err := der.conn.Query(ctx, `SELECT bucket, photos, captions, habit_tags, total_photos, total_habits, submission_count, version, created_at, updated_at
		FROM day_entries WHERE user_id = $1 ORDER BY bucket DESC LIMIT $2;`, uid, limit)
	if err != nil {
		return nil, errors.New("getting recent day entries error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		e := entity.DayEntry{UserID: uid}
		var bucket string
		err = rows.Scan(&bucket, &e.Photos, &e.Captions, &e.HabitTags, &e.TotalPhotos,
			&e.TotalHabits, &e.SubmissionCount, &e.Version, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling day entry error: " + err.Error())
		}
		e.Bucket = daybucket.Bucket(bucket)
		entries = append(entries, &e)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return entries, nil
}

func (der *DayEntriesRepository) Delete(ctx context.Context, uid uuid.UUID, bucket daybucket.Bucket) error {
	ct, err := der.conn.Exec(ctx, `DELETE FROM day_entries WHERE user_id = $1 AND bucket = $2;`, uid, bucket.String())
	if err != nil {
		return errors.New("deleting day entry error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrEntryNotFound
	}
	return nil
}
