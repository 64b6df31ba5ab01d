package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/internal/repository"
	"github.com/limbo/momentum/pkg/daybucket"
	"github.com/limbo/momentum/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDayEntry(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	entriesRepo := repository.NewDayEntriesRepoWithConn(mock)
	query := regexp.QuoteMeta(`INSERT INTO day_entries
		(user_id, bucket, photos, captions, habit_tags, total_photos, total_habits, submission_count, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 1);`)
	uid := uuid.New()
	entry := &entity.DayEntry{
		UserID:          uid,
		Bucket:          "2025-03-16",
		Photos:          []string{"p1"},
		Captions:        []string{"c1"},
		HabitTags:       []string{"sleep"},
		TotalPhotos:     1,
		TotalHabits:     1,
		SubmissionCount: 1,
	}
	args := []any{uid, "2025-03-16", entry.Photos, entry.Captions, entry.HabitTags, 1, 1, 1}
	testCases := []struct {
		Desc            string
		Error           error
		MockPrepareFunc func()
	}{
		{
			Desc:  "successful",
			Error: nil,
			MockPrepareFunc: func() {
				mock.ExpectExec(query).WithArgs(args...).WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			Desc:  "create race",
			Error: errorvalues.ErrVersionConflict,
			MockPrepareFunc: func() {
				mock.ExpectExec(query).WithArgs(args...).WillReturnError(&pgconn.PgError{
					Code: "23505",
				})
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("creating day entry error: db error"),
			MockPrepareFunc: func() {
				mock.ExpectExec(query).WithArgs(args...).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepareFunc()
			err := entriesRepo.Create(ctx, entry)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetDayEntryByUserAndBucket(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	entriesRepo := repository.NewDayEntriesRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT photos, captions, habit_tags, total_photos, total_habits, submission_count, version, created_at, updated_at
		FROM day_entries WHERE user_id = $1 AND bucket = $2;`)
	uid := uuid.New()
	bucket := daybucket.Bucket("2025-03-16")
	now := time.Now()
	testCases := []struct {
		Desc            string
		Error           error
		MockPrepareFunc func()
	}{
		{
			Desc:  "successful",
			Error: nil,
			MockPrepareFunc: func() {
				rows := pgxmock.NewRows([]string{"photos", "captions", "habit_tags", "total_photos", "total_habits", "submission_count", "version", "created_at", "updated_at"}).
					AddRow([]string{"p2", "p1"}, []string{"c2", "c1"}, []string{"sleep", "water"}, 2, 2, 2, int64(2), now, now)
				mock.ExpectQuery(query).WithArgs(uid, "2025-03-16").WillReturnRows(rows)
			},
		},
		{
			Desc:  "not found",
			Error: errorvalues.ErrEntryNotFound,
			MockPrepareFunc: func() {
				mock.ExpectQuery(query).WithArgs(uid, "2025-03-16").WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("getting day entry error: db error"),
			MockPrepareFunc: func() {
				mock.ExpectQuery(query).WithArgs(uid, "2025-03-16").WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepareFunc()
			entry, err := entriesRepo.GetByUserAndBucket(ctx, uid, bucket)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []string{"p2", "p1"}, entry.Photos)
			assert.Equal(t, []string{"c2", "c1"}, entry.Captions)
			assert.Equal(t, 2, entry.SubmissionCount)
			assert.Equal(t, int64(2), entry.Version)
		})
	}
}

func TestUpdateDayEntryVersioned(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	entriesRepo := repository.NewDayEntriesRepoWithConn(mock)
	query := regexp.QuoteMeta(`UPDATE day_entries
		SET photos = $1, captions = $2, habit_tags = $3, total_photos = $4, total_habits = $5,
			submission_count = $6, version = version + 1, updated_at = NOW()
		WHERE user_id = $7 AND bucket = $8 AND version = $9;`)
	uid := uuid.New()
	entry := &entity.DayEntry{
		UserID:          uid,
		Bucket:          "2025-03-16",
		Photos:          []string{"p2", "p1"},
		Captions:        []string{"c2", "c1"},
		HabitTags:       []string{"sleep"},
		TotalPhotos:     2,
		TotalHabits:     1,
		SubmissionCount: 2,
		Version:         1,
	}
	args := []any{entry.Photos, entry.Captions, entry.HabitTags, 2, 1, 2, uid, "2025-03-16", int64(1)}
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "successful",
			Error: nil,
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(args...).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			Desc:  "stale version",
			Error: errorvalues.ErrVersionConflict,
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(args...).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("updating day entry error: db error"),
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(args...).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := entriesRepo.UpdateVersioned(ctx, entry, 1)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetRecentDayEntries(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	entriesRepo := repository.NewDayEntriesRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT bucket, photos, captions, habit_tags, total_photos, total_habits, submission_count, version, created_at, updated_at
		FROM day_entries WHERE user_id = $1 ORDER BY bucket DESC LIMIT $2;`)
	uid := uuid.New()
	now := time.Now()
	t.Run("successful newest first", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"bucket", "photos", "captions", "habit_tags", "total_photos", "total_habits", "submission_count", "version", "created_at", "updated_at"}).
			AddRow("2025-03-16", []string{"p2"}, []string{"c2"}, []string{"water"}, 1, 1, 1, int64(1), now, now).
			AddRow("2025-03-15", []string{"p1"}, []string{"c1"}, []string{"sleep"}, 1, 1, 1, int64(1), now, now)
		mock.ExpectQuery(query).WithArgs(uid, 2).WillReturnRows(rows)
		entries, err := entriesRepo.GetRecent(context.Background(), uid, 2)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, daybucket.Bucket("2025-03-16"), entries[0].Bucket)
		assert.Equal(t, daybucket.Bucket("2025-03-15"), entries[1].Bucket)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(uid, 2).WillReturnError(errors.New("db error"))
		_, err := entriesRepo.GetRecent(context.Background(), uid, 2)
		assert.EqualError(t, err, "getting recent day entries error: db error")
	})
}

func TestDeleteDayEntry(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	entriesRepo := repository.NewDayEntriesRepoWithConn(mock)
	query := regexp.QuoteMeta(`DELETE FROM day_entries WHERE user_id = $1 AND bucket = $2;`)
	uid := uuid.New()
	bucket := daybucket.Bucket("2025-03-16")
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "successful",
			Error: nil,
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(uid, "2025-03-16").WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
		},
		{
			Desc:  "entry not found",
			Error: errorvalues.ErrEntryNotFound,
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(uid, "2025-03-16").WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("deleting day entry error: db error"),
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(uid, "2025-03-16").WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := entriesRepo.Delete(ctx, uid, bucket)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
