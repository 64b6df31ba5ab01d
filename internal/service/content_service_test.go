package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/internal/repository/mocks"
	"github.com/limbo/momentum/internal/service"
	"github.com/limbo/momentum/pkg/daybucket"
	"github.com/limbo/momentum/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

func TestSubmitContentFirstOfDay(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	entriesRepo := mocks.NewMockDayEntriesRepositoryI(ctrl)
	serv := service.NewContentService(entriesRepo, daybucket.NewResolver(daybucket.DefaultZone))
	uid := uuid.New()
	ts := time.Date(2025, 3, 16, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	entriesRepo.EXPECT().GetByUserAndBucket(gomock.Any(), uid, daybucket.Bucket("2025-03-16")).Return(nil, errorvalues.ErrEntryNotFound)
	entriesRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, entry *entity.DayEntry) error {
		assert.Equal(t, []string{"p1"}, entry.Photos)
		assert.Equal(t, []string{"c1"}, entry.Captions)
		assert.Equal(t, []string{entity.HabitSleep}, entry.HabitTags)
		assert.Equal(t, 1, entry.SubmissionCount)
		assert.Equal(t, 1, entry.TotalPhotos)
		assert.Equal(t, 1, entry.TotalHabits)
		return nil
	})

	entry, err := serv.SubmitContent(ctx, uid, ts, &service.SubmitContentRequest{
		Photos:    []string{"p1"},
		Captions:  []string{"c1"},
		HabitTags: []string{entity.HabitSleep},
	})
	require.NoError(t, err)
	assert.Equal(t, daybucket.Bucket("2025-03-16"), entry.Bucket)
}

func TestSubmitContentMergeOrdering(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	entriesRepo := mocks.NewMockDayEntriesRepositoryI(ctrl)
	serv := service.NewContentService(entriesRepo, daybucket.NewResolver(daybucket.DefaultZone))
	uid := uuid.New()
	ts := time.Date(2025, 3, 16, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	existing := &entity.DayEntry{
		UserID:          uid,
		Bucket:          "2025-03-16",
		Photos:          []string{"p1"},
		Captions:        []string{"c1"},
		HabitTags:       []string{entity.HabitSleep},
		TotalPhotos:     1,
		TotalHabits:     1,
		SubmissionCount: 1,
		Version:         1,
	}
	entriesRepo.EXPECT().GetByUserAndBucket(gomock.Any(), uid, daybucket.Bucket("2025-03-16")).Return(existing, nil)
	entriesRepo.EXPECT().UpdateVersioned(gomock.Any(), gomock.Any(), int64(1)).DoAndReturn(func(_ context.Context, entry *entity.DayEntry, _ int64) error {
		// Newest batch first, captions tracking their photos
		assert.Equal(t, []string{"p2", "p1"}, entry.Photos)
		assert.Equal(t, []string{"c2", "c1"}, entry.Captions)
		assert.Equal(t, []string{entity.HabitSleep, entity.HabitWater}, entry.HabitTags)
		assert.Equal(t, 2, entry.SubmissionCount)
		assert.Equal(t, len(entry.Photos), entry.TotalPhotos)
		assert.Equal(t, len(entry.HabitTags), entry.TotalHabits)
		return nil
	})

	entry, err := serv.SubmitContent(ctx, uid, ts, &service.SubmitContentRequest{
		Photos:    []string{"p2"},
		Captions:  []string{"c2"},
		HabitTags: []string{entity.HabitWater, entity.HabitSleep},
	})
	require.NoError(t, err)
	for i := range entry.Photos {
		require.Less(t, i, len(entry.Captions))
	}
}

func TestSubmitContentCaptionPairing(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	entriesRepo := mocks.NewMockDayEntriesRepositoryI(ctrl)
	serv := service.NewContentService(entriesRepo, daybucket.NewResolver(daybucket.DefaultZone))
	uid := uuid.New()
	ts := time.Date(2025, 3, 16, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("single caption covers the whole batch", func(t *testing.T) {
		entriesRepo.EXPECT().GetByUserAndBucket(gomock.Any(), uid, gomock.Any()).Return(nil, errorvalues.ErrEntryNotFound)
		entriesRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, entry *entity.DayEntry) error {
			assert.Equal(t, []string{"sunset", "sunset", "sunset"}, entry.Captions)
			return nil
		})
		entry, err := serv.SubmitContent(ctx, uid, ts, &service.SubmitContentRequest{
			Photos:   []string{"p1", "p2", "p3"},
			Captions: []string{"sunset"},
		})
		require.NoError(t, err)
		assert.Len(t, entry.Captions, len(entry.Photos))
	})

	t.Run("no captions become empty slots", func(t *testing.T) {
		entriesRepo.EXPECT().GetByUserAndBucket(gomock.Any(), uid, gomock.Any()).Return(nil, errorvalues.ErrEntryNotFound)
		entriesRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		entry, err := serv.SubmitContent(ctx, uid, ts, &service.SubmitContentRequest{
			Photos: []string{"p1", "p2"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"", ""}, entry.Captions)
	})

	t.Run("mismatched captions are rejected before storage", func(t *testing.T) {
		_, err := serv.SubmitContent(ctx, uid, ts, &service.SubmitContentRequest{
			Photos:   []string{"p1", "p2", "p3"},
			Captions: []string{"c1", "c2"},
		})
		assert.ErrorIs(t, err, errorvalues.ErrBadSubmission)
	})

	t.Run("unknown habit tag is rejected before storage", func(t *testing.T) {
		_, err := serv.SubmitContent(ctx, uid, ts, &service.SubmitContentRequest{
			Photos:    []string{"p1"},
			Captions:  []string{"c1"},
			HabitTags: []string{"levitation"},
		})
		assert.ErrorIs(t, err, errorvalues.ErrBadSubmission)
	})
}

func TestSubmitContentConflictRetry(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	entriesRepo := mocks.NewMockDayEntriesRepositoryI(ctrl)
	serv := service.NewContentService(entriesRepo, daybucket.NewResolver(daybucket.DefaultZone))
	uid := uuid.New()
	ts := time.Date(2025, 3, 16, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("create race falls back to a merge", func(t *testing.T) {
		existing := &entity.DayEntry{
			UserID: uid, Bucket: "2025-03-16",
			Photos: []string{"p1"}, Captions: []string{"c1"},
			SubmissionCount: 1, TotalPhotos: 1, Version: 1,
		}
		gomock.InOrder(
			entriesRepo.EXPECT().GetByUserAndBucket(gomock.Any(), uid, gomock.Any()).Return(nil, errorvalues.ErrEntryNotFound),
			entriesRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errorvalues.ErrVersionConflict),
			entriesRepo.EXPECT().GetByUserAndBucket(gomock.Any(), uid, gomock.Any()).Return(existing, nil),
			entriesRepo.EXPECT().UpdateVersioned(gomock.Any(), gomock.Any(), int64(1)).Return(nil),
		)
		entry, err := serv.SubmitContent(ctx, uid, ts, &service.SubmitContentRequest{
			Photos:   []string{"p2"},
			Captions: []string{"c2"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"p2", "p1"}, entry.Photos)
	})

	t.Run("exhausted retries surface ErrConflict", func(t *testing.T) {
		entriesRepo.EXPECT().GetByUserAndBucket(gomock.Any(), uid, gomock.Any()).Return(nil, errorvalues.ErrEntryNotFound).Times(3)
		entriesRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errorvalues.ErrVersionConflict).Times(3)
		_, err := serv.SubmitContent(ctx, uid, ts, &service.SubmitContentRequest{
			Photos:   []string{"p1"},
			Captions: []string{"c1"},
		})
		assert.ErrorIs(t, err, errorvalues.ErrConflict)
	})
}

func TestDeleteDay(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	entriesRepo := mocks.NewMockDayEntriesRepositoryI(ctrl)
	serv := service.NewContentService(entriesRepo, daybucket.NewResolver(daybucket.DefaultZone))
	uid := uuid.New()
	ctx := context.Background()
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "successful",
			Error: nil,
			MockPrepFunc: func() {
				entriesRepo.EXPECT().Delete(gomock.Any(), uid, daybucket.Bucket("2025-03-16")).Return(nil)
			},
		},
		{
			Desc:  "day doesn't exist",
			Error: errorvalues.ErrEntryNotFound,
			MockPrepFunc: func() {
				entriesRepo.EXPECT().Delete(gomock.Any(), uid, daybucket.Bucket("2025-03-16")).Return(errorvalues.ErrEntryNotFound)
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("day entries repository error: db error"),
			MockPrepFunc: func() {
				entriesRepo.EXPECT().Delete(gomock.Any(), uid, daybucket.Bucket("2025-03-16")).Return(errors.New("db error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := serv.DeleteDay(ctx, uid, "2025-03-16")
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetRecentDays(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	entriesRepo := mocks.NewMockDayEntriesRepositoryI(ctrl)
	serv := service.NewContentService(entriesRepo, daybucket.NewResolver(daybucket.DefaultZone))
	uid := uuid.New()
	entriesRepo.EXPECT().GetRecent(gomock.Any(), uid, 5).Return([]*entity.DayEntry{
		{UserID: uid, Bucket: "2025-03-16"},
		{UserID: uid, Bucket: "2025-03-15"},
	}, nil)
	days, err := serv.GetRecentDays(context.Background(), uid, 5)
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.True(t, days[0].Bucket > days[1].Bucket)
}
