package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/momentum/pkg/daybucket"
	"github.com/limbo/momentum/pkg/entity"
	"github.com/limbo/momentum/pkg/level"
)

type SubmitContentRequest struct {
	Photos    []string `validate:"max=20,dive,required,max=512"`
	Captions  []string `validate:"max=20,dive,max=1024"`
	HabitTags []string `validate:"max=12,dive,habit_name"`
}

type ContentServiceI interface {
	// Creates the day's entry on the first submission, merges into it afterwards.
	// New photos land ahead of existing ones with their captions kept paired
	SubmitContent(ctx context.Context, uid uuid.UUID, ts time.Time, req *SubmitContentRequest) (*entity.DayEntry, error)
	// Removes the whole day entry
	DeleteDay(ctx context.Context, uid uuid.UUID, bucket daybucket.Bucket) error
	GetDay(ctx context.Context, uid uuid.UUID, bucket daybucket.Bucket) (*entity.DayEntry, error)
	// Lists entries newest bucket first
	GetRecentDays(ctx context.Context, uid uuid.UUID, limit int) ([]*entity.DayEntry, error)
}

type ScoreServiceI interface {
	// Recomputes the six value-derived flags from the snapshot, preserving the
	// explicitly completed ones
	SaveDailyHabits(ctx context.Context, uid uuid.UUID, ts time.Time, snap entity.ValueSnapshot) (*entity.ScoreCard, error)
	// Marks meditation/microlearn complete. ErrAlreadyCompleted when the flag
	// is already set for this bucket
	CompleteExplicitHabit(ctx context.Context, uid uuid.UUID, ts time.Time, name string) (*entity.ScoreCard, error)
	// Aligns the reaction/comment flag with the externally computed live state.
	// Toggling never double-counts and never drives points negative
	RefreshCoreHabitState(ctx context.Context, uid uuid.UUID, ts time.Time, name string, active bool) (*entity.ScoreCard, error)
	// Records share/goal_update. ErrAlreadyCompleted on the second call in a bucket
	RecordOneShotAction(ctx context.Context, uid uuid.UUID, ts time.Time, name string) (*entity.ScoreCard, error)
	// Absent scorecards read as all-zero breakdowns
	GetPointsBreakdown(ctx context.Context, uid uuid.UUID, bucket daybucket.Bucket) (entity.Breakdown, error)
	GetCoreHabitStatus(ctx context.Context, uid uuid.UUID, bucket daybucket.Bucket) (entity.CoreFlags, error)
	// Always the live sum over the user's scorecards, never the advisory cache
	GetCumulativeTotal(ctx context.Context, uid uuid.UUID) (int, error)
	GetLevel(ctx context.Context, uid uuid.UUID) (level.Progress, error)
}
