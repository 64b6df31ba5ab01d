package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/limbo/momentum/pkg/daybucket"
)

// DayEntry is the merged photo/caption/habit-tag record for one user and one
// day bucket. TotalPhotos and TotalHabits are denormalized projections and
// must equal the true slice lengths after every merge.
type DayEntry struct {
	UserID          uuid.UUID        `json:"uid"`
	Bucket          daybucket.Bucket `json:"bucket"`
	Photos          []string         `json:"photos"`
	Captions        []string         `json:"captions"`
	HabitTags       []string         `json:"habit_tags"`
	TotalPhotos     int              `json:"total_photos"`
	TotalHabits     int              `json:"total_habits"`
	SubmissionCount int              `json:"submission_count"`
	Version         int64            `json:"-"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// ScoreCard is the per-user per-bucket points record. TotalPoints always
// equals DailyPoints + CorePoints + BonusPoints; call Recompute after
// touching any flag so the projection never drifts.
type ScoreCard struct {
	UserID      uuid.UUID        `json:"uid"`
	Bucket      daybucket.Bucket `json:"bucket"`
	Daily       DailyFlags       `json:"daily"`
	Core        CoreFlags        `json:"core"`
	DailyPoints int              `json:"daily_points"`
	CorePoints  int              `json:"core_points"`
	BonusPoints int              `json:"bonus_points"`
	TotalPoints int              `json:"total_points"`
	Version     int64            `json:"-"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func NewScoreCard(uid uuid.UUID, bucket daybucket.Bucket) *ScoreCard {
	return &ScoreCard{
		UserID: uid,
		Bucket: bucket,
	}
}

// Recompute re-derives the point projections from the flags. Every habit flag
// is worth PointsPerHabit, so a cleared state-refresh flag naturally clamps
// CorePoints at zero instead of going negative.
func (sc *ScoreCard) Recompute() {
	sc.DailyPoints = sc.Daily.Count() * PointsPerHabit
	sc.CorePoints = sc.Core.Count() * PointsPerHabit
	sc.TotalPoints = sc.DailyPoints + sc.CorePoints + sc.BonusPoints
}

// AwardBonusIfComplete sets the bonus once per bucket when every daily and
// core flag is true. The bonus is sticky: it is never taken back even if a
// state-refresh flag later flips off. Callers must Recompute afterwards when
// it reports true.
func (sc *ScoreCard) AwardBonusIfComplete() bool {
	if sc.BonusPoints > 0 {
		return false
	}
	if !sc.Daily.All() || !sc.Core.All() {
		return false
	}
	sc.BonusPoints = BonusValue
	return true
}

// Breakdown is the query-facing points decomposition.
type Breakdown struct {
	DailyPoints int `json:"daily_points"`
	CorePoints  int `json:"core_points"`
	BonusPoints int `json:"bonus_points"`
	TotalPoints int `json:"total_points"`
}

func (sc *ScoreCard) Breakdown() Breakdown {
	return Breakdown{
		DailyPoints: sc.DailyPoints,
		CorePoints:  sc.CorePoints,
		BonusPoints: sc.BonusPoints,
		TotalPoints: sc.TotalPoints,
	}
}
