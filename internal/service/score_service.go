package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/internal/repository"
	"github.com/limbo/momentum/pkg/daybucket"
	"github.com/limbo/momentum/pkg/entity"
	"github.com/limbo/momentum/pkg/level"
)

// maxConflictRetries bounds the optimistic-concurrency retry loop. Exceeding
// it surfaces ErrConflict instead of silently dropping the event.
const maxConflictRetries = 3

type ScoreService struct {
	cards   repository.ScoreCardsRepositoryI
	buckets *daybucket.Resolver
}

func NewScoreService(cardsRepo repository.ScoreCardsRepositoryI, buckets *daybucket.Resolver) *ScoreService {
	if cardsRepo == nil || buckets == nil {
		log.Fatal("on score service provided nil dependencies")
	}
	return &ScoreService{
		cards:   cardsRepo,
		buckets: buckets,
	}
}

// mutation applies an event to a scorecard. It reports whether anything
// changed; sentinel errors (ErrAlreadyCompleted) pass through untouched.
type mutation func(card *entity.ScoreCard) (bool, error)

// mutateCard runs the read-modify-write cycle for one (user, bucket) key:
// fetch or start a card, apply the mutation, re-derive the point projections,
// evaluate the bonus, then write back guarded by the version column. A create
// race or stale version restarts the cycle from a fresh read.
func (ss *ScoreService) mutateCard(ctx context.Context, uid uuid.UUID, bucket daybucket.Bucket, apply mutation) (*entity.ScoreCard, error) {
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		card, err := ss.cards.GetByUserAndBucket(ctx, uid, bucket)
		fresh := false
		if err != nil {
			if !errors.Is(err, errorvalues.ErrScoreNotFound) {
				return nil, errors.New("scorecards repository error: " + err.Error())
			}
			card = entity.NewScoreCard(uid, bucket)
			fresh = true
		}
		before := card.TotalPoints
		changed, err := apply(card)
		if err != nil {
			return nil, err
		}
		if !changed {
			return card, nil
		}
		card.Recompute()
		if card.AwardBonusIfComplete() {
			card.Recompute()
		}
		if fresh {
			err = ss.cards.Create(ctx, card)
		} else {
			err = ss.cards.UpdateVersioned(ctx, card, card.Version)
		}
		if err != nil {
			if errors.Is(err, errorvalues.ErrVersionConflict) {
				continue
			}
			return nil, errors.New("scorecards repository error: " + err.Error())
		}
		// Advisory cache only; the authoritative total stays the live sum
		if delta := card.TotalPoints - before; delta != 0 {
			if cerr := ss.cards.BumpCachedTotal(ctx, uid, delta); cerr != nil {
				slog.Warn("bumping cached total failed", slog.String("error", cerr.Error()))
			}
		}
		return card, nil
	}
	return nil, errorvalues.ErrConflict
}

func (ss *ScoreService) SaveDailyHabits(ctx context.Context, uid uuid.UUID, ts time.Time, snap entity.ValueSnapshot) (*entity.ScoreCard, error) {
	bucket := ss.buckets.BucketFor(ts)
	return ss.mutateCard(ctx, uid, bucket, func(card *entity.ScoreCard) (bool, error) {
		next := card.Daily
		next.Sleep = snap.Sleep
		next.Water = snap.Water
		next.Exercise = snap.Exercise
		next.Nutrition = snap.Nutrition
		next.Steps = snap.Steps
		next.Journal = snap.Journal
		if next == card.Daily {
			return false, nil
		}
		card.Daily = next
		return true, nil
	})
}

func (ss *ScoreService) CompleteExplicitHabit(ctx context.Context, uid uuid.UUID, ts time.Time, name string) (*entity.ScoreCard, error) {
	habit, ok := entity.HabitByName(name)
	if !ok {
		return nil, errorvalues.ErrUnknownHabit
	}
	if habit.Kind != entity.KindExplicit {
		return nil, errorvalues.ErrWrongHabitKind
	}
	bucket := ss.buckets.BucketFor(ts)
	return ss.mutateCard(ctx, uid, bucket, func(card *entity.ScoreCard) (bool, error) {
		done, _ := card.Daily.Get(name)
		if done {
			return false, errorvalues.ErrAlreadyCompleted
		}
		card.Daily.Set(name, true)
		return true, nil
	})
}

func (ss *ScoreService) RefreshCoreHabitState(ctx context.Context, uid uuid.UUID, ts time.Time, name string, active bool) (*entity.ScoreCard, error) {
	habit, ok := entity.HabitByName(name)
	if !ok {
		return nil, errorvalues.ErrUnknownHabit
	}
	if habit.Kind != entity.KindStateRefresh {
		return nil, errorvalues.ErrWrongHabitKind
	}
	bucket := ss.buckets.BucketFor(ts)
	return ss.mutateCard(ctx, uid, bucket, func(card *entity.ScoreCard) (bool, error) {
		current, _ := card.Core.Get(name)
		if current == active {
			return false, nil
		}
		card.Core.Set(name, active)
		return true, nil
	})
}

func (ss *ScoreService) RecordOneShotAction(ctx context.Context, uid uuid.UUID, ts time.Time, name string) (*entity.ScoreCard, error) {
	habit, ok := entity.HabitByName(name)
	if !ok {
		return nil, errorvalues.ErrUnknownHabit
	}
	if habit.Kind != entity.KindOneShot {
		return nil, errorvalues.ErrWrongHabitKind
	}
	bucket := ss.buckets.BucketFor(ts)
	return ss.mutateCard(ctx, uid, bucket, func(card *entity.ScoreCard) (bool, error) {
		done, _ := card.Core.Get(name)
		if done {
			return false, errorvalues.ErrAlreadyCompleted
		}
		card.Core.Set(name, true)
		return true, nil
	})
}

func (ss *ScoreService) GetPointsBreakdown(ctx context.Context, uid uuid.UUID, bucket daybucket.Bucket) (entity.Breakdown, error) {
	card, err := ss.cards.GetByUserAndBucket(ctx, uid, bucket)
	if err != nil {
		if errors.Is(err, errorvalues.ErrScoreNotFound) {
			return entity.Breakdown{}, nil
		}
		return entity.Breakdown{}, errors.New("scorecards repository error: " + err.Error())
	}
	return card.Breakdown(), nil
}

func (ss *ScoreService) GetCoreHabitStatus(ctx context.Context, uid uuid.UUID, bucket daybucket.Bucket) (entity.CoreFlags, error) {
	card, err := ss.cards.GetByUserAndBucket(ctx, uid, bucket)
	if err != nil {
		if errors.Is(err, errorvalues.ErrScoreNotFound) {
			return entity.CoreFlags{}, nil
		}
		return entity.CoreFlags{}, errors.New("scorecards repository error: " + err.Error())
	}
	return card.Core, nil
}

func (ss *ScoreService) GetCumulativeTotal(ctx context.Context, uid uuid.UUID) (int, error) {
	total, err := ss.cards.SumTotalPoints(ctx, uid)
	if err != nil {
		return 0, errors.New("scorecards repository error: " + err.Error())
	}
	return total, nil
}

func (ss *ScoreService) GetLevel(ctx context.Context, uid uuid.UUID) (level.Progress, error) {
	total, err := ss.GetCumulativeTotal(ctx, uid)
	if err != nil {
		return level.Progress{}, err
	}
	return level.ForTotal(total), nil
}
