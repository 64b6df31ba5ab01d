package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/internal/repository"
	"github.com/limbo/momentum/pkg/daybucket"
	"github.com/limbo/momentum/pkg/entity"
)

type ContentService struct {
	entries repository.DayEntriesRepositoryI
	buckets *daybucket.Resolver
}

func NewContentService(entriesRepo repository.DayEntriesRepositoryI, buckets *daybucket.Resolver) *ContentService {
	if entriesRepo == nil || buckets == nil {
		log.Fatal("on content service provided nil dependencies")
	}
	return &ContentService{
		entries: entriesRepo,
		buckets: buckets,
	}
}

// pairCaptions aligns a submission batch so caption[i] describes photo[i]:
// equal lengths pass through, a single caption covers every photo in the
// batch, no captions become empty slots. Anything else is a bad submission.
func pairCaptions(photos, captions []string) ([]string, error) {
	switch {
	case len(captions) == len(photos):
		return append([]string(nil), captions...), nil
	case len(captions) == 1:
		paired := make([]string, len(photos))
		for i := range paired {
			paired[i] = captions[0]
		}
		return paired, nil
	case len(captions) == 0:
		return make([]string, len(photos)), nil
	}
	return nil, errorvalues.ErrBadSubmission
}

// mergeTags unions new tags into the existing set, keeping first-seen order.
func mergeTags(existing, incoming []string) []string {
	merged := append([]string(nil), existing...)
	for _, tag := range incoming {
		seen := false
		for _, have := range merged {
			if have == tag {
				seen = true
				break
			}
		}
		if !seen {
			merged = append(merged, tag)
		}
	}
	return merged
}

// mergeSubmission prepends the batch ahead of what the day already holds and
// recomputes the denormalized totals from the true lengths.
func mergeSubmission(entry *entity.DayEntry, photos, captions, tags []string) {
	entry.Photos = append(append([]string(nil), photos...), entry.Photos...)
	entry.Captions = append(append([]string(nil), captions...), entry.Captions...)
	entry.HabitTags = mergeTags(entry.HabitTags, tags)
	entry.SubmissionCount++
	entry.TotalPhotos = len(entry.Photos)
	entry.TotalHabits = len(entry.HabitTags)
}

func (cs *ContentService) SubmitContent(ctx context.Context, uid uuid.UUID, ts time.Time, req *SubmitContentRequest) (*entity.DayEntry, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errorvalues.ErrBadSubmission
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return nil, err
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	captions, err := pairCaptions(req.Photos, req.Captions)
	if err != nil {
		return nil, err
	}
	bucket := cs.buckets.BucketFor(ts)
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		entry, err := cs.entries.GetByUserAndBucket(ctx, uid, bucket)
		if err != nil {
			if !errors.Is(err, errorvalues.ErrEntryNotFound) {
				return nil, errors.New("day entries repository error: " + err.Error())
			}
			entry = &entity.DayEntry{UserID: uid, Bucket: bucket}
			mergeSubmission(entry, req.Photos, captions, req.HabitTags)
			err = cs.entries.Create(ctx, entry)
			if errors.Is(err, errorvalues.ErrVersionConflict) {
				continue
			}
			if err != nil {
				return nil, errors.New("day entries repository error: " + err.Error())
			}
			return entry, nil
		}
		mergeSubmission(entry, req.Photos, captions, req.HabitTags)
		err = cs.entries.UpdateVersioned(ctx, entry, entry.Version)
		if errors.Is(err, errorvalues.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return nil, errors.New("day entries repository error: " + err.Error())
		}
		return entry, nil
	}
	return nil, errorvalues.ErrConflict
}

func (cs *ContentService) DeleteDay(ctx context.Context, uid uuid.UUID, bucket daybucket.Bucket) error {
	err := cs.entries.Delete(ctx, uid, bucket)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEntryNotFound) {
			return err
		}
		return errors.New("day entries repository error: " + err.Error())
	}
	return nil
}

func (cs *ContentService) GetDay(ctx context.Context, uid uuid.UUID, bucket daybucket.Bucket) (*entity.DayEntry, error) {
	entry, err := cs.entries.GetByUserAndBucket(ctx, uid, bucket)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEntryNotFound) {
			return nil, err
		}
		return nil, errors.New("day entries repository error: " + err.Error())
	}
	return entry, nil
}

func (cs *ContentService) GetRecentDays(ctx context.Context, uid uuid.UUID, limit int) ([]*entity.DayEntry, error) {
	entries, err := cs.entries.GetRecent(ctx, uid, limit)
	if err != nil {
		return nil, errors.New("day entries repository error: " + err.Error())
	}
	return entries, nil
}
