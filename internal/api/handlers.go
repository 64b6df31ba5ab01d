package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/internal/service"
	"github.com/limbo/momentum/pkg/daybucket"
	"github.com/limbo/momentum/pkg/entity"
	"github.com/limbo/momentum/pkg/httputil"
)

type SaveDailyHabitsRequest struct {
	Timestamp string               `json:"timestamp,omitempty"`
	Snapshot  entity.ValueSnapshot `json:"snapshot"`
}

type HabitEventRequest struct {
	Timestamp string `json:"timestamp,omitempty"`
}

type RefreshCoreHabitRequest struct {
	Timestamp string `json:"timestamp,omitempty"`
	Active    bool   `json:"active"`
}

type SubmitContentRequest struct {
	Timestamp string   `json:"timestamp,omitempty"`
	Photos    []string `json:"photos"`
	Captions  []string `json:"captions"`
	HabitTags []string `json:"habit_tags"`
}

type GetRecentDaysResponse struct {
	UserID string             `json:"uid"`
	Limit  int                `json:"limit"`
	Days   []*entity.DayEntry `json:"days"`
}

type GetDayResponse struct {
	UserID string           `json:"uid"`
	Bucket string           `json:"bucket"`
	Entry  *entity.DayEntry `json:"entry"`
}

// parseTimestamp reads an optional RFC3339 event timestamp; events without
// one are stamped on arrival.
func parseTimestamp(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}
	return time.Parse(time.RFC3339, raw)
}

// decodeBody tolerates an empty body so event endpoints can be called with
// defaults only.
func decodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (s *Server) SaveDailyHabits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("save daily habits error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SaveDailyHabitsRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("save daily habits error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ts, err := parseTimestamp(req.Timestamp)
	if err != nil {
		logger.Error("save daily habits error: invalid timestamp")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid timestamp", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	card, err := s.scoreService.SaveDailyHabits(ctx, uid, ts, req.Snapshot)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrConflict):
			logger.Error("save daily habits error: conflict retries exhausted")
			httputil.WriteErrorResponse(w, http.StatusConflict, "too many concurrent updates, try again", nil)
		default:
			logger.Error("save daily habits error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while saving daily habits", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, card)
	logger.Info("daily habits saved")
}

func (s *Server) CompleteHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("complete habit error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req HabitEventRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("complete habit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ts, err := parseTimestamp(req.Timestamp)
	if err != nil {
		logger.Error("complete habit error: invalid timestamp")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid timestamp", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	card, err := s.scoreService.CompleteExplicitHabit(ctx, uid, ts, r.PathValue("name"))
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUnknownHabit), errors.Is(err, errorvalues.ErrWrongHabitKind):
			logger.Error("complete habit error: bad habit name")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "unknown or non-completable habit", nil)
		case errors.Is(err, errorvalues.ErrAlreadyCompleted):
			logger.Info("complete habit: already completed today")
			httputil.WriteNoOpResponse(w, "habit already completed today")
		case errors.Is(err, errorvalues.ErrConflict):
			logger.Error("complete habit error: conflict retries exhausted")
			httputil.WriteErrorResponse(w, http.StatusConflict, "too many concurrent updates, try again", nil)
		default:
			logger.Error("complete habit error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while completing habit", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, card)
	logger.Info("habit completed")
}

func (s *Server) RefreshCoreHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("refresh core habit error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req RefreshCoreHabitRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("refresh core habit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ts, err := parseTimestamp(req.Timestamp)
	if err != nil {
		logger.Error("refresh core habit error: invalid timestamp")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid timestamp", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	card, err := s.scoreService.RefreshCoreHabitState(ctx, uid, ts, r.PathValue("name"), req.Active)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUnknownHabit), errors.Is(err, errorvalues.ErrWrongHabitKind):
			logger.Error("refresh core habit error: bad habit name")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "unknown or non-refreshable habit", nil)
		case errors.Is(err, errorvalues.ErrConflict):
			logger.Error("refresh core habit error: conflict retries exhausted")
			httputil.WriteErrorResponse(w, http.StatusConflict, "too many concurrent updates, try again", nil)
		default:
			logger.Error("refresh core habit error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while refreshing habit state", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, card)
	logger.Info("core habit state refreshed")
}

func (s *Server) RecordAction(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("record action error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req HabitEventRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("record action error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ts, err := parseTimestamp(req.Timestamp)
	if err != nil {
		logger.Error("record action error: invalid timestamp")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid timestamp", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	card, err := s.scoreService.RecordOneShotAction(ctx, uid, ts, r.PathValue("name"))
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUnknownHabit), errors.Is(err, errorvalues.ErrWrongHabitKind):
			logger.Error("record action error: bad action name")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "unknown action", nil)
		case errors.Is(err, errorvalues.ErrAlreadyCompleted):
			logger.Info("record action: already done today")
			httputil.WriteNoOpResponse(w, "action already recorded today")
		case errors.Is(err, errorvalues.ErrConflict):
			logger.Error("record action error: conflict retries exhausted")
			httputil.WriteErrorResponse(w, http.StatusConflict, "too many concurrent updates, try again", nil)
		default:
			logger.Error("record action error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while recording action", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, card)
	logger.Info("action recorded")
}

func (s *Server) SubmitContent(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("submit content error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SubmitContentRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("submit content error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ts, err := parseTimestamp(req.Timestamp)
	if err != nil {
		logger.Error("submit content error: invalid timestamp")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid timestamp", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	entry, err := s.contentService.SubmitContent(ctx, uid, ts, &service.SubmitContentRequest{
		Photos:    req.Photos,
		Captions:  req.Captions,
		HabitTags: req.HabitTags,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrBadSubmission):
			logger.Error("submit content error: bad submission", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid submission", err)
		case errors.Is(err, errorvalues.ErrConflict):
			logger.Error("submit content error: conflict retries exhausted")
			httputil.WriteErrorResponse(w, http.StatusConflict, "too many concurrent updates, try again", nil)
		default:
			logger.Error("submit content error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while submitting content", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, entry)
	logger.Info("content submitted")
}

func (s *Server) GetDay(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get day error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	bucket, err := daybucket.Parse(r.PathValue("bucket"))
	if err != nil {
		logger.Error("get day error: invalid bucket in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid day bucket in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	entry, err := s.contentService.GetDay(ctx, uid, bucket)
	if err != nil && !errors.Is(err, errorvalues.ErrEntryNotFound) {
		logger.Error("get day error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting day", nil)
		return
	}
	// Absence is a regular "no data" answer, not a failure
	httputil.WriteJSONResponse(w, http.StatusOK, GetDayResponse{
		UserID: uid.String(),
		Bucket: bucket.String(),
		Entry:  entry,
	})
	logger.Info("day provided")
}

func (s *Server) GetRecentDays(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get recent days error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	days, err := s.contentService.GetRecentDays(ctx, uid, limit)
	if err != nil {
		logger.Error("getting recent days error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting recent days", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetRecentDaysResponse{
		UserID: uid.String(),
		Limit:  limit,
		Days:   days,
	})
	logger.Info("recent days provided")
}

func (s *Server) DeleteDay(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("day deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	bucket, err := daybucket.Parse(r.PathValue("bucket"))
	if err != nil {
		logger.Error("day deletion error: invalid bucket in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid day bucket in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.contentService.DeleteDay(ctx, uid, bucket)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrEntryNotFound):
			logger.Error("day deletion error: unexist day")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "day doesn't exist", nil)
		default:
			logger.Error("day deletion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting day", nil)
		}
		return
	}
	logger.Info("day deleted")
}

func (s *Server) GetPointsBreakdown(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get points breakdown error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	bucket, err := daybucket.Parse(r.PathValue("bucket"))
	if err != nil {
		logger.Error("get points breakdown error: invalid bucket in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid day bucket in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	breakdown, err := s.scoreService.GetPointsBreakdown(ctx, uid, bucket)
	if err != nil {
		logger.Error("get points breakdown error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting points", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, breakdown)
	logger.Info("points breakdown provided")
}

func (s *Server) GetCoreHabitStatus(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get core status error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	bucket, err := daybucket.Parse(r.PathValue("bucket"))
	if err != nil {
		logger.Error("get core status error: invalid bucket in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid day bucket in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	flags, err := s.scoreService.GetCoreHabitStatus(ctx, uid, bucket)
	if err != nil {
		logger.Error("get core status error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting core status", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, flags)
	logger.Info("core habit status provided")
}

func (s *Server) GetCumulativeTotal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get cumulative total error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	total, err := s.scoreService.GetCumulativeTotal(ctx, uid)
	if err != nil {
		logger.Error("get cumulative total error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting total", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   uid.String(),
		"total": total,
	})
	logger.Info("cumulative total provided")
}

func (s *Server) GetLevel(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get level error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	progress, err := s.scoreService.GetLevel(ctx, uid)
	if err != nil {
		logger.Error("get level error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting level", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, progress)
	logger.Info("level provided")
}
