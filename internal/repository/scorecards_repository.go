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

type ScoreCardsRepository struct {
	conn PgConnection
}

func NewScoreCardsRepo(cfg DBConfig) *ScoreCardsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for scoreCardsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for scoreCardsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing scorecards pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ScoreCardsRepository{
		conn: pool,
	}
}

func NewScoreCardsRepoWithConn(conn PgConnection) *ScoreCardsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for scoreCardsRepo: " + err.Error())
	}
	return &ScoreCardsRepository{
		conn: conn,
	}
}

func (scr *ScoreCardsRepository) Create(ctx context.Context, card *entity.ScoreCard) error {
	_, err := scr.conn.Exec(ctx, `INSERT INTO scorecards
		(user_id, bucket, sleep_done, water_done, exercise_done, nutrition_done, steps_done, journal_done,
		meditation_done, microlearn_done, reaction_done, comment_done, share_done, goal_update_done,
		daily_points, core_points, bonus_points, total_points, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, 1);`,
		card.UserID,
		card.Bucket.String(),
		card.Daily.Sleep,
		card.Daily.Water,
		card.Daily.Exercise,
		card.Daily.Nutrition,
		card.Daily.Steps,
		card.Daily.Journal,
		card.Daily.Meditation,
		card.Daily.Microlearn,
		card.Core.Reaction,
		card.Core.Comment,
		card.Core.Share,
		card.Core.GoalUpdate,
		card.DailyPoints,
		card.CorePoints,
		card.BonusPoints,
		card.TotalPoints,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation: another writer created this scorecard first
			case "23505":
				return errorvalues.ErrVersionConflict
			}
		}
		return errors.New("creating scorecard error: " + err.Error())
	}
	return nil
}

func (scr *ScoreCardsRepository) GetByUserAndBucket(ctx context.Context, uid uuid.UUID, bucket daybucket.Bucket) (*entity.ScoreCard, error) {
	var card entity.ScoreCard
	card.UserID = uid
	card.Bucket = bucket
	row := scr.conn.QueryRow(ctx, `SELECT sleep_done, water_done, exercise_done, nutrition_done, steps_done, journal_done,
		meditation_done, microlearn_done, reaction_done, comment_done, share_done, goal_update_done,
		daily_points, core_points, bonus_points, total_points, version, created_at, updated_at
		FROM scorecards WHERE user_id = $1 AND bucket = $2;`, uid, bucket.String())
	err := row.Scan(&card.Daily.Sleep, &card.Daily.Water, &card.Daily.Exercise, &card.Daily.Nutrition,
		&card.Daily.Steps, &card.Daily.Journal, &card.Daily.Meditation, &card.Daily.Microlearn,
		&card.Core.Reaction, &card.Core.Comment, &card.Core.Share, &card.Core.GoalUpdate,
		&card.DailyPoints, &card.CorePoints, &card.BonusPoints, &card.TotalPoints,
		&card.Version, &card.CreatedAt, &card.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrScoreNotFound
		}
		return nil, errors.New("getting scorecard error: " + err.Error())
	}
	return &card, nil
}

func (scr *ScoreCardsRepository) UpdateVersioned(ctx context.Context, card *entity.ScoreCard, expected int64) error {
	ct, err := scr.conn.Exec(ctx, `UPDATE scorecards
		SET sleep_done = $1, water_done = $2, exercise_done = $3, nutrition_done = $4, steps_done = $5, journal_done = $6,
			meditation_done = $7, microlearn_done = $8, reaction_done = $9, comment_done = $10, share_done = $11, goal_update_done = $12,
			daily_points = $13, core_points = $14, bonus_points = $15, total_points = $16,
			version = version + 1, updated_at = NOW()
		WHERE user_id = $17 AND bucket = $18 AND version = $19;`,
		card.Daily.Sleep,
		card.Daily.Water,
		card.Daily.Exercise,
		card.Daily.Nutrition,
		card.Daily.Steps,
		card.Daily.Journal,
		card.Daily.Meditation,
		card.Daily.Microlearn,
		card.Core.Reaction,
		card.Core.Comment,
		card.Core.Share,
		card.Core.GoalUpdate,
		card.DailyPoints,
		card.CorePoints,
		card.BonusPoints,
		card.TotalPoints,
		card.UserID,
		card.Bucket.String(),
		expected,
	)
	if err != nil {
		return errors.New("updating scorecard error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrVersionConflict
	}
	return nil
}

func (scr *ScoreCardsRepository) SumTotalPoints(ctx context.Context, uid uuid.UUID) (int, error) {
	var total int
	row := scr.conn.QueryRow(ctx, `SELECT COALESCE(SUM(total_points), 0) FROM scorecards WHERE user_id = $1;`, uid)
	if err := row.Scan(&total); err != nil {
		return 0, errors.New("summing total points error: " + err.Error())
	}
	return total, nil
}

func (scr *ScoreCardsRepository) BumpCachedTotal(ctx context.Context, uid uuid.UUID, delta int) error {
	_, err := scr.conn.Exec(ctx, `INSERT INTO user_totals (user_id, total_points) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET total_points = user_totals.total_points + EXCLUDED.total_points, updated_at = NOW();`,
		uid, delta)
	if err != nil {
		return errors.New("bumping cached total error: " + err.Error())
	}
	return nil
}
