// @title Momentum API
// @description Daily activity aggregation and scoring service
// @BasePath /api/v1
// @schemes http
package main

import (
	"database/sql"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose"

	"github.com/limbo/momentum/internal/api"
	"github.com/limbo/momentum/internal/repository"
	"github.com/limbo/momentum/internal/service"
	"github.com/limbo/momentum/pkg/cleanup"
	"github.com/limbo/momentum/pkg/config"
	"github.com/limbo/momentum/pkg/daybucket"
	"github.com/limbo/momentum/pkg/jwtservice"
)

func init() {
	service.InitValidator()
}

func runMigrations(cfg repository.DBConfig) error {
	db, err := sql.Open("pgx", cfg.ConnString())
	if err != nil {
		return err
	}
	defer db.Close()
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, "migrations")
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	if err := runMigrations(&dbCfg); err != nil {
		log.Fatal("running migrations error: " + err.Error())
	}
	buckets := daybucket.NewResolver(cfg.GetStringDefault("BUCKET_ZONE", daybucket.DefaultZone))
	if buckets.Degraded() {
		log.Println("bucket resolver degraded: reference zone unavailable, using local dates")
	}
	scoreService := service.NewScoreService(repository.NewScoreCardsRepo(&dbCfg), buckets)
	contentService := service.NewContentService(repository.NewDayEntriesRepo(&dbCfg), buckets)
	serv := api.New(&api.ServicesList{
		ContentService: contentService,
		ScoreService:   scoreService,
		JwtService:     jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	cleanup.CleanUp()
}
