package main

import (
	"context"
	"errors"
	"time"

	"github.com/stemsi/unigrade-backend/internal/config"
	"github.com/stemsi/unigrade-backend/internal/database"
	"github.com/stemsi/unigrade-backend/internal/logger"
	"github.com/stemsi/unigrade-backend/internal/repository"
)

// Seeds the demo users, courses, allocations and the two pending marks.
// Safe to run repeatedly.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	users, courses, allocations := repository.DemoUsers(), repository.DemoCourses(), repository.DemoAllocations()
	if err := repository.SeedCatalog(ctx, pool, users, courses, allocations); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed reference data")
	}

	marks := repository.NewPostgresMarkStore(pool)
	seeded := 0
	for _, m := range repository.DemoMarks() {
		_, err := marks.Find(ctx, m.StudentID, m.CourseID)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			log.Fatal().Err(err).Str("mark_id", m.ID).Msg("Failed to look up mark")
		}
		if _, err := marks.Upsert(ctx, m); err != nil {
			log.Fatal().Err(err).Str("mark_id", m.ID).Msg("Failed to seed mark")
		}
		seeded++
	}

	log.Info().
		Int("users", len(users)).
		Int("courses", len(courses)).
		Int("allocations", len(allocations)).
		Int("marks", seeded).
		Msg("Demo data seeded")
}
