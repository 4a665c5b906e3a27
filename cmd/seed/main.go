// Command seed fills goal_outcomes with plausible historical weeks so the
// streak and achievement logic has something to chew on in a fresh
// environment. Seeded rows carry notes='seeded' so they can be wiped.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/TereBts/studystar/internal/repository"
	"github.com/TereBts/studystar/pkg/config"
	"github.com/TereBts/studystar/pkg/entity"
	"github.com/TereBts/studystar/pkg/weekwindow"
)

const seededNote = "seeded"

func main() {
	weeks := flag.Int("weeks", 12, "how many past weeks to seed")
	clean := flag.Bool("clean", false, "delete previously seeded outcomes and exit")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	goalsRepo := repository.NewGoalsRepo(&dbCfg)
	outcomesRepo := repository.NewOutcomesRepo(&dbCfg)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute*5)
	defer cancel()

	if *clean {
		deleted, err := outcomesRepo.DeleteSeeded(ctx)
		if err != nil {
			log.Fatal("cleaning seeded outcomes failed: " + err.Error())
		}
		logger.Info("seeded outcomes removed", slog.Int64("deleted", deleted))
		return
	}
	if *weeks < 1 {
		log.Fatal("weeks must be at least 1")
	}

	goals, err := goalsRepo.ListActive(ctx)
	if err != nil {
		log.Fatal("listing goals failed: " + err.Error())
	}
	if len(goals) == 0 {
		logger.Info("no active goals, nothing to seed")
		return
	}

	outcomes := make([]entity.GoalOutcome, 0, len(goals)*(*weeks))
	for _, goal := range goals {
		for i := *weeks; i >= 1; i-- {
			weekStart, weekEnd, err := weekwindow.Containing(time.Now().AddDate(0, 0, -7*i))
			if err != nil {
				log.Fatal("computing week window failed: " + err.Error())
			}
			outcomes = append(outcomes, fakeOutcome(goal, weekStart, weekEnd))
		}
	}

	created, updated, err := outcomesRepo.UpsertBatch(ctx, outcomes)
	if err != nil {
		log.Fatal("seeding outcomes failed: " + err.Error())
	}
	logger.Info("seeding finished",
		slog.Int("goals", len(goals)),
		slog.Int("weeks", *weeks),
		slog.Int("created", created),
		slog.Int("updated", updated))
}

// fakeOutcome invents a week that lands somewhere around the goal's targets:
// most weeks hit them, some fall short, so streaks have realistic gaps.
func fakeOutcome(goal *entity.Goal, weekStart, weekEnd time.Time) entity.GoalOutcome {
	hoursTarget := 5.0
	if goal.WeeklyHoursTarget != nil {
		hoursTarget = *goal.WeeklyHoursTarget
	}
	lessonsTarget := 3
	if goal.WeeklyLessonsTarget != nil {
		lessonsTarget = *goal.WeeklyLessonsTarget
	}

	factor := 0.5 + rand.Float64() // 0.5x to 1.5x of target
	hours := math.Floor(hoursTarget*factor*10+0.5) / 10
	lessons := int(math.Floor(float64(lessonsTarget)*factor + 0.5))

	completed := false
	if goal.WeeklyHoursTarget != nil && hours >= *goal.WeeklyHoursTarget {
		completed = true
	}
	if goal.WeeklyLessonsTarget != nil && lessons >= *goal.WeeklyLessonsTarget {
		completed = true
	}

	return entity.GoalOutcome{
		GoalID:           goal.ID,
		WeekStart:        weekStart,
		WeekEnd:          weekEnd,
		HoursCompleted:   hours,
		LessonsCompleted: lessons,
		HoursTarget:      goal.WeeklyHoursTarget,
		LessonsTarget:    goal.WeeklyLessonsTarget,
		Completed:        completed,
		Notes:            seededNote,
	}
}
