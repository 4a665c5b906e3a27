// Command freezer snapshots the previous week's goal outcomes. It is meant
// to run from cron every Monday; outside Monday it exits without writing
// unless an explicit window is given.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/TereBts/studystar/internal/repository"
	"github.com/TereBts/studystar/internal/service"
	"github.com/TereBts/studystar/pkg/config"
)

const dateLayout = "2006-01-02"

func main() {
	dryRun := flag.Bool("dry-run", false, "compute outcomes without writing them")
	weekStartArg := flag.String("week-start", "", "explicit window start (YYYY-MM-DD, a Monday)")
	weekEndArg := flag.String("week-end", "", "explicit window end (YYYY-MM-DD, the following Sunday)")
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
	freezeLoc, err := time.LoadLocation(cfg.GetStringDefault("FREEZE_TIMEZONE", "Europe/London"))
	if err != nil {
		log.Fatal("invalid FREEZE_TIMEZONE: " + err.Error())
	}

	goalsRepo := repository.NewGoalsRepo(&dbCfg)
	sessionsRepo := repository.NewSessionsRepo(&dbCfg)
	outcomesRepo := repository.NewOutcomesRepo(&dbCfg)
	freezeService := service.NewFreezeService(goalsRepo, sessionsRepo, outcomesRepo, freezeLoc)

	opts := service.FreezeOptions{
		DryRun: *dryRun,
		Today:  time.Now(),
	}
	if *weekStartArg != "" || *weekEndArg != "" {
		ws, err1 := time.Parse(dateLayout, *weekStartArg)
		we, err2 := time.Parse(dateLayout, *weekEndArg)
		if err1 != nil || err2 != nil {
			log.Fatal("week-start and week-end must both be YYYY-MM-DD dates")
		}
		opts.WeekStart, opts.WeekEnd = &ws, &we
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute*5)
	defer cancel()
	result, err := freezeService.Freeze(ctx, opts)
	if err != nil {
		log.Fatal("freeze failed: " + err.Error())
	}
	if result.WeekStart == nil {
		logger.Info("nothing to freeze: not a Monday and no explicit window given")
		return
	}
	logger.Info("freeze finished",
		slog.String("week_start", result.WeekStart.Format(dateLayout)),
		slog.String("week_end", result.WeekEnd.Format(dateLayout)),
		slog.Int("created", result.Created),
		slog.Int("updated", result.Updated),
		slog.Bool("dry_run", *dryRun))
}
