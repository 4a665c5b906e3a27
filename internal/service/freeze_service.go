package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"math"
	"time"

	errorvalues "github.com/TereBts/studystar/internal/error_values"
	"github.com/TereBts/studystar/internal/repository"
	"github.com/TereBts/studystar/pkg/entity"
	"github.com/TereBts/studystar/pkg/weekwindow"
)

// FreezeService turns one week of raw study sessions into immutable
// GoalOutcome snapshots, one per active goal. Targets are copied from the
// goal at freeze time and never retroactively corrected.
type FreezeService struct {
	goals    repository.GoalsRepositoryI
	sessions repository.SessionsRepositoryI
	outcomes repository.OutcomesRepositoryI
	loc      *time.Location
}

func NewFreezeService(goalsRepo repository.GoalsRepositoryI, sessionsRepo repository.SessionsRepositoryI, outcomesRepo repository.OutcomesRepositoryI, loc *time.Location) *FreezeService {
	if goalsRepo == nil || sessionsRepo == nil || outcomesRepo == nil {
		log.Fatal("on freeze service provided nil repos")
	}
	if loc == nil {
		log.Fatal("on freeze service provided nil location")
	}
	return &FreezeService{
		goals:    goalsRepo,
		sessions: sessionsRepo,
		outcomes: outcomesRepo,
		loc:      loc,
	}
}

// Freeze upserts one outcome per active goal for the requested window, all
// in a single transaction. With no explicit window it freezes the previous
// week, and only on Mondays in the configured timezone, which throttles
// automatic runs to once per week; explicit dates always run, for backfill.
// Calling it again for the same window with unchanged data reports
// created=0, updated=N and leaves identical rows.
func (fs *FreezeService) Freeze(ctx context.Context, opts FreezeOptions) (*FreezeResult, error) {
	if (opts.WeekStart == nil) != (opts.WeekEnd == nil) {
		return nil, errorvalues.ErrInvalidWeekRange
	}
	if opts.Today.IsZero() {
		return nil, errorvalues.ErrInvalidDate
	}
	weekStart, weekEnd := opts.WeekStart, opts.WeekEnd
	if weekStart == nil {
		todayLocal := opts.Today.In(fs.loc)
		if todayLocal.Weekday() != time.Monday {
			return &FreezeResult{}, nil
		}
		ws, we, err := weekwindow.Previous(todayLocal)
		if err != nil {
			return nil, err
		}
		weekStart, weekEnd = &ws, &we
	}

	goals, err := fs.goals.ListActive(ctx)
	if err != nil {
		return nil, errors.New("goals repository error: " + err.Error())
	}
	outcomes := make([]entity.GoalOutcome, 0, len(goals))
	for _, goal := range goals {
		minutes, sessions, err := fs.sessions.AggregateByGoalAndDateRange(ctx, goal.ID, *weekStart, *weekEnd)
		if err != nil {
			return nil, errors.New("sessions repository error: " + err.Error())
		}
		hours := roundHoursHalfUp(minutes)

		completed := false
		if goal.WeeklyHoursTarget != nil && hours >= *goal.WeeklyHoursTarget {
			completed = true
		}
		if goal.WeeklyLessonsTarget != nil && sessions >= *goal.WeeklyLessonsTarget {
			completed = true
		}

		outcomes = append(outcomes, entity.GoalOutcome{
			GoalID:         goal.ID,
			WeekStart:      *weekStart,
			WeekEnd:        *weekEnd,
			HoursCompleted: hours,
			// Proxy: one session counts as one lesson
			LessonsCompleted: sessions,
			HoursTarget:      goal.WeeklyHoursTarget,
			LessonsTarget:    goal.WeeklyLessonsTarget,
			Completed:        completed,
		})
	}

	if opts.DryRun {
		for _, o := range outcomes {
			slog.Info("dry run: would freeze outcome",
				slog.String("goal_id", o.GoalID.String()),
				slog.Time("week_start", o.WeekStart),
				slog.Float64("hours_completed", o.HoursCompleted),
				slog.Int("lessons_completed", o.LessonsCompleted),
				slog.Bool("completed", o.Completed))
		}
		return &FreezeResult{WeekStart: weekStart, WeekEnd: weekEnd}, nil
	}

	created, updated, err := fs.outcomes.UpsertBatch(ctx, outcomes)
	if err != nil {
		return nil, errors.New("outcomes repository error: " + err.Error())
	}
	return &FreezeResult{
		Created:   created,
		Updated:   updated,
		WeekStart: weekStart,
		WeekEnd:   weekEnd,
	}, nil
}

// roundHoursHalfUp converts minutes to hours rounded half-up to one decimal
// place, so 50 minutes becomes 0.8 and 120 becomes 2.0.
func roundHoursHalfUp(minutes int) float64 {
	return math.Floor(float64(minutes)/60*10+0.5) / 10
}
