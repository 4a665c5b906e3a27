package service

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/TereBts/studystar/internal/error_values"
	"github.com/TereBts/studystar/internal/repository"
	"github.com/TereBts/studystar/pkg/entity"
	"github.com/TereBts/studystar/pkg/weekwindow"
)

const recentAwardsLimit = 2

// StatsService aggregates a user's activity history into a StatsSnapshot.
// Read-only; safe to call repeatedly and concurrently.
type StatsService struct {
	sessions     repository.SessionsRepositoryI
	outcomes     repository.OutcomesRepositoryI
	achievements repository.AchievementsRepositoryI
}

func NewStatsService(sessionsRepo repository.SessionsRepositoryI, outcomesRepo repository.OutcomesRepositoryI, achievementsRepo repository.AchievementsRepositoryI) *StatsService {
	if sessionsRepo == nil || outcomesRepo == nil || achievementsRepo == nil {
		log.Fatal("on stats service provided nil repos")
	}
	return &StatsService{
		sessions:     sessionsRepo,
		outcomes:     outcomesRepo,
		achievements: achievementsRepo,
	}
}

func (ss *StatsService) UserStats(ctx context.Context, uid uuid.UUID, today time.Time) (*entity.StatsSnapshot, error) {
	if today.IsZero() {
		return nil, errorvalues.ErrInvalidDate
	}
	minutes, err := ss.sessions.SumMinutesByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	completed, err := ss.outcomes.CountCompletedByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("outcomes repository error: " + err.Error())
	}
	starts, err := ss.sessions.ListStartTimesByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	return &entity.StatsSnapshot{
		TotalMinutes:       minutes,
		CompletedGoalCount: completed,
		WeeklyStreakWeeks:  weeklyStreak(starts, today),
	}, nil
}

func (ss *StatsService) Dashboard(ctx context.Context, uid uuid.UUID, today time.Time) (*DashboardStats, error) {
	snapshot, err := ss.UserStats(ctx, uid, today)
	if err != nil {
		return nil, err
	}
	weekStart, weekEnd, err := weekwindow.Containing(today)
	if err != nil {
		return nil, err
	}
	weekMinutes, err := ss.sessions.SumMinutesByUserAndDateRange(ctx, uid, weekStart, weekEnd)
	if err != nil {
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	awards, err := ss.achievements.ListAwardsByUser(ctx, uid, recentAwardsLimit)
	if err != nil {
		return nil, errors.New("achievements repository error: " + err.Error())
	}
	return &DashboardStats{
		Snapshot:      snapshot,
		WeekStart:     weekStart,
		WeekEnd:       weekEnd,
		HoursThisWeek: math.Round(float64(weekMinutes)/60*100) / 100,
		RecentAwards:  awards,
	}, nil
}

type isoWeek struct {
	year int
	week int
}

// weeklyStreak counts consecutive ISO weeks with at least one session,
// walking backward from the week containing today. The walk rolls over year
// boundaries with the ISO convention: the last week of a year is the week
// containing December 28.
func weeklyStreak(starts []time.Time, today time.Time) int {
	if len(starts) == 0 {
		return 0
	}
	active := make(map[isoWeek]struct{}, len(starts))
	for _, s := range starts {
		y, w := s.ISOWeek()
		active[isoWeek{year: y, week: w}] = struct{}{}
	}
	year, week := today.ISOWeek()
	streak := 0
	for {
		if _, ok := active[isoWeek{year: year, week: week}]; !ok {
			break
		}
		streak++
		week--
		if week == 0 {
			year--
			week = lastISOWeekOfYear(year)
		}
	}
	return streak
}

func lastISOWeekOfYear(year int) int {
	_, week := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return week
}
