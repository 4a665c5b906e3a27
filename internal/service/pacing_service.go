package service

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"github.com/TereBts/studystar/internal/repository"
	"github.com/TereBts/studystar/pkg/entity"
)

// Pacing math convention: a nil result means the computation is inapplicable
// (required goal fields are unset); math.Inf(1) means the deadline is today
// or past with work still remaining. Infinity propagates through the derived
// figures and is never clamped.

// PacingService computes required rates from a goal's milestone fields and
// projects a completion date from its historical pace.
type PacingService struct {
	sessions repository.SessionsRepositoryI
}

func NewPacingService(sessionsRepo repository.SessionsRepositoryI) *PacingService {
	if sessionsRepo == nil {
		log.Fatal("on pacing service provided nil repos")
	}
	return &PacingService{
		sessions: sessionsRepo,
	}
}

// WeeksUntilMilestone returns the weeks left until the milestone deadline,
// floored at zero, or nil when the goal has no milestone date.
func WeeksUntilMilestone(goal *entity.Goal, today time.Time) *float64 {
	if goal.MilestoneDate == nil {
		return nil
	}
	days := dateOf(*goal.MilestoneDate).Sub(dateOf(today)).Hours() / 24
	weeks := days / 7
	if weeks < 0 {
		weeks = 0
	}
	return &weeks
}

// LessonsPerWeekToHitMilestone returns the weekly lesson rate needed to
// finish the remaining lessons by the milestone date. With the deadline
// today or past it returns +Inf when lessons remain and 0 otherwise.
func LessonsPerWeekToHitMilestone(goal *entity.Goal, lessonsCompleted int, today time.Time) *float64 {
	if goal.TotalRequiredLessons == nil {
		return nil
	}
	weeks := WeeksUntilMilestone(goal, today)
	if weeks == nil {
		return nil
	}
	remaining := float64(*goal.TotalRequiredLessons - lessonsCompleted)
	if remaining < 0 {
		remaining = 0
	}
	if *weeks == 0 {
		v := 0.0
		if remaining > 0 {
			v = math.Inf(1)
		}
		return &v
	}
	v := remaining / *weeks
	return &v
}

// HoursPerWeekToHitMilestone derives the weekly hours rate from the lessons
// rate; nil when AvgHoursPerLesson is unset, infinity passed through.
func HoursPerWeekToHitMilestone(goal *entity.Goal, lessonsCompleted int, today time.Time) *float64 {
	if goal.AvgHoursPerLesson == nil {
		return nil
	}
	lessonsPerWeek := LessonsPerWeekToHitMilestone(goal, lessonsCompleted, today)
	if lessonsPerWeek == nil {
		return nil
	}
	// a zero avg times an infinite lesson rate would produce NaN; overdue
	// stays overdue
	if math.IsInf(*lessonsPerWeek, 1) {
		v := math.Inf(1)
		return &v
	}
	v := *goal.AvgHoursPerLesson * *lessonsPerWeek
	return &v
}

// DailyRequirements divides the weekly figures across the goal's planned
// study days, preserving nil and infinity.
func DailyRequirements(goal *entity.Goal, lessonsCompleted int, today time.Time) (lessonsPerDay, hoursPerDay *float64) {
	if goal.StudyDaysPerWeek < 1 {
		return nil, nil
	}
	days := float64(goal.StudyDaysPerWeek)
	if lpw := LessonsPerWeekToHitMilestone(goal, lessonsCompleted, today); lpw != nil {
		v := *lpw / days
		lessonsPerDay = &v
	}
	if hpw := HoursPerWeekToHitMilestone(goal, lessonsCompleted, today); hpw != nil {
		v := *hpw / days
		hoursPerDay = &v
	}
	return lessonsPerDay, hoursPerDay
}

// ProjectedCompletionDate estimates when the goal's total required hours
// will be reached at the historical pace. The total is derived only from
// AvgHoursPerLesson x TotalRequiredLessons; weekly targets are deliberately
// not used as a fallback, to avoid inaccurate estimates. Returns nil when
// the goal has no lifetime progress, no sessions, or a non-positive pace.
func (ps *PacingService) ProjectedCompletionDate(ctx context.Context, goal *entity.Goal, now time.Time) (*time.Time, error) {
	if goal.AvgHoursPerLesson == nil || goal.TotalRequiredLessons == nil {
		return nil, nil
	}
	minutes, _, firstStart, err := ps.sessions.GoalLifetime(ctx, goal.ID)
	if err != nil {
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	if minutes <= 0 || firstStart == nil {
		return nil, nil
	}
	requiredHours := *goal.AvgHoursPerLesson * float64(*goal.TotalRequiredLessons)
	doneHours := float64(minutes) / 60

	daysElapsed := now.Sub(*firstStart).Hours() / 24
	if daysElapsed < 1 {
		daysElapsed = 1
	}
	weeksElapsed := daysElapsed / 7
	pace := doneHours / weeksElapsed
	if pace <= 0 {
		return nil, nil
	}
	remaining := requiredHours - doneHours
	if remaining < 0 {
		remaining = 0
	}
	weeksRemaining := remaining / pace
	completion := dateOf(now.Add(time.Duration(weeksRemaining * 7 * 24 * float64(time.Hour))))
	return &completion, nil
}

func (ps *PacingService) Report(ctx context.Context, goal *entity.Goal, lessonsCompleted int, now time.Time) (*entity.PacingReport, error) {
	report := &entity.PacingReport{
		WeeksUntilMilestone: WeeksUntilMilestone(goal, now),
		LessonsPerWeek:      LessonsPerWeekToHitMilestone(goal, lessonsCompleted, now),
		HoursPerWeek:        HoursPerWeekToHitMilestone(goal, lessonsCompleted, now),
	}
	report.LessonsPerDay, report.HoursPerDay = DailyRequirements(goal, lessonsCompleted, now)
	projected, err := ps.ProjectedCompletionDate(ctx, goal, now)
	if err != nil {
		return nil, err
	}
	report.ProjectedCompletion = projected
	return report, nil
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
