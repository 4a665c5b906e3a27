package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/TereBts/studystar/internal/error_values"
	"github.com/TereBts/studystar/internal/repository"
	"github.com/TereBts/studystar/pkg/entity"
	"github.com/TereBts/studystar/pkg/weekwindow"
)

const outcomeHistoryWeeks = 26

// GoalsService serves the goal list and detail surfaces. Opening a goal's
// progress also freezes the previous week and runs achievement evaluation,
// so the weekly snapshot exists even when no scheduled run has happened yet.
type GoalsService struct {
	goals        repository.GoalsRepositoryI
	sessions     repository.SessionsRepositoryI
	outcomes     repository.OutcomesRepositoryI
	freezer      FreezeServiceI
	achievements AchievementsServiceI
	pacing       PacingServiceI
}

func NewGoalsService(
	goalsRepo repository.GoalsRepositoryI,
	sessionsRepo repository.SessionsRepositoryI,
	outcomesRepo repository.OutcomesRepositoryI,
	freezeService FreezeServiceI,
	achievementsService AchievementsServiceI,
	pacingService PacingServiceI,
) *GoalsService {
	if goalsRepo == nil || sessionsRepo == nil || outcomesRepo == nil {
		log.Fatal("on goals service provided nil repos")
	}
	if freezeService == nil || achievementsService == nil || pacingService == nil {
		log.Fatal("on goals service provided nil services")
	}
	return &GoalsService{
		goals:        goalsRepo,
		sessions:     sessionsRepo,
		outcomes:     outcomesRepo,
		freezer:      freezeService,
		achievements: achievementsService,
		pacing:       pacingService,
	}
}

func (gs *GoalsService) ListGoals(ctx context.Context, uid uuid.UUID) ([]*entity.Goal, error) {
	goals, err := gs.goals.ListActiveByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("goals repository error: " + err.Error())
	}
	return goals, nil
}

func (gs *GoalsService) Progress(ctx context.Context, goalID, uid uuid.UUID, now time.Time) (*GoalProgress, error) {
	goal, err := gs.goals.GetByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	if goal.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}

	// Explicit window so the freeze runs on any weekday, not only Mondays
	weekStart, weekEnd, err := weekwindow.Previous(now)
	if err != nil {
		return nil, err
	}
	_, err = gs.freezer.Freeze(ctx, FreezeOptions{
		WeekStart: &weekStart,
		WeekEnd:   &weekEnd,
		Today:     now,
	})
	if err != nil {
		return nil, errors.New("freeze service error: " + err.Error())
	}

	newAwards, err := gs.achievements.Evaluate(ctx, uid, now)
	if err != nil {
		return nil, errors.New("achievements service error: " + err.Error())
	}

	outcomes, err := gs.outcomes.ListByGoal(ctx, goalID, outcomeHistoryWeeks)
	if err != nil {
		return nil, errors.New("outcomes repository error: " + err.Error())
	}

	// Lesson proxy: lifetime session count stands in for lessons completed
	_, lifetimeSessions, _, err := gs.sessions.GoalLifetime(ctx, goal.ID)
	if err != nil {
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	report, err := gs.pacing.Report(ctx, goal, lifetimeSessions, now)
	if err != nil {
		return nil, errors.New("pacing service error: " + err.Error())
	}

	return &GoalProgress{
		Goal:      goal,
		Outcomes:  outcomes,
		Pacing:    report,
		NewAwards: newAwards,
	}, nil
}
