package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/TereBts/studystar/internal/error_values"
	"github.com/TereBts/studystar/internal/service"
	"github.com/TereBts/studystar/pkg/entity"
)

func newGoalsServiceUnderTest(goals *fakeGoalsRepo, sessions *fakeSessionsRepo, outcomes *fakeOutcomesRepo, achievements *fakeAchievementsRepo) *service.GoalsService {
	statsService := service.NewStatsService(sessions, outcomes, achievements)
	freezeService := service.NewFreezeService(goals, sessions, outcomes, time.UTC)
	achievementsService := service.NewAchievementsService(statsService, achievements)
	pacingService := service.NewPacingService(sessions)
	return service.NewGoalsService(goals, sessions, outcomes, freezeService, achievementsService, pacingService)
}

func TestListGoals(t *testing.T) {
	ctx := context.Background()
	mine := &entity.Goal{ID: uuid.New(), UserID: uid, WeeklyHoursTarget: floatPtr(5), StudyDaysPerWeek: 5, IsActive: true}
	theirs := &entity.Goal{ID: uuid.New(), UserID: uuid.New(), WeeklyHoursTarget: floatPtr(3), StudyDaysPerWeek: 3, IsActive: true}
	gs := newGoalsServiceUnderTest(
		&fakeGoalsRepo{goals: []*entity.Goal{mine, theirs}},
		&fakeSessionsRepo{},
		&fakeOutcomesRepo{},
		newFakeAchievementsRepo(nil),
	)
	goals, err := gs.ListGoals(ctx, uid)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, mine.ID, goals[0].ID)
}

func TestGoalProgress(t *testing.T) {
	ctx := context.Background()
	now := day(2026, time.August, 27) // Thursday
	goal := &entity.Goal{
		ID:                   uuid.New(),
		UserID:               uid,
		WeeklyHoursTarget:    floatPtr(5),
		TotalRequiredLessons: intPtr(20),
		AvgHoursPerLesson:    floatPtr(1.5),
		StudyDaysPerWeek:     5,
		MilestoneDate:        datePtr(2026, time.October, 1),
		IsActive:             true,
	}
	t.Run("assembles history, pacing and fresh awards", func(t *testing.T) {
		firstStart := now.AddDate(0, 0, -14)
		sessions := &fakeSessionsRepo{
			totalMin:   900,
			starts:     []time.Time{now},
			lifeMin:    900,
			lifeCount:  5,
			firstStart: &firstStart,
			perGoal: map[uuid.UUID]goalActivity{
				goal.ID: {minutes: 300, sessions: 2},
			},
		}
		weekStart := time.Date(2026, time.August, 17, 0, 0, 0, 0, time.UTC)
		outcomes := &fakeOutcomesRepo{
			created: 1,
			listed: []entity.GoalOutcome{
				{GoalID: goal.ID, WeekStart: weekStart, HoursCompleted: 5.0, Completed: true},
			},
		}
		achievements := newFakeAchievementsRepo(catalogDefs())
		gs := newGoalsServiceUnderTest(&fakeGoalsRepo{goals: []*entity.Goal{goal}}, sessions, outcomes, achievements)

		progress, err := gs.Progress(ctx, goal.ID, uid, now)
		require.NoError(t, err)
		assert.Equal(t, goal.ID, progress.Goal.ID)
		require.Len(t, progress.Outcomes, 1)

		// Previous week was frozen with explicit dates despite it being Thursday
		assert.Equal(t, 1, outcomes.upsertCalls)
		require.Len(t, outcomes.upserted, 1)
		assert.Equal(t, weekStart, outcomes.upserted[0].WeekStart)
		assert.Equal(t, 5.0, outcomes.upserted[0].HoursCompleted)
		assert.True(t, outcomes.upserted[0].Completed)

		// 900 lifetime minutes is 15 hours, enough for the 5 hour threshold
		require.NotEmpty(t, progress.NewAwards)
		assert.Equal(t, "first_steps", progress.NewAwards[0].Code)

		// Pacing fed by the session-count lesson proxy: (20-5)/5 weeks
		require.NotNil(t, progress.Pacing.LessonsPerWeek)
		assert.Equal(t, 3.0, *progress.Pacing.LessonsPerWeek)
	})
	t.Run("unknown goal", func(t *testing.T) {
		gs := newGoalsServiceUnderTest(&fakeGoalsRepo{}, &fakeSessionsRepo{}, &fakeOutcomesRepo{}, newFakeAchievementsRepo(nil))
		_, err := gs.Progress(ctx, uuid.New(), uid, now)
		assert.ErrorIs(t, err, errorvalues.ErrGoalNotFound)
	})
	t.Run("foreign goal", func(t *testing.T) {
		gs := newGoalsServiceUnderTest(&fakeGoalsRepo{goals: []*entity.Goal{goal}}, &fakeSessionsRepo{}, &fakeOutcomesRepo{}, newFakeAchievementsRepo(nil))
		_, err := gs.Progress(ctx, goal.ID, uuid.New(), now)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
}
