package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TereBts/studystar/internal/service"
	"github.com/TereBts/studystar/pkg/entity"
)

func catalogDefs() []entity.Achievement {
	return []entity.Achievement{
		{ID: 1, Code: "first_steps", Title: "First Steps", Rule: entity.AchievementRule{Kind: entity.RuleTotalHours, ThresholdHours: 5}},
		{ID: 2, Code: "century_club", Title: "Century Club", Rule: entity.AchievementRule{Kind: entity.RuleTotalHours, ThresholdHours: 100}},
		{ID: 3, Code: "goal_getter", Title: "Goal Getter", Rule: entity.AchievementRule{Kind: entity.RuleGoalsCompleted, GoalsRequired: 1}},
		{ID: 4, Code: "on_a_roll", Title: "On a Roll", Rule: entity.AchievementRule{Kind: entity.RuleWeeklyStreak, WeeksRequired: 4}},
		{ID: 5, Code: "mystery", Title: "Mystery", Rule: entity.AchievementRule{Kind: entity.RuleUnknown}},
	}
}

func TestEvaluateRule(t *testing.T) {
	stats := &entity.StatsSnapshot{
		TotalMinutes:       300, // exactly 5 hours
		CompletedGoalCount: 1,
		WeeklyStreakWeeks:  3,
	}
	testCases := []struct {
		name     string
		rule     entity.AchievementRule
		expected service.RuleOutcome
	}{
		{
			name:     "total hours met exactly at threshold",
			rule:     entity.AchievementRule{Kind: entity.RuleTotalHours, ThresholdHours: 5},
			expected: service.RuleEligible,
		},
		{
			name:     "total hours below threshold",
			rule:     entity.AchievementRule{Kind: entity.RuleTotalHours, ThresholdHours: 100},
			expected: service.RuleNotEligible,
		},
		{
			name:     "goals completed met",
			rule:     entity.AchievementRule{Kind: entity.RuleGoalsCompleted, GoalsRequired: 1},
			expected: service.RuleEligible,
		},
		{
			name:     "streak short of requirement",
			rule:     entity.AchievementRule{Kind: entity.RuleWeeklyStreak, WeeksRequired: 4},
			expected: service.RuleNotEligible,
		},
		{
			name:     "streak met",
			rule:     entity.AchievementRule{Kind: entity.RuleWeeklyStreak, WeeksRequired: 3},
			expected: service.RuleEligible,
		},
		{
			name:     "unknown kind is never eligible",
			rule:     entity.AchievementRule{Kind: entity.RuleUnknown},
			expected: service.RuleUnknownKind,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, service.EvaluateRule(tc.rule, stats))
		})
	}
}

func TestEvaluate(t *testing.T) {
	ctx := context.Background()
	now := day(2026, time.August, 26)
	t.Run("grants everything newly satisfied", func(t *testing.T) {
		repo := newFakeAchievementsRepo(catalogDefs())
		stats := service.NewStatsService(
			&fakeSessionsRepo{totalMin: 360, starts: []time.Time{now}},
			&fakeOutcomesRepo{completedCount: 1},
			repo,
		)
		as := service.NewAchievementsService(stats, repo)
		awards, err := as.Evaluate(ctx, uid, now)
		require.NoError(t, err)
		require.Len(t, awards, 2)
		assert.Equal(t, "first_steps", awards[0].Code)
		assert.Equal(t, "First Steps", awards[0].Title)
		assert.Equal(t, "goal_getter", awards[1].Code)
	})
	t.Run("second run grants nothing new", func(t *testing.T) {
		repo := newFakeAchievementsRepo(catalogDefs())
		stats := service.NewStatsService(
			&fakeSessionsRepo{totalMin: 360, starts: []time.Time{now}},
			&fakeOutcomesRepo{completedCount: 1},
			repo,
		)
		as := service.NewAchievementsService(stats, repo)
		_, err := as.Evaluate(ctx, uid, now)
		require.NoError(t, err)
		awards, err := as.Evaluate(ctx, uid, now)
		require.NoError(t, err)
		assert.Empty(t, awards)
	})
	t.Run("unknown kind stays locked even with huge stats", func(t *testing.T) {
		repo := newFakeAchievementsRepo(catalogDefs())
		stats := service.NewStatsService(
			&fakeSessionsRepo{totalMin: 100000, starts: []time.Time{now}},
			&fakeOutcomesRepo{completedCount: 100},
			repo,
		)
		as := service.NewAchievementsService(stats, repo)
		awards, err := as.Evaluate(ctx, uid, now)
		require.NoError(t, err)
		for _, a := range awards {
			assert.NotEqual(t, "mystery", a.Code)
		}
	})
	t.Run("nothing satisfied", func(t *testing.T) {
		repo := newFakeAchievementsRepo(catalogDefs())
		stats := service.NewStatsService(&fakeSessionsRepo{totalMin: 10}, &fakeOutcomesRepo{}, repo)
		as := service.NewAchievementsService(stats, repo)
		awards, err := as.Evaluate(ctx, uid, now)
		require.NoError(t, err)
		assert.Empty(t, awards)
	})
}
