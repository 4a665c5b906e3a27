package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/TereBts/studystar/internal/error_values"
	"github.com/TereBts/studystar/internal/repository"
	"github.com/TereBts/studystar/pkg/entity"
)

// RuleOutcome distinguishes "evaluated false" from "rule kind not
// recognised"; both mean no award, but only the latter signals a catalog
// data problem.
type RuleOutcome int

const (
	RuleNotEligible RuleOutcome = iota
	RuleEligible
	RuleUnknownKind
)

// AchievementsService evaluates the catalog against a fresh stats snapshot
// and grants newly satisfied achievements. Idempotent: already-awarded
// codes are skipped and uniqueness conflicts from concurrent evaluations
// are absorbed.
type AchievementsService struct {
	stats        StatsServiceI
	achievements repository.AchievementsRepositoryI
}

func NewAchievementsService(statsService StatsServiceI, achievementsRepo repository.AchievementsRepositoryI) *AchievementsService {
	if statsService == nil || achievementsRepo == nil {
		log.Fatal("on achievements service provided nil dependencies")
	}
	return &AchievementsService{
		stats:        statsService,
		achievements: achievementsRepo,
	}
}

func (as *AchievementsService) Evaluate(ctx context.Context, uid uuid.UUID, now time.Time) ([]entity.UserAchievement, error) {
	stats, err := as.stats.UserStats(ctx, uid, now)
	if err != nil {
		return nil, errors.New("stats service error: " + err.Error())
	}
	definitions, err := as.achievements.ListDefinitions(ctx)
	if err != nil {
		return nil, errors.New("achievements repository error: " + err.Error())
	}
	awarded, err := as.achievements.ListAwardedCodes(ctx, uid)
	if err != nil {
		return nil, errors.New("achievements repository error: " + err.Error())
	}

	newAwards := make([]entity.UserAchievement, 0)
	for _, def := range definitions {
		if _, have := awarded[def.Code]; have {
			continue
		}
		if EvaluateRule(def.Rule, stats) != RuleEligible {
			continue
		}
		award, err := as.achievements.CreateAward(ctx, uid, def.ID)
		if err != nil {
			// Lost a race with a concurrent evaluation; the unlock exists
			if errors.Is(err, errorvalues.ErrAlreadyAwarded) {
				continue
			}
			return nil, errors.New("achievements repository error: " + err.Error())
		}
		award.Code = def.Code
		award.Title = def.Title
		newAwards = append(newAwards, *award)
		slog.Info("achievement unlocked",
			slog.String("uid", uid.String()),
			slog.String("code", def.Code))
	}
	return newAwards, nil
}

// EvaluateRule decides eligibility for one catalog rule against a snapshot.
// Unknown kinds are never eligible.
func EvaluateRule(rule entity.AchievementRule, stats *entity.StatsSnapshot) RuleOutcome {
	switch rule.Kind {
	case entity.RuleTotalHours:
		if float64(stats.TotalMinutes) >= rule.ThresholdHours*60 {
			return RuleEligible
		}
		return RuleNotEligible
	case entity.RuleGoalsCompleted:
		if stats.CompletedGoalCount >= rule.GoalsRequired {
			return RuleEligible
		}
		return RuleNotEligible
	case entity.RuleWeeklyStreak:
		if stats.WeeklyStreakWeeks >= rule.WeeksRequired {
			return RuleEligible
		}
		return RuleNotEligible
	default:
		return RuleUnknownKind
	}
}
