package repository

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/TereBts/studystar/internal/error_values"
	"github.com/TereBts/studystar/pkg/cleanup"
	"github.com/TereBts/studystar/pkg/entity"
)

type AchievementsRepository struct {
	conn PgConnection
}

func NewAchievementsRepo(cfg DBConfig) *AchievementsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for achievementsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for achievementsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &AchievementsRepository{
		conn: pool,
	}
}

func NewAchievementsRepoWithConn(conn PgConnection) *AchievementsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for achievementsRepo: " + err.Error())
	}
	return &AchievementsRepository{
		conn: conn,
	}
}

// rawRuleParams is the stored rule_params JSON shape. The catalog keeps a
// single object with optional keys; which key matters depends on rule_type.
type rawRuleParams struct {
	Threshold *float64 `json:"threshold"`
	Weeks     *int     `json:"weeks"`
}

func (ar *AchievementsRepository) ListDefinitions(ctx context.Context) ([]entity.Achievement, error) {
	rows, err := ar.conn.Query(
		ctx,
		`SELECT id, code, title, description, icon, rule_type, rule_params FROM achievements ORDER BY id;`,
	)
	if err != nil {
		return nil, errors.New("listing achievement definitions error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.Achievement, 0)
	for rows.Next() {
		var (
			a         entity.Achievement
			ruleType  string
			rawParams []byte
		)
		err = rows.Scan(&a.ID, &a.Code, &a.Title, &a.Description, &a.Icon, &ruleType, &rawParams)
		if err != nil {
			return nil, errors.New("achievement row parsing error: " + err.Error())
		}
		a.Rule = parseRule(a.Code, ruleType, rawParams)
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected achievement rows error: " + err.Error())
	}
	return result, nil
}

// parseRule validates rule_type and rule_params once, at catalog load.
// Unrecognised kinds and malformed params degrade to RuleUnknown, which the
// engine treats as never eligible.
func parseRule(code, ruleType string, rawParams []byte) entity.AchievementRule {
	var p rawRuleParams
	if len(rawParams) > 0 {
		if err := sonic.Unmarshal(rawParams, &p); err != nil {
			slog.Warn("malformed achievement rule params",
				slog.String("code", code),
				slog.String("error", err.Error()))
			return entity.AchievementRule{Kind: entity.RuleUnknown}
		}
	}
	switch entity.RuleKind(ruleType) {
	case entity.RuleTotalHours:
		rule := entity.AchievementRule{Kind: entity.RuleTotalHours}
		if p.Threshold != nil {
			rule.ThresholdHours = *p.Threshold
		}
		return rule
	case entity.RuleGoalsCompleted:
		rule := entity.AchievementRule{Kind: entity.RuleGoalsCompleted}
		if p.Threshold != nil {
			rule.GoalsRequired = int(*p.Threshold)
		}
		return rule
	case entity.RuleWeeklyStreak:
		rule := entity.AchievementRule{Kind: entity.RuleWeeklyStreak}
		if p.Weeks != nil {
			rule.WeeksRequired = *p.Weeks
		}
		return rule
	default:
		slog.Warn("unknown achievement rule kind",
			slog.String("code", code),
			slog.String("rule_type", ruleType))
		return entity.AchievementRule{Kind: entity.RuleUnknown}
	}
}

func (ar *AchievementsRepository) ListAwardedCodes(ctx context.Context, uid uuid.UUID) (map[string]struct{}, error) {
	rows, err := ar.conn.Query(
		ctx,
		`SELECT a.code FROM user_achievements ua JOIN achievements a ON a.id = ua.achievement_id WHERE ua.user_id = $1;`,
		uid,
	)
	if err != nil {
		return nil, errors.New("listing awarded codes error: " + err.Error())
	}
	defer rows.Close()
	codes := make(map[string]struct{})
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, errors.New("awarded code row parsing error: " + err.Error())
		}
		codes[code] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected awarded code rows error: " + err.Error())
	}
	return codes, nil
}

func (ar *AchievementsRepository) CreateAward(ctx context.Context, uid uuid.UUID, achievementID int) (*entity.UserAchievement, error) {
	row := ar.conn.QueryRow(
		ctx,
		`INSERT INTO user_achievements (user_id, achievement_id) VALUES ($1, $2) RETURNING id, awarded_at;`,
		uid,
		achievementID,
	)
	award := entity.UserAchievement{
		UserID:        uid,
		AchievementID: achievementID,
	}
	if err := row.Scan(&award.ID, &award.AwardedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation: a concurrent evaluation already granted it
			case "23505":
				return nil, errorvalues.ErrAlreadyAwarded
			// FK violation
			case "23503":
				return nil, errorvalues.ErrUserNotFound
			}
		}
		return nil, errors.New("creating award error: " + err.Error())
	}
	return &award, nil
}

func (ar *AchievementsRepository) ListAwardsByUser(ctx context.Context, uid uuid.UUID, limit int) ([]entity.UserAchievement, error) {
	rows, err := ar.conn.Query(
		ctx,
		`SELECT ua.id, ua.user_id, ua.achievement_id, a.code, a.title, ua.awarded_at
		FROM user_achievements ua JOIN achievements a ON a.id = ua.achievement_id
		WHERE ua.user_id = $1 ORDER BY ua.awarded_at DESC LIMIT $2;`,
		uid,
		limit,
	)
	if err != nil {
		return nil, errors.New("listing user awards error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.UserAchievement, 0)
	for rows.Next() {
		var ua entity.UserAchievement
		err = rows.Scan(&ua.ID, &ua.UserID, &ua.AchievementID, &ua.Code, &ua.Title, &ua.AwardedAt)
		if err != nil {
			return nil, errors.New("award row parsing error: " + err.Error())
		}
		result = append(result, ua)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected award rows error: " + err.Error())
	}
	return result, nil
}
