package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TereBts/studystar/pkg/cleanup"
	"github.com/TereBts/studystar/pkg/entity"
)

// upsertOutcomeQuery overwrites an existing snapshot for the same
// (goal_id, week_start). `xmax = 0` is true only for freshly inserted rows,
// which lets one round trip report insert vs update.
const upsertOutcomeQuery = `INSERT INTO goal_outcomes
		(goal_id, week_start, week_end, hours_completed, lessons_completed, hours_target, lessons_target, completed, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (goal_id, week_start) DO UPDATE SET
			week_end = EXCLUDED.week_end,
			hours_completed = EXCLUDED.hours_completed,
			lessons_completed = EXCLUDED.lessons_completed,
			hours_target = EXCLUDED.hours_target,
			lessons_target = EXCLUDED.lessons_target,
			completed = EXCLUDED.completed,
			notes = EXCLUDED.notes
		RETURNING (xmax = 0);`

type OutcomesRepository struct {
	conn PgConnection
}

func NewOutcomesRepo(cfg DBConfig) *OutcomesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for outcomesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for outcomesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &OutcomesRepository{
		conn: pool,
	}
}

func NewOutcomesRepoWithConn(conn PgConnection) *OutcomesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for outcomesRepo: " + err.Error())
	}
	return &OutcomesRepository{
		conn: conn,
	}
}

func (or *OutcomesRepository) UpsertBatch(ctx context.Context, outcomes []entity.GoalOutcome) (int, int, error) {
	if len(outcomes) == 0 {
		return 0, 0, nil
	}
	tx, err := or.conn.Begin(ctx)
	if err != nil {
		return 0, 0, errors.New("starting outcomes transaction error: " + err.Error())
	}
	created, updated := 0, 0
	for _, o := range outcomes {
		row := tx.QueryRow(
			ctx,
			upsertOutcomeQuery,
			o.GoalID,
			o.WeekStart,
			o.WeekEnd,
			o.HoursCompleted,
			o.LessonsCompleted,
			o.HoursTarget,
			o.LessonsTarget,
			o.Completed,
			o.Notes,
		)
		var inserted bool
		if err := row.Scan(&inserted); err != nil {
			tx.Rollback(ctx)
			return 0, 0, errors.New("upserting outcome error: " + err.Error())
		}
		if inserted {
			created++
		} else {
			updated++
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, 0, errors.New("committing outcomes transaction error: " + err.Error())
	}
	return created, updated, nil
}

func (or *OutcomesRepository) CountCompletedByUser(ctx context.Context, uid uuid.UUID) (int, error) {
	row := or.conn.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM goal_outcomes o JOIN goals g ON g.id = o.goal_id WHERE g.user_id = $1 AND o.completed = TRUE;`,
		uid,
	)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("counting completed outcomes error: " + err.Error())
	}
	return count, nil
}

func (or *OutcomesRepository) ListByGoal(ctx context.Context, goalID uuid.UUID, limit int) ([]entity.GoalOutcome, error) {
	rows, err := or.conn.Query(
		ctx,
		`SELECT id, goal_id, week_start, week_end, hours_completed, lessons_completed, hours_target, lessons_target, completed, notes, created_at
		FROM (
			SELECT * FROM goal_outcomes WHERE goal_id = $1 ORDER BY week_start DESC LIMIT $2
		) recent ORDER BY week_start;`,
		goalID,
		limit,
	)
	if err != nil {
		return nil, errors.New("listing goal outcomes error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.GoalOutcome, 0)
	for rows.Next() {
		var o entity.GoalOutcome
		err = rows.Scan(
			&o.ID, &o.GoalID, &o.WeekStart, &o.WeekEnd, &o.HoursCompleted, &o.LessonsCompleted,
			&o.HoursTarget, &o.LessonsTarget, &o.Completed, &o.Notes, &o.CreatedAt,
		)
		if err != nil {
			return nil, errors.New("outcome row parsing error: " + err.Error())
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected outcome rows error: " + err.Error())
	}
	return result, nil
}

func (or *OutcomesRepository) DeleteSeeded(ctx context.Context) (int64, error) {
	ct, err := or.conn.Exec(ctx, `DELETE FROM goal_outcomes WHERE notes = 'seeded';`)
	if err != nil {
		return 0, errors.New("deleting seeded outcomes error: " + err.Error())
	}
	return ct.RowsAffected(), nil
}
