package api

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	errorvalues "github.com/TereBts/studystar/internal/error_values"
	"github.com/TereBts/studystar/internal/service"
	"github.com/TereBts/studystar/pkg/entity"
	"github.com/TereBts/studystar/pkg/httputil"
)

const dateLayout = "2006-01-02"

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LogSessionRequest struct {
	GoalID          *string   `json:"goal_id,omitempty"`
	StartedAt       time.Time `json:"started_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Notes           string    `json:"notes,omitempty"`
}

type FreezeRequest struct {
	WeekStart string `json:"week_start,omitempty"`
	WeekEnd   string `json:"week_end,omitempty"`
	DryRun    bool   `json:"dry_run,omitempty"`
}

type FreezeResponse struct {
	Created   int                      `json:"created"`
	Updated   int                      `json:"updated"`
	WeekStart *string                  `json:"week_start"`
	WeekEnd   *string                  `json:"week_end"`
	NewAwards []entity.UserAchievement `json:"new_awards"`
}

type StatsResponse struct {
	Stats         *entity.StatsSnapshot    `json:"stats"`
	WeekStart     string                   `json:"week_start"`
	WeekEnd       string                   `json:"week_end"`
	HoursThisWeek float64                  `json:"hours_this_week"`
	RecentAwards  []entity.UserAchievement `json:"recent_awards"`
}

type GetGoalsResponse struct {
	UserID string         `json:"uid"`
	Goals  []*entity.Goal `json:"goals"`
}

// PacingResponse renders pacing figures for JSON: null when inapplicable,
// the string "overdue" when the deadline passed with work remaining
// (JSON has no representation for infinity).
type PacingResponse struct {
	WeeksUntilMilestone any     `json:"weeks_until_milestone"`
	LessonsPerWeek      any     `json:"lessons_per_week"`
	HoursPerWeek        any     `json:"hours_per_week"`
	LessonsPerDay       any     `json:"lessons_per_day"`
	HoursPerDay         any     `json:"hours_per_day"`
	ProjectedCompletion *string `json:"projected_completion"`
}

type GoalProgressResponse struct {
	Goal      *entity.Goal             `json:"goal"`
	Outcomes  []entity.GoalOutcome     `json:"outcomes"`
	Pacing    PacingResponse           `json:"pacing"`
	NewAwards []entity.UserAchievement `json:"new_awards"`
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			logger.Error("registering error: existed user")
			httputil.WriteErrorResponse(w, http.StatusConflict, "user with such name already exists", nil)
			return
		}
		logger.Error("registering error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during registration", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("login error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user with such name doesn't exist", nil)
			return
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid username or password", nil)
			return
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
			return
		}
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

func (s *Server) LogSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("log session error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req LogSessionRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("log session error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	var goalID *uuid.UUID
	if req.GoalID != nil {
		id, err := uuid.Parse(*req.GoalID)
		if err != nil {
			logger.Error("log session error: invalid goal id")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal id", nil)
			return
		}
		goalID = &id
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	session, err := s.sessionsService.LogSession(ctx, uid, &service.LogSessionRequest{
		GoalID:          goalID,
		StartedAt:       req.StartedAt,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGoalNotFound):
			logger.Error("log session error: unexist goal")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "goal doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("log session error: goal has different owner")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "goal doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrSessionDateNotAllowed):
			logger.Error("log session error: future start date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "session start date cannot be in future", nil)
		default:
			logger.Error("log session error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while logging session", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{"session_id": session.ID})
	logger.Info("session logged")
}

func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get stats error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	dashboard, err := s.statsService.Dashboard(ctx, uid, time.Now())
	if err != nil {
		logger.Error("get stats error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while building stats", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, StatsResponse{
		Stats:         dashboard.Snapshot,
		WeekStart:     dashboard.WeekStart.Format(dateLayout),
		WeekEnd:       dashboard.WeekEnd.Format(dateLayout),
		HoursThisWeek: dashboard.HoursThisWeek,
		RecentAwards:  dashboard.RecentAwards,
	})
	logger.Info("stats provided")
}

// FreezeNow is the manual freeze trigger: it runs the freeze (optionally for
// an explicit window) and then achievement evaluation, mirroring what the
// scheduled job does.
func (s *Server) FreezeNow(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("freeze error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req FreezeRequest
	defer r.Body.Close()
	if r.ContentLength != 0 {
		if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("freeze error: invalid request body")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
			return
		}
	}
	opts := service.FreezeOptions{
		DryRun: req.DryRun,
		Today:  time.Now(),
	}
	if req.WeekStart != "" || req.WeekEnd != "" {
		ws, err1 := time.Parse(dateLayout, req.WeekStart)
		we, err2 := time.Parse(dateLayout, req.WeekEnd)
		if err1 != nil || err2 != nil {
			logger.Error("freeze error: invalid week range")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "week_start and week_end must be YYYY-MM-DD dates", nil)
			return
		}
		opts.WeekStart, opts.WeekEnd = &ws, &we
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	result, err := s.freezeService.Freeze(ctx, opts)
	if err != nil {
		logger.Error("freeze error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while freezing outcomes", nil)
		return
	}
	newAwards := make([]entity.UserAchievement, 0)
	if !req.DryRun {
		newAwards, err = s.achievementsService.Evaluate(ctx, uid, time.Now())
		if err != nil {
			logger.Error("freeze error: achievements evaluation error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while evaluating achievements", nil)
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, FreezeResponse{
		Created:   result.Created,
		Updated:   result.Updated,
		WeekStart: formatDatePtr(result.WeekStart),
		WeekEnd:   formatDatePtr(result.WeekEnd),
		NewAwards: newAwards,
	})
	logger.Info("freeze completed",
		slog.Int("created", result.Created),
		slog.Int("updated", result.Updated))
}

func (s *Server) GetGoals(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get goals error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	goals, err := s.goalsService.ListGoals(ctx, uid)
	if err != nil {
		logger.Error("getting goals list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting goals list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetGoalsResponse{
		UserID: uid.String(),
		Goals:  goals,
	})
	logger.Info("goals provided")
}

func (s *Server) GetGoalProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("goal progress error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	goalID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("goal progress error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	progress, err := s.goalsService.Progress(ctx, goalID, uid, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGoalNotFound):
			logger.Error("goal progress error: unexist goal")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "goal doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("goal progress error: goal has different owner")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "goal doesn't exist", nil)
		default:
			logger.Error("goal progress error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while building goal progress", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GoalProgressResponse{
		Goal:      progress.Goal,
		Outcomes:  progress.Outcomes,
		Pacing:    buildPacingResponse(progress.Pacing),
		NewAwards: progress.NewAwards,
	})
	logger.Info("goal progress provided")
}

func buildPacingResponse(report *entity.PacingReport) PacingResponse {
	resp := PacingResponse{
		WeeksUntilMilestone: formatRate(report.WeeksUntilMilestone),
		LessonsPerWeek:      formatRate(report.LessonsPerWeek),
		HoursPerWeek:        formatRate(report.HoursPerWeek),
		LessonsPerDay:       formatRate(report.LessonsPerDay),
		HoursPerDay:         formatRate(report.HoursPerDay),
	}
	resp.ProjectedCompletion = formatDatePtr(report.ProjectedCompletion)
	return resp
}

func formatRate(v *float64) any {
	if v == nil {
		return nil
	}
	if math.IsInf(*v, 1) {
		return "overdue"
	}
	return *v
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(dateLayout)
	return &formatted
}
