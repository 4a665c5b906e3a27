// @title StudyStar API
// @description API for study-goal progress tracker "StudyStar"
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"
	"time"

	"github.com/TereBts/studystar/internal/api"
	"github.com/TereBts/studystar/internal/repository"
	"github.com/TereBts/studystar/internal/service"
	"github.com/TereBts/studystar/pkg/config"
	jwtservice "github.com/TereBts/studystar/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	freezeLoc, err := time.LoadLocation(cfg.GetStringDefault("FREEZE_TIMEZONE", "Europe/London"))
	if err != nil {
		log.Fatal("invalid FREEZE_TIMEZONE: " + err.Error())
	}

	usersRepo := repository.NewUsersRepo(&dbCfg)
	goalsRepo := repository.NewGoalsRepo(&dbCfg)
	sessionsRepo := repository.NewSessionsRepo(&dbCfg)
	outcomesRepo := repository.NewOutcomesRepo(&dbCfg)
	achievementsRepo := repository.NewAchievementsRepo(&dbCfg)

	userService := service.NewUserService(usersRepo)
	statsService := service.NewStatsService(sessionsRepo, outcomesRepo, achievementsRepo)
	freezeService := service.NewFreezeService(goalsRepo, sessionsRepo, outcomesRepo, freezeLoc)
	achievementsService := service.NewAchievementsService(statsService, achievementsRepo)
	pacingService := service.NewPacingService(sessionsRepo)
	goalsService := service.NewGoalsService(goalsRepo, sessionsRepo, outcomesRepo, freezeService, achievementsService, pacingService)
	sessionsService := service.NewSessionsService(sessionsRepo, goalsRepo)

	serv := api.New(&api.ServicesList{
		UserService:         userService,
		GoalsService:        goalsService,
		SessionsService:     sessionsService,
		StatsService:        statsService,
		FreezeService:       freezeService,
		AchievementsService: achievementsService,
		JwtService:          jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err = serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
