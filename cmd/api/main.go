package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/fieldtrack/fieldsales-backend-go/internal/cache"
	"github.com/fieldtrack/fieldsales-backend-go/internal/config"
	appHTTP "github.com/fieldtrack/fieldsales-backend-go/internal/handler/http"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/cron"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/database"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/jwt"
	"github.com/fieldtrack/fieldsales-backend-go/internal/repository/postgresql"
	accountService "github.com/fieldtrack/fieldsales-backend-go/internal/service/account"
	attendanceService "github.com/fieldtrack/fieldsales-backend-go/internal/service/attendance"
	authService "github.com/fieldtrack/fieldsales-backend-go/internal/service/auth"
	expenseService "github.com/fieldtrack/fieldsales-backend-go/internal/service/expense"
	notificationService "github.com/fieldtrack/fieldsales-backend-go/internal/service/notification"
	reviewService "github.com/fieldtrack/fieldsales-backend-go/internal/service/review"
	sheetSaleService "github.com/fieldtrack/fieldsales-backend-go/internal/service/sheetsale"
	statsService "github.com/fieldtrack/fieldsales-backend-go/internal/service/stats"
	targetService "github.com/fieldtrack/fieldsales-backend-go/internal/service/target"
	teamService "github.com/fieldtrack/fieldsales-backend-go/internal/service/team"
	visitService "github.com/fieldtrack/fieldsales-backend-go/internal/service/visit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logLevel := slog.LevelInfo
	if cfg.App.LogLevel == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Invalid APP_TIMEZONE: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		log.Fatal("Failed to connect to Redis: ", err)
	}
	defer redisClient.Close()

	userRepo := postgresql.NewUserRepository(db)
	tokenRepo := postgresql.NewTokenRepository(db)
	accountRepo := postgresql.NewAccountRepository(db)
	visitRepo := postgresql.NewVisitRepository(db)
	sheetSaleRepo := postgresql.NewSheetSaleRepository(db)
	expenseRepo := postgresql.NewExpenseRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	targetRepo := postgresql.NewTargetRepository(db)
	reviewRepo := postgresql.NewReviewRepository(db)
	statsRepo := postgresql.NewStatsRepository(db)
	teamRepo := postgresql.NewTeamRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	rosterCache := cache.NewRosterCache(redisClient, cfg.Team.RosterCacheTTL)

	notificationSvc := notificationService.NewService(notificationRepo, logger)
	authSvc := authService.NewService(userRepo, tokenRepo, jwtSvc)
	accountSvc := accountService.NewService(accountRepo)
	visitSvc := visitService.NewService(visitRepo, accountRepo, loc)
	sheetSaleSvc := sheetSaleService.NewService(sheetSaleRepo, loc)
	expenseSvc := expenseService.NewService(expenseRepo, loc)
	attendanceSvc := attendanceService.NewService(attendanceRepo, loc)
	statsSvc := statsService.NewService(userRepo, visitRepo, sheetSaleRepo, expenseRepo, attendanceRepo, statsRepo, loc)
	targetSvc := targetService.NewService(targetRepo, statsSvc, notificationSvc, targetService.Thresholds{
		Near:     cfg.Targets.NearThreshold,
		Complete: cfg.Targets.CompleteThreshold,
	})
	reviewSvc := reviewService.NewService(reviewRepo, notificationSvc)
	teamSvc := teamService.NewService(teamRepo, rosterCache, logger)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtSvc)
	accountHandler := appHTTP.NewAccountHandler(accountSvc)
	activityHandler := appHTTP.NewActivityHandler(visitSvc, sheetSaleSvc, expenseSvc, attendanceSvc, loc)
	statsHandler := appHTTP.NewStatsHandler(statsSvc, teamSvc)
	reviewHandler := appHTTP.NewReviewHandler(reviewSvc)
	targetHandler := appHTTP.NewTargetHandler(targetSvc)
	teamHandler := appHTTP.NewTeamHandler(teamSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc)

	scheduler := cron.NewScheduler()
	targetJobs := cron.NewTargetJobs(targetRepo, notificationSvc, loc)
	targetJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		jwtSvc,
		authHandler,
		accountHandler,
		activityHandler,
		statsHandler,
		reviewHandler,
		targetHandler,
		teamHandler,
		notificationHandler,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
