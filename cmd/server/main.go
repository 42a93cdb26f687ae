package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/edusphere/edusphere-api/api/swagger"
	"github.com/edusphere/edusphere-api/internal/handler"
	"github.com/edusphere/edusphere-api/internal/middleware"
	"github.com/edusphere/edusphere-api/internal/models"
	"github.com/edusphere/edusphere-api/internal/service"
	"github.com/edusphere/edusphere-api/internal/store"
	"github.com/edusphere/edusphere-api/pkg/config"
	"github.com/edusphere/edusphere-api/pkg/logger"
	corsmiddleware "github.com/edusphere/edusphere-api/pkg/middleware/cors"
	reqidmiddleware "github.com/edusphere/edusphere-api/pkg/middleware/requestid"
)

// @title EduSphere API
// @version 1.0.0
// @description School management API backed by a local snapshot store
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := store.OpenSnapshotDB(cfg.Store.SnapshotPath)
	if err != nil {
		logr.Sugar().Fatalw("failed to open snapshot db", "error", err)
	}
	defer db.Close()

	metricsSvc := service.NewMetricsService()
	snapshots := store.InstrumentSnapshots(store.NewSnapshotRepository(db), metricsSvc)

	st := store.New(context.Background(), snapshots, logr)

	validate := validator.New()

	authSvc := service.NewAuthService(st, logr, service.AuthConfig{
		Secret:     cfg.Session.Secret,
		Expiration: cfg.Session.Expiration,
		Issuer:     cfg.Session.Issuer,
	})
	assistSvc := service.NewAssistService(nil, logr, service.AssistConfig{
		APIKey:  cfg.Assist.APIKey,
		Model:   cfg.Assist.Model,
		BaseURL: cfg.Assist.BaseURL,
		Timeout: cfg.Assist.Timeout,
	})
	studentSvc := service.NewStudentService(st, validate, logr)
	teacherSvc := service.NewTeacherService(st, validate, logr)
	attendanceSvc := service.NewAttendanceService(st, assistSvc, validate, logr)
	feeSvc := service.NewFeeService(st, validate, logr)
	noticeSvc := service.NewNoticeService(st, validate, logr)
	scheduleSvc := service.NewScheduleService(st)
	dashboardSvc := service.NewDashboardService(st, assistSvc, logr)
	exportSvc := service.NewExportService(st, nil, nil, logr)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	authHandler := handler.NewAuthHandler(authSvc)
	studentHandler := handler.NewStudentHandler(studentSvc)
	teacherHandler := handler.NewTeacherHandler(teacherSvc)
	attendanceHandler := handler.NewAttendanceHandler(attendanceSvc, metricsSvc)
	feeHandler := handler.NewFeeHandler(feeSvc)
	noticeHandler := handler.NewNoticeHandler(noticeSvc)
	scheduleHandler := handler.NewScheduleHandler(scheduleSvc)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc, metricsSvc)
	exportHandler := handler.NewExportHandler(exportSvc)

	api := r.Group(cfg.APIPrefix)

	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)

	secured := api.Group("")
	secured.Use(middleware.Session(authSvc))

	secured.GET("/auth/me", authHandler.Me)

	secured.GET("/students", studentHandler.List)
	secured.POST("/students", middleware.RequireRoles(models.RoleAdmin), studentHandler.Create)

	secured.GET("/teachers", teacherHandler.List)
	secured.POST("/teachers", middleware.RequireRoles(models.RoleAdmin), teacherHandler.Create)

	secured.GET("/attendance", attendanceHandler.List)
	secured.POST("/attendance", middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher), attendanceHandler.Mark)
	secured.GET("/attendance/analyze", middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher), attendanceHandler.Analyze)

	secured.GET("/fees", feeHandler.List)
	secured.PATCH("/fees/:id/status", middleware.RequireRoles(models.RoleAdmin), feeHandler.UpdateStatus)

	secured.GET("/classes", scheduleHandler.List)

	secured.GET("/notices", noticeHandler.List)
	secured.POST("/notices", middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher), noticeHandler.Create)

	secured.GET("/dashboard/stats", dashboardHandler.Stats)
	secured.POST("/dashboard/assist", middleware.RequireRoles(models.RoleAdmin), dashboardHandler.Ask)

	secured.GET("/export/students", middleware.RequireRoles(models.RoleAdmin), exportHandler.Students)
	secured.GET("/export/fees", middleware.RequireRoles(models.RoleAdmin), exportHandler.Fees)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Every store mutation is already flushed to the snapshot db, so
	// shutdown only needs to drain in-flight requests.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logr.Sugar().Errorw("shutdown failed", "error", err)
	}
	logr.Sugar().Infow("server stopped")
}
