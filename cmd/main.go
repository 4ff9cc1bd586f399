package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	_ "time/tzdata" // Load timezone data

	"github.com/gorilla/mux"
	cron "github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/reinzjustinedagang/osca-backend/internal/app"
	"github.com/reinzjustinedagang/osca-backend/internal/config"
	"github.com/reinzjustinedagang/osca-backend/internal/controllers"
	"github.com/reinzjustinedagang/osca-backend/internal/middleware"
	"github.com/reinzjustinedagang/osca-backend/internal/repositories"
	"github.com/reinzjustinedagang/osca-backend/internal/routes"
	"github.com/reinzjustinedagang/osca-backend/internal/services"
	"github.com/reinzjustinedagang/osca-backend/internal/sessions"
	"github.com/reinzjustinedagang/osca-backend/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize the application:", err)
	}
	defer application.Close()

	if err := os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
		utils.Logger.Fatal("Failed to create uploads directory:", err)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(application.DB)
	citizenRepo := repositories.NewSeniorCitizenRepository(application.DB)
	municipalRepo := repositories.NewMunicipalOfficialRepository(application.DB)
	barangayRepo := repositories.NewBarangayOfficialRepository(application.DB)
	smsLogRepo := repositories.NewSmsLogRepository(application.DB)
	smsCredsRepo := repositories.NewSmsCredentialsRepository(application.DB)
	auditRepo := repositories.NewAuditLogRepository(application.DB)
	sessionRepo := repositories.NewSessionRepository(application.DB)

	sessionMgr := sessions.NewManager(sessionRepo, cfg.SessionCookieName, cfg.SessionMaxAge)

	// Services
	auditService := services.NewAuditService(auditRepo)
	userService := services.NewUserService(userRepo, auditService)
	citizenService := services.NewSeniorCitizenService(citizenRepo, auditService)
	officialService := services.NewOfficialService(municipalRepo, barangayRepo, auditService)
	smsGateway := services.NewHTTPSmsGateway(cfg.SMSGatewayURL)
	smsService := services.NewSmsService(smsGateway, smsLogRepo, smsCredsRepo, auditService)
	sweepService := services.NewSessionSweepService(sessionRepo, userRepo)

	// Controllers
	healthController := controllers.NewHealthController(application)
	authController := controllers.NewAuthController(userService, sessionMgr)
	citizenController := controllers.NewCitizenController(citizenService)
	officialController := controllers.NewOfficialController(officialService, cfg.UploadsDir)
	smsController := controllers.NewSmsController(smsService)
	auditController := controllers.NewAuditController(auditService)

	// Expired-session sweep
	c := cron.New()
	_, schErr := c.AddFunc(fmt.Sprintf("@every %s", cfg.SweepInterval), func() {
		if err := sweepService.DeactivateExpiredUsers(context.Background()); err != nil {
			utils.Logger.WithError(err).Error("Scheduled session sweep failed")
		}
	})
	if schErr != nil {
		utils.Logger.WithError(schErr).Fatal("Failed to schedule session sweep job")
	}
	c.Start()
	defer c.Stop()

	// Router
	router := mux.NewRouter()

	// Health
	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods(http.MethodGet)

	// Public auth routes
	router.HandleFunc(routes.UserLogin, authController.LoginHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.UserRegister, authController.RegisterHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.UserSession, authController.SessionHandler).Methods(http.MethodGet)

	// Public reads
	router.HandleFunc(routes.CitizenByID, citizenController.GetByIDHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.CitizensBase, citizenController.ListHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.CitizensPage, citizenController.PageHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.CitizensSearch, citizenController.SearchHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.CitizensByBarangay, citizenController.ByBarangayHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.MunicipalOfficials, officialController.GetMunicipalHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.BarangayOfficials, officialController.GetBarangayHandler).Methods(http.MethodGet)

	// Uploaded images
	router.PathPrefix(routes.UploadsPrefix).Handler(
		http.StripPrefix(routes.UploadsPrefix, http.FileServer(http.Dir(cfg.UploadsDir))))

	// Protected routes (session middleware)
	secured := router.NewRoute().Subrouter()
	secured.Use(middleware.SessionAuth(sessionMgr))

	secured.HandleFunc(routes.UserLogout, authController.LogoutHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.UserMe, authController.MeHandler).Methods(http.MethodGet)

	secured.HandleFunc(routes.CitizenCreate, citizenController.CreateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.CitizenUpdate, citizenController.UpdateHandler).Methods(http.MethodPut)
	secured.HandleFunc(routes.CitizenDelete, citizenController.DeleteHandler).Methods(http.MethodDelete)

	secured.HandleFunc(routes.MunicipalOfficials, officialController.AddMunicipalHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.MunicipalOfficialByID, officialController.UpdateMunicipalHandler).Methods(http.MethodPut)
	secured.HandleFunc(routes.MunicipalOfficialByID, officialController.DeleteMunicipalHandler).Methods(http.MethodDelete)

	secured.HandleFunc(routes.BarangayOfficials, officialController.AddBarangayHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.BarangayOfficialByID, officialController.UpdateBarangayHandler).Methods(http.MethodPut)
	secured.HandleFunc(routes.BarangayOfficialByID, officialController.DeleteBarangayHandler).Methods(http.MethodDelete)

	secured.HandleFunc(routes.SmsSend, smsController.SendHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.SmsLogs, smsController.LogsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.SmsHistory, smsController.HistoryHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.SmsDeleteLog, smsController.DeleteLogHandler).Methods(http.MethodDelete)
	secured.HandleFunc(routes.SmsCredentials, smsController.GetCredentialsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.SmsCredentials, smsController.UpdateCredentialsHandler).Methods(http.MethodPut)

	secured.HandleFunc(routes.AuditLogsGetAll, auditController.GetAllHandler).Methods(http.MethodGet)

	// CORS config
	co := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("Failed to start server:", err)
	}
}
