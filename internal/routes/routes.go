package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/theomoutet/coach-portal/internal/audit"
	"github.com/theomoutet/coach-portal/internal/auth"
	"github.com/theomoutet/coach-portal/internal/handlers"
	infraRepo "github.com/theomoutet/coach-portal/internal/infra/repository"
	"github.com/theomoutet/coach-portal/internal/middleware"
	"github.com/theomoutet/coach-portal/internal/portal"
	"github.com/theomoutet/coach-portal/internal/storage"
	ucAccount "github.com/theomoutet/coach-portal/internal/usecase/account"
	ucAdmin "github.com/theomoutet/coach-portal/internal/usecase/admin"
	ucClient "github.com/theomoutet/coach-portal/internal/usecase/client"
)

type Deps struct {
	DB       *gorm.DB
	Repo     *infraRepo.PortalGormRepository
	Auth     *auth.Service
	Boot     *portal.Bootstrapper
	Uploader storage.Uploader
	Log      zerolog.Logger
}

func RegisterRoutes(r *gin.Engine, deps Deps) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := deps.Repo

	auditLogger := audit.New(deps.DB)
	auditDispatcher := audit.NewDispatcher(auditLogger, deps.Log)

	// ======================================================
	// USE CASES
	// ======================================================
	createAccountUC := ucAccount.NewCreateAccount(
		deps.Auth,
		repo,
		auditDispatcher,
		deps.Log,
	)

	loadDashboardUC := ucClient.NewLoadDashboard(repo)
	addWeightUC := ucClient.NewAddWeight(repo, loadDashboardUC, auditDispatcher)

	loadOverviewUC := ucAdmin.NewLoadOverview(repo)
	deleteClientUC := ucAdmin.NewDeleteClient(repo, deps.Auth, auditDispatcher, deps.Log)
	createInvoiceUC := ucAdmin.NewCreateInvoice(repo, deps.Uploader, auditDispatcher, deps.Log)
	deleteInvoiceUC := ucAdmin.NewDeleteInvoice(repo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(
		deps.Auth,
		deps.Boot,
		createAccountUC,
		auditDispatcher,
		deps.Log,
	)
	meHandler := handlers.NewMeHandler(deps.Boot, repo, deps.Auth, deps.Log)
	clientHandler := handlers.NewClientHandler(loadDashboardUC, addWeightUC)
	adminHandler := handlers.NewAdminHandler(
		repo,
		loadOverviewUC,
		createAccountUC,
		deleteClientUC,
		createInvoiceUC,
		deleteInvoiceUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/admin/login", authHandler.AdminLogin)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(deps.Auth, repo))
		{
			secured.POST("/auth/logout", authHandler.Logout)

			secured.GET("/me/view", meHandler.GetView)
			secured.GET("/me/profile", meHandler.GetProfile)
			secured.PATCH("/me/profile", meHandler.UpdateProfile)

			secured.GET("/me/dashboard", clientHandler.Dashboard)
			secured.POST("/me/weights", clientHandler.AddWeight)

			// ------------------------------
			// ADMIN
			// ------------------------------
			adminAPI := secured.Group("/admin")
			adminAPI.Use(middleware.RequireAdmin())
			{
				adminAPI.GET("/overview", adminHandler.Overview)
				adminAPI.GET("/sessions", adminHandler.Sessions)

				adminAPI.GET("/clients", adminHandler.ListClients)
				adminAPI.POST("/clients", adminHandler.CreateClient)
				adminAPI.DELETE("/clients/:id", adminHandler.DeleteClient)

				adminAPI.GET("/invoices", adminHandler.ListInvoices)
				adminAPI.POST("/invoices", adminHandler.CreateInvoice)
				adminAPI.DELETE("/invoices/:id", adminHandler.DeleteInvoice)
			}
		}
	}
}
