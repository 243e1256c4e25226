package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/client-directory/internal/audit"
	"github.com/BruksfildServices01/client-directory/internal/favorites"
	"github.com/BruksfildServices01/client-directory/internal/handlers"
	infraRepo "github.com/BruksfildServices01/client-directory/internal/infra/repository"
	"github.com/BruksfildServices01/client-directory/internal/middleware"
	ucClient "github.com/BruksfildServices01/client-directory/internal/usecase/client"
)

// NewEngine builds the gin engine with the global middleware chain.
func NewEngine(logger *zap.Logger, corsOrigin string) *gin.Engine {
	r := gin.New()

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORSMiddleware(corsOrigin))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	enricher handlers.Enricher,
	logger *zap.Logger,
) {

	// ======================================================
	// 🔧 INFRA
	// ======================================================
	clientRepo := infraRepo.NewClientGormRepository(db)
	auditLogger := audit.New(db, logger)
	favoriteStore := favorites.NewStore()

	// ======================================================
	// 🧠 USE CASES (CLIENTS)
	// ======================================================
	listClientsUC := ucClient.NewListClients(clientRepo)
	getClientUC := ucClient.NewGetClient(clientRepo)
	createClientUC := ucClient.NewCreateClient(clientRepo, auditLogger)
	updateClientUC := ucClient.NewUpdateClient(clientRepo, auditLogger)
	deleteClientUC := ucClient.NewDeleteClient(clientRepo, auditLogger)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	clientHandler := handlers.NewClientHandler(
		listClientsUC,
		getClientUC,
		createClientUC,
		updateClientUC,
		deleteClientUC,
		favoriteStore,
		logger,
	)
	lookupHandler := handlers.NewLookupHandler(enricher, logger)
	favoritesHandler := handlers.NewFavoritesHandler(favoriteStore, getClientUC, logger)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ------------------------------
	// CLIENTS
	// ------------------------------
	clients := r.Group("/clients")
	{
		clients.GET("", clientHandler.List)
		clients.POST("", clientHandler.Create)
		clients.GET("/:id", clientHandler.Get)
		clients.PUT("/:id", clientHandler.Replace)
		clients.PATCH("/:id", clientHandler.Patch)
		clients.DELETE("/:id", clientHandler.Delete)
		clients.GET("/:id/history", auditLogsHandler.History)
	}

	// ------------------------------
	// LOOKUPS (CNPJ / CEP)
	// ------------------------------
	lookup := r.Group("/lookup")
	{
		lookup.GET("/cnpj/:key", lookupHandler.CNPJ)
		lookup.GET("/cep/:key", lookupHandler.CEP)
	}

	// ------------------------------
	// FAVORITES
	// ------------------------------
	favs := r.Group("/favorites")
	{
		favs.GET("", favoritesHandler.List)
		favs.GET("/:id", favoritesHandler.Status)
		favs.PUT("/:id", favoritesHandler.Add)
		favs.DELETE("/:id", favoritesHandler.Remove)
	}

	r.GET("/audit-logs", auditLogsHandler.List)
}
