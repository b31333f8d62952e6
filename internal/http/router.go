package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ace2884/OR/internal/config"
	"github.com/ace2884/OR/internal/geocache"
	"github.com/ace2884/OR/internal/http/handlers"
	"github.com/ace2884/OR/internal/http/middleware"
	"github.com/ace2884/OR/internal/render"
	"github.com/ace2884/OR/internal/store"

	_ "github.com/ace2884/OR/docs"
)

func Router(cfg config.Config, employees *store.EmployeeStore, tickets *store.TicketStore, cache *geocache.Cache, renderer render.Renderer, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.MaxMultipartMemory = cfg.MaxUploadSizeMB << 20

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Admin-Key", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.CORSAllowed == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSAllowed}
	}
	r.Use(cors.New(corsCfg))

	h := &handlers.Handler{
		Employees: employees,
		Tickets:   tickets,
		Geocache:  cache,
		Renderer:  renderer,
		Validator: validator.New(),
		Logger:    logger,
	}

	r.GET("/healthz", h.Healthz)

	api := r.Group("/api")
	{
		api.GET("/employees", h.EmployeesList)
		api.GET("/employees/filter", h.EmployeesFilter)
		api.POST("/employees/filter", h.EmployeesFilter)
		api.POST("/tickets", h.TicketCreate)
		api.GET("/tickets", h.TicketsList)
		api.GET("/assignments", h.AssignmentsList)
		api.POST("/assignments/route", h.AssignmentRoute)
		api.POST("/assignments/optimize", h.AssignmentOptimize)
		api.POST("/assignments/map", h.AssignmentMap)
	}

	admin := api.Group("")
	admin.Use(middleware.AdminKey(cfg.AdminKey))
	{
		admin.POST("/employees/upload", h.EmployeesUpload)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
