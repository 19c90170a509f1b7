package app

import (
	"context"

	"github.com/NabinS-D/TodoList/internal/cache"
	"github.com/NabinS-D/TodoList/internal/chat"
	"github.com/NabinS-D/TodoList/internal/config"
	"github.com/NabinS-D/TodoList/internal/handlers"
	"github.com/NabinS-D/TodoList/internal/repo"
	"github.com/NabinS-D/TodoList/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
	"go.mongodb.org/mongo-driver/mongo"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *mongo.Database, rdb *redis.Client, hubCtx context.Context) {
	r.GET("/", dashboardHandler())
	r.Static("/static", "./static")

	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	employeeRepo := repo.NewMongoEmployeeRepo(db)
	employeeCache := cache.NewEmployeeCache(rdb, cfg.Redis.DefaultTTL.Duration())
	employeeSvc := service.NewEmployeeService(employeeRepo, employeeCache)
	registerEmployeeRoutes(r, handlers.NewEmployeeHandler(employeeSvc))

	todoRepo := repo.NewMongoTodoRepo(db)
	todoCache := cache.NewTodoCache(rdb, cfg.Redis.DefaultTTL.Duration())
	todoSvc := service.NewTodoService(todoRepo, todoCache)
	registerTodoRoutes(r, handlers.NewTodoHandler(todoSvc))

	hub := chat.NewHub(repo.NewMongoMessageRepo(db))
	go hub.Run(hubCtx)
	r.GET("/ws/chat", hub.ServeWS)
}

func dashboardHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.File("./static/index.html")
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerEmployeeRoutes(r *gin.Engine, h *handlers.EmployeeHandler) {
	r.POST("/employees", h.Create)
	r.GET("/employees", h.List)
	r.GET("/employees/:name", h.GetByName)
	r.PATCH("/employees/:name", h.Update)
	// static segment wins over :name, so deleteAll never shadows a delete by name
	r.DELETE("/employees/deleteAll", h.DeleteAll)
	r.DELETE("/employees/:name", h.Delete)
}

func registerTodoRoutes(r *gin.Engine, h *handlers.TodoHandler) {
	r.POST("/todos", h.Create)
	r.GET("/todos", h.List)
	r.GET("/todos/:todo_id", h.GetByID)
	r.PATCH("/todos/:todo_id", h.Update)
	r.DELETE("/todos/deleteAll", h.DeleteAll)
	r.DELETE("/todos/:todo_id", h.Delete)
}
