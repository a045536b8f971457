package router

import (
	"time"

	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/config"
	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/handler"
	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/middleware"
	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/repository"
	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/service"
	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
// dispatcher may be nil (Redis unavailable): registration then skips the
// welcome email.
func New(cfg *config.Config, db *gorm.DB, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, dispatcher)
	pedidoSvc := service.NewPedidoService(pedidoRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/api/health", handler.Health(db))

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", middleware.AuthRateLimiter(), authH.Registrar)
		auth.POST("/login", middleware.AuthRateLimiter(), authH.Login)
	}

	// Pedidos are public reads: no session or credential is required to list
	// them. Intentional for now — the mobile client gates visibility locally.
	pedidos := r.Group("/api/pedidos")
	{
		pedidos.GET("", pedidosH.Listar)
		pedidos.GET("/:id", pedidosH.Obtener)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
