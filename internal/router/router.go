package router

import (
	"time"

	"github.com/JorgeEduardo17/invoicing-microservice/docs"
	"github.com/JorgeEduardo17/invoicing-microservice/internal/config"
	"github.com/JorgeEduardo17/invoicing-microservice/internal/handler"
	"github.com/JorgeEduardo17/invoicing-microservice/internal/middleware"
	"github.com/JorgeEduardo17/invoicing-microservice/internal/repository"
	"github.com/JorgeEduardo17/invoicing-microservice/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Each engine owns its registry so several engines can live in one process.
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := gin.New()
	// ClientIP feeds the rate limiter; only listed proxies may set X-Forwarded-For.
	if err := r.SetTrustedProxies(cfg.TrustedProxyList()); err != nil {
		log.Error().Err(err).Str("trusted_proxies", cfg.TrustedProxies).Msg("invalid TRUSTED_PROXIES, trusting none")
		_ = r.SetTrustedProxies(nil)
	}

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.Metrics(reg))
	r.Use(middleware.CORS(cfg.AllowedOrigins()))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMinute, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	personRepo := repository.NewPersonRepository(db)
	productRepo := repository.NewProductRepository(db)
	headerRepo := repository.NewInvoiceHeaderRepository(db)
	detailRepo := repository.NewInvoiceDetailRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	personSvc := service.NewPersonService(personRepo)
	productSvc := service.NewProductService(productRepo)
	headerSvc := service.NewInvoiceHeaderService(headerRepo)
	detailSvc := service.NewInvoiceDetailService(detailRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	personH := handler.NewPersonHandler(personSvc)
	productH := handler.NewProductHandler(productSvc)
	headerH := handler.NewInvoiceHeaderHandler(headerSvc)
	detailH := handler.NewInvoiceDetailHandler(detailSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(cfg.AppName, db))
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	person := r.Group("/person")
	{
		person.POST("/", personH.Create)
		person.GET("/", personH.List)
		person.GET("/:id", personH.Get)
		person.PUT("/:id", personH.Update)
		person.DELETE("/:id", personH.Delete)
	}

	product := r.Group("/product")
	{
		product.POST("/", productH.Create)
		product.GET("/", productH.List)
		product.GET("/:id", productH.Get)
		product.PUT("/:id", productH.Update)
		product.DELETE("/:id", productH.Delete)
	}

	invoice := r.Group("/invoice")
	{
		invoice.POST("/", headerH.Create)
		invoice.GET("/", headerH.List)
		invoice.GET("/:id", headerH.Get)
		invoice.PUT("/:id", headerH.Update)
		invoice.DELETE("/:id", headerH.Delete)
	}

	detail := r.Group("/invoice_detail")
	{
		detail.POST("/", detailH.Create)
		detail.GET("/", detailH.List)
		detail.GET("/:id", detailH.Get)
		detail.PUT("/:id", detailH.Update)
		detail.DELETE("/:id", detailH.Delete)
	}

	if cfg.ImagesDirectory != "" {
		r.Static("/images", cfg.ImagesDirectory)
	}

	// Swagger UI is only served outside production
	if !cfg.IsProduction() {
		docs.SwaggerInfo.Title = cfg.AppName
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
