package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/storefrontlabs/vitrina/internal/auth"
	authdomain "github.com/storefrontlabs/vitrina/internal/auth/domain"
	"github.com/storefrontlabs/vitrina/internal/auth/session"
	"github.com/storefrontlabs/vitrina/internal/config"
	"github.com/storefrontlabs/vitrina/internal/media"
	"github.com/storefrontlabs/vitrina/internal/observability"
	obsmiddleware "github.com/storefrontlabs/vitrina/internal/observability/logger"
	obsmetrics "github.com/storefrontlabs/vitrina/internal/observability/metrics"
	obstracing "github.com/storefrontlabs/vitrina/internal/observability/tracing"
	"github.com/storefrontlabs/vitrina/internal/product"
	productdomain "github.com/storefrontlabs/vitrina/internal/product/domain"
	"github.com/storefrontlabs/vitrina/internal/ratelimit"
	"github.com/storefrontlabs/vitrina/internal/signup"
	signupdomain "github.com/storefrontlabs/vitrina/internal/signup/domain"
	"github.com/storefrontlabs/vitrina/internal/storefront"
	storefrontdomain "github.com/storefrontlabs/vitrina/internal/storefront/domain"
	"github.com/storefrontlabs/vitrina/internal/tenant"
	tenantdomain "github.com/storefrontlabs/vitrina/internal/tenant/domain"
	"github.com/storefrontlabs/vitrina/internal/theme"
	themedomain "github.com/storefrontlabs/vitrina/internal/theme/domain"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	auth.Module,
	session.Module,
	media.Module,
	tenant.Module,
	theme.Module,
	product.Module,
	storefront.Module,
	signup.Module,
	ratelimit.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine        *gin.Engine
	cfg           config.Config
	db            *gorm.DB
	authsvc       authdomain.Service
	sessions      *session.Manager
	genID         *snowflake.Node
	tenantSvc     tenantdomain.Service
	productSvc    productdomain.Service
	themeSvc      themedomain.Service
	storefrontSvc storefrontdomain.Service
	signupsvc     signupdomain.Service
	mediaProvider media.Provider
	limiter       *ratelimit.StorefrontLimiter
	obsMetrics    *obsmetrics.Metrics
}

type ServerParams struct {
	fx.In

	Gin           *gin.Engine
	Cfg           config.Config
	DB            *gorm.DB
	Authsvc       authdomain.Service
	Sessions      *session.Manager
	GenID         *snowflake.Node
	TenantSvc     tenantdomain.Service
	ProductSvc    productdomain.Service
	ThemeSvc      themedomain.Service
	StorefrontSvc storefrontdomain.Service
	Signupsvc     signupdomain.Service
	MediaProvider media.Provider
	Limiter       *ratelimit.StorefrontLimiter
	ObsMetrics    *obsmetrics.Metrics `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:        p.Gin,
		cfg:           p.Cfg,
		db:            p.DB,
		authsvc:       p.Authsvc,
		sessions:      p.Sessions,
		genID:         p.GenID,
		tenantSvc:     p.TenantSvc,
		productSvc:    p.ProductSvc,
		themeSvc:      p.ThemeSvc,
		storefrontSvc: p.StorefrontSvc,
		signupsvc:     p.Signupsvc,
		mediaProvider: p.MediaProvider,
		limiter:       p.Limiter,
		obsMetrics:    p.ObsMetrics,
	}

	svc.registerAuthRoutes()
	svc.registerAdminRoutes()
	svc.registerAPIRoutes()
	svc.registerPublicRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAuthRoutes() {
	auth := s.engine.Group("/auth")

	auth.POST("/signup", s.Signup)
	auth.POST("/login", s.Login)
	auth.POST("/logout", s.Logout)
	auth.GET("/me", s.WebAuthRequired(), s.Me)
}

func (s *Server) registerAdminRoutes() {
	admin := s.engine.Group("/admin")

	admin.Use(s.WebAuthRequired())
	admin.Use(s.TenantContext())

	admin.GET("/products", s.ListProducts)
	admin.POST("/products", s.CreateProduct)
	admin.GET("/products/:id", s.GetProductByID)
	admin.PUT("/products/:id", s.UpdateProduct)
	admin.DELETE("/products/:id", s.DeleteProduct)
	admin.GET("/products/:id/qr", s.ProductQR)
	admin.GET("/products/:id/share-card", s.ProductShareCard)

	admin.GET("/theme", s.GetTheme)
	admin.PUT("/theme", s.SaveTheme)
	admin.GET("/theme/fields", s.ThemeFields)

	admin.POST("/media/uploads", s.UploadImages)
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	api.POST("/media/delete-folder", s.StorefrontRateLimit(), s.WebAuthRequired(), s.TenantContext(), s.DeleteMediaFolder)
}

// Public storefront routes go last: the catch-all tenant slug must not
// shadow /auth, /admin or /api.
func (s *Server) registerPublicRoutes() {
	s.engine.GET("/:tenantSlug/product/:productSlug", s.StorefrontRateLimit(), s.StorefrontProductPage)
}
