package server

import (
	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/storefrontlabs/vitrina/internal/observability/logger"
	"github.com/storefrontlabs/vitrina/pkg/tenantctx"
)

const (
	contextUserIDKey     = "user_id"
	contextTenantSlugKey = "tenant_slug"
)

func (s *Server) WebAuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := s.sessions.ReadToken(c)
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		session, err := s.authsvc.Authenticate(c.Request.Context(), token)
		if err != nil {
			s.sessions.Clear(c)
			AbortWithError(c, err)
			return
		}

		c.Set(contextUserIDKey, session.UserID)
		c.Next()
	}
}

// TenantContext resolves the caller's tenant by ownership and injects it
// into the request context. Every admin handler downstream reads the tenant
// from there, never from request input.
func (s *Server) TenantContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		tenant, err := s.tenantSvc.GetByOwner(c.Request.Context(), userID)
		if err != nil {
			AbortWithError(c, ErrTenantRequired)
			return
		}

		tenantID, err := snowflake.ParseString(tenant.ID)
		if err != nil {
			AbortWithError(c, ErrInternal)
			return
		}

		c.Set(contextTenantSlugKey, tenant.Slug)
		ctx := tenantctx.WithTenantID(c.Request.Context(), int64(tenantID))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func (s *Server) StorefrontRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.limiter.Enabled() {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		allowed, err := s.limiter.Allow(ctx, c.ClientIP())
		if err != nil {
			// Redis trouble must not take the storefront down.
			logger.FromContext(ctx).Warn("storefront rate limit check failed", zap.Error(err))
			c.Next()
			return
		}
		if !allowed {
			if s.obsMetrics != nil {
				s.obsMetrics.RecordRateLimitDenied(ctx, c.FullPath(), "client-rate")
			}
			AbortWithError(c, ErrTooManyRequests)
			return
		}
		if s.obsMetrics != nil {
			s.obsMetrics.RecordRateLimitAllowed(ctx, c.FullPath())
		}
		c.Next()
	}
}

func currentUserID(c *gin.Context) (snowflake.ID, bool) {
	v, ok := c.Get(contextUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(snowflake.ID)
	return id, ok
}

func currentTenantSlug(c *gin.Context) string {
	return c.GetString(contextTenantSlugKey)
}
