package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	signupdomain "github.com/storefrontlabs/vitrina/internal/signup/domain"
)

func (s *Server) Signup(c *gin.Context) {
	var req signupdomain.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.UserAgent = c.Request.UserAgent()
	req.IPAddress = c.ClientIP()

	result, err := s.signupsvc.Signup(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.sessions.Set(c, result.RawToken, result.ExpiresAt)

	c.JSON(http.StatusCreated, gin.H{
		"user":   toSessionUser(result.User),
		"tenant": result.Tenant,
	})
}
