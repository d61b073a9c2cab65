package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	themedomain "github.com/storefrontlabs/vitrina/internal/theme/domain"
)

func (s *Server) GetTheme(c *gin.Context) {
	record, err := s.themeSvc.Load(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": record})
}

func (s *Server) SaveTheme(c *gin.Context) {
	var req struct {
		Theme themedomain.Record `json:"theme" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if err := s.themeSvc.Save(c.Request.Context(), req.Theme); err != nil {
		AbortWithError(c, err)
		return
	}

	record, err := s.themeSvc.Load(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": record})
}

// ThemeFields returns the editor widget description for the current theme,
// so the admin UI renders pickers without hardcoding the key list.
func (s *Server) ThemeFields(c *gin.Context) {
	record, err := s.themeSvc.Load(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"fields": s.themeSvc.Fields(record)})
}
