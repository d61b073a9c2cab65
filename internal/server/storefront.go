package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) StorefrontProductPage(c *gin.Context) {
	page, err := s.storefrontSvc.ProductPage(
		c.Request.Context(),
		c.Param("tenantSlug"),
		c.Param("productSlug"),
	)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
