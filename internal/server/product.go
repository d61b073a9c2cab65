package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	productdomain "github.com/storefrontlabs/vitrina/internal/product/domain"
	"github.com/storefrontlabs/vitrina/internal/share"
	"github.com/storefrontlabs/vitrina/pkg/db/pagination"
)

type listProductsResponse struct {
	Products []productdomain.Response `json:"products"`
	PageInfo pagination.PageInfo      `json:"page_info"`
}

func (s *Server) ListProducts(c *gin.Context) {
	var page pagination.Page
	if err := c.ShouldBindQuery(&page); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	page = page.Normalize()

	result, err := s.productSvc.List(c.Request.Context(), productdomain.ListRequest{
		Search:   strings.TrimSpace(c.Query("search")),
		Page:     page.Page,
		PageSize: page.PageSize,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, listProductsResponse{
		Products: result.Products,
		PageInfo: pagination.BuildPageInfo(page, result.TotalCount),
	})
}

func (s *Server) CreateProduct(c *gin.Context) {
	var in productdomain.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.productSvc.Create(c.Request.Context(), in)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (s *Server) GetProductByID(c *gin.Context) {
	resp, err := s.productSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) UpdateProduct(c *gin.Context) {
	var in productdomain.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.productSvc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) DeleteProduct(c *gin.Context) {
	if err := s.productSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (s *Server) ProductQR(c *gin.Context) {
	resp, err := s.productSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	png, err := share.QRPNG(s.publicProductURL(currentTenantSlug(c), resp.Slug))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (s *Server) ProductShareCard(c *gin.Context) {
	resp, err := s.productSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	tenantSlug := currentTenantSlug(c)
	companyName := tenantSlug
	if userID, ok := currentUserID(c); ok {
		if tenant, err := s.tenantSvc.GetByOwner(c.Request.Context(), userID); err == nil {
			companyName = tenant.CompanyName
		}
	}

	card, err := share.Card(share.CardData{
		CompanyName: companyName,
		ProductName: resp.Name,
		Price:       resp.Price,
		Description: resp.Description,
		URL:         s.publicProductURL(tenantSlug, resp.Slug),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+resp.Slug+`-share-card.pdf"`)
	c.DataFromReader(http.StatusOK, -1, "application/pdf", card, nil)
}

func (s *Server) publicProductURL(tenantSlug, productSlug string) string {
	base := strings.TrimRight(s.cfg.PublicBaseURL, "/")
	return base + "/" + tenantSlug + "/product/" + productSlug
}
