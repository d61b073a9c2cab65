package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/storefrontlabs/vitrina/internal/media"
	"github.com/storefrontlabs/vitrina/internal/observability/logger"
)

// UploadImages pushes each file of the multipart batch to the media host,
// one at a time. A mid-batch failure returns the URLs that did land; nothing
// is rolled back.
func (s *Server) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		AbortWithError(c, newValidationError("images", "images_required", "at least one image is required"))
		return
	}
	if len(files) > media.MaxImagesPerProduct {
		AbortWithError(c, newValidationError("images", "too_many_images", "a product may carry at most 7 images"))
		return
	}

	folder, err := s.mediaFolder(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	ctx := c.Request.Context()
	urls := make([]string, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			AbortWithError(c, invalidRequestError())
			return
		}

		url, err := s.mediaProvider.Upload(ctx, f, fh.Filename, folder)
		_ = f.Close()
		if err != nil {
			if s.obsMetrics != nil {
				s.obsMetrics.RecordMediaUpload(ctx, "error")
			}
			logger.FromContext(ctx).Error("image upload failed",
				zap.String("folder", folder),
				zap.String("filename", fh.Filename),
				zap.Error(err),
			)
			c.JSON(http.StatusBadGateway, gin.H{
				"uploaded": urls,
				"error": gin.H{
					"type":    "upload_failed",
					"message": "image upload failed",
				},
			})
			return
		}

		if s.obsMetrics != nil {
			s.obsMetrics.RecordMediaUpload(ctx, "ok")
		}
		urls = append(urls, url)
	}

	c.JSON(http.StatusOK, gin.H{"uploaded": urls})
}

// DeleteMediaFolder is the one endpoint that issues deletes with service
// credentials. The folder must live under the caller's own tenant prefix.
func (s *Server) DeleteMediaFolder(c *gin.Context) {
	var req struct {
		Folder string `json:"folder" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	folder := strings.Trim(strings.TrimSpace(req.Folder), "/")
	tenantSlug := currentTenantSlug(c)
	if folder == "" || !(folder == tenantSlug || strings.HasPrefix(folder, tenantSlug+"/")) {
		AbortWithError(c, ErrForbidden)
		return
	}

	ctx := c.Request.Context()
	if err := s.mediaProvider.DeleteFolder(ctx, folder); err != nil {
		if s.obsMetrics != nil {
			s.obsMetrics.RecordMediaDeleteFailure(ctx)
		}
		logger.FromContext(ctx).Error("media folder delete failed",
			zap.String("folder", folder),
			zap.Error(err),
		)
		c.JSON(http.StatusBadGateway, gin.H{"success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) mediaFolder(c *gin.Context) (string, error) {
	tenantSlug := currentTenantSlug(c)
	sub := strings.Trim(strings.TrimSpace(c.PostForm("folder")), "/")
	if sub == "" {
		return tenantSlug, nil
	}
	if strings.Contains(sub, "..") {
		return "", newValidationError("folder", "invalid_folder", "invalid value")
	}
	if strings.HasPrefix(sub, tenantSlug+"/") || sub == tenantSlug {
		return sub, nil
	}
	return tenantSlug + "/" + sub, nil
}
