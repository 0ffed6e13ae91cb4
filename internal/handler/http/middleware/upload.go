package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/peiwenliu/sharecircle/internal/domain/contract"
	"github.com/peiwenliu/sharecircle/internal/handler/http/dto"
)

// MaxImageSize caps uploads at 1MB.
const MaxImageSize = 1 << 20

// Upload stores the multipart "image" file and puts its public URI on the
// context under ContextImageKey. With required=false a request without an
// image passes through untouched, which is how edits keep their existing
// picture.
func Upload(storage contract.IImageStorage, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("image")
		if err != nil {
			if required {
				c.AbortWithStatusJSON(http.StatusBadRequest, dto.Fail("image is required"))
				return
			}
			c.Next()
			return
		}
		if fileHeader.Size > MaxImageSize {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.Fail("image exceeds the 1MB limit"))
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Fail("unknown error"))
			return
		}
		defer file.Close()

		// Sniff the real content type; the client header is not trusted.
		head := make([]byte, 512)
		n, err := file.Read(head)
		if err != nil && err != io.EOF {
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Fail("unknown error"))
			return
		}
		contentType := http.DetectContentType(head[:n])
		if contentType != "image/jpeg" && contentType != "image/png" {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.Fail("only jpeg and png images are accepted"))
			return
		}

		reader := io.MultiReader(bytes.NewReader(head[:n]), file)
		uri, err := storage.Upload(c.Request.Context(), fileHeader.Filename, contentType, fileHeader.Size, reader)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Fail("failed to store image"))
			return
		}

		c.Set(ContextImageKey, uri)
		c.Next()
	}
}

// UploadedImage returns the URI set by Upload, or "".
func UploadedImage(c *gin.Context) string {
	return c.GetString(ContextImageKey)
}
