package middleware

import (
	"mime"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kingrain94/rent-dashboard/pkg/logger"
)

const formContentType = "application/x-www-form-urlencoded"

type ValidationMiddleware struct {
	logger *logger.Logger
}

func NewValidationMiddleware(logger *logger.Logger) *ValidationMiddleware {
	return &ValidationMiddleware{
		logger: logger,
	}
}

// SanitizeInput strips control characters from query parameters and from
// tenant form fields before they reach a handler. Newlines and tabs survive
// so multi-line notes keep their layout.
func (m *ValidationMiddleware) SanitizeInput() gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Request.URL.Query()
		if m.sanitizeValues("query", query) {
			c.Request.URL.RawQuery = query.Encode()
		}

		if c.Request.Method == http.MethodPost && mediaType(c.GetHeader("Content-Type")) == formContentType {
			if err := c.Request.ParseForm(); err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Malformed form body"})
				return
			}
			m.sanitizeValues("form", c.Request.PostForm)
			m.sanitizeValues("form", c.Request.Form)
		}

		c.Next()
	}
}

// ValidateContentType rejects request bodies that are not one of allowedTypes.
func (m *ValidationMiddleware) ValidateContentType(allowedTypes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength == 0 || c.Request.Method == http.MethodGet || c.Request.Method == http.MethodDelete {
			c.Next()
			return
		}

		contentType := mediaType(c.GetHeader("Content-Type"))
		if contentType == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Content-Type header is required"})
			return
		}
		if !slices.Contains(allowedTypes, contentType) {
			c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, gin.H{
				"error":         "Unsupported Content-Type",
				"allowed_types": allowedTypes,
			})
			return
		}

		c.Next()
	}
}

// ValidateRequestSize limits request body size
func (m *ValidationMiddleware) ValidateRequestSize(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxSize {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
				"error":    "Request body too large",
				"max_size": maxSize,
			})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	}
}

func (m *ValidationMiddleware) sanitizeValues(source string, values url.Values) bool {
	changed := false
	for key, list := range values {
		for i, value := range list {
			if clean := stripControl(value); clean != value {
				m.logger.Debug("Stripped control characters",
					zap.String("source", source),
					zap.String("key", key))
				list[i] = clean
				changed = true
			}
		}
	}
	return changed
}

func stripControl(input string) string {
	return strings.Map(func(r rune) rune {
		if r < 32 && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		if r == 127 {
			return -1
		}
		return r
	}, input)
}

// mediaType returns the lowercased media type without parameters, or "" when
// the header does not parse.
func mediaType(header string) string {
	if header == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	return mt
}
