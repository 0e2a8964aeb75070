package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kingrain94/notes-api/internal/api/dto"
	"github.com/kingrain94/notes-api/pkg/logger"
)

type ValidationMiddleware struct {
	logger *logger.Logger
}

func NewValidationMiddleware(logger *logger.Logger) *ValidationMiddleware {
	return &ValidationMiddleware{
		logger: logger,
	}
}

// RejectControlCharacters refuses paths and query values carrying NUL or other
// control characters.
func (m *ValidationMiddleware) RejectControlCharacters() gin.HandlerFunc {
	return func(c *gin.Context) {
		if hasControlCharacter(c.Request.URL.Path) {
			m.reject(c, "path", c.Request.URL.Path)
			return
		}

		for key, values := range c.Request.URL.Query() {
			for _, value := range values {
				if hasControlCharacter(key) || hasControlCharacter(value) {
					m.reject(c, key, value)
					return
				}
			}
		}

		c.Next()
	}
}

func (m *ValidationMiddleware) reject(c *gin.Context, key, value string) {
	m.logger.Warn("Blocked request with control characters",
		zap.String("key", key),
		zap.String("value", value),
		zap.String("ip", c.ClientIP()))
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.Error{Error: "invalid request", Code: dto.CodeValidation})
}

// ValidateContentType ensures only allowed content types on requests with a body
func (m *ValidationMiddleware) ValidateContentType(allowedTypes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodDelete || c.Request.ContentLength == 0 {
			c.Next()
			return
		}

		contentType := strings.TrimSpace(strings.Split(c.GetHeader("Content-Type"), ";")[0])
		if contentType == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.Error{Error: "Content-Type header is required", Code: dto.CodeValidation})
			return
		}

		if !slices.Contains(allowedTypes, contentType) {
			c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, dto.Error{
				Error: "unsupported Content-Type, expected " + strings.Join(allowedTypes, " or "),
				Code:  dto.CodeUnsupportedMediaType,
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
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, dto.Error{Error: "request body too large", Code: dto.CodeRequestTooLarge})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	}
}

func hasControlCharacter(input string) bool {
	return strings.ContainsFunc(input, func(r rune) bool {
		return r < 32 && r != '\n' && r != '\r' && r != '\t'
	})
}
