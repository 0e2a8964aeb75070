package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/kingrain94/notes-api/pkg/logger"
)

func newValidationRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := NewValidationMiddleware(logger.NewNop())

	router := gin.New()
	router.Use(m.RejectControlCharacters(), m.ValidateRequestSize(64), m.ValidateContentType("application/json"))
	router.Any("/notes", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func TestValidationMiddleware(t *testing.T) {
	router := newValidationRouter()

	tests := []struct {
		name        string
		method      string
		target      string
		body        string
		contentType string
		want        int
	}{
		{"json post", http.MethodPost, "/notes", `{"title":"a"}`, "application/json; charset=utf-8", http.StatusOK},
		{"get without content type", http.MethodGet, "/notes", "", "", http.StatusOK},
		{"missing content type", http.MethodPost, "/notes", `{"title":"a"}`, "", http.StatusBadRequest},
		{"form body", http.MethodPut, "/notes", "title=a", "application/x-www-form-urlencoded", http.StatusUnsupportedMediaType},
		{"oversized body", http.MethodPost, "/notes", strings.Repeat("x", 65), "application/json", http.StatusRequestEntityTooLarge},
		{"control character in query", http.MethodGet, "/notes?q=%00", "", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}
