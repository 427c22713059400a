package identity

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubTokenizer struct {
	claims map[string]interface{}
}

func (s stubTokenizer) Generate(map[string]interface{}, time.Duration) (string, error) {
	return "", nil
}

func (s stubTokenizer) Decode(token string) (map[string]interface{}, error) {
	if token != "good" {
		return nil, errors.New("invalid token")
	}
	return s.claims, nil
}

func TestAuthoriz(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(claims map[string]interface{}) *gin.Engine {
		r := gin.New()
		r.GET("/", Authoriz(stubTokenizer{claims: claims}), func(c *gin.Context) {
			c.String(http.StatusOK, c.GetString(ContextSubject))
		})
		return r
	}

	tests := []struct {
		name   string
		header string
		claims map[string]interface{}
		code   int
		body   string
	}{
		{name: "missing header", code: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic good", code: http.StatusUnauthorized},
		{name: "no token", header: "Bearer", code: http.StatusUnauthorized},
		{name: "rejected token", header: "Bearer bad", code: http.StatusUnauthorized},
		{name: "no subject", header: "Bearer good", claims: map[string]interface{}{"role": "admin"}, code: http.StatusUnauthorized},
		{name: "valid", header: "bearer good", claims: map[string]interface{}{"sub": "ci"}, code: http.StatusOK, body: "ci"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			newRouter(tt.claims).ServeHTTP(w, req)

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, tt.body, w.Body.String())
		})
	}
}
