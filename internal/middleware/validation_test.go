package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/saas-platform-api/pkg/logger"
)

type ValidationMiddlewareTestSuite struct {
	suite.Suite
	m *ValidationMiddleware
}

func TestValidationMiddleware(t *testing.T) {
	suite.Run(t, new(ValidationMiddlewareTestSuite))
}

func (s *ValidationMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.m = NewValidationMiddleware(logger.NewNop())
}

func (s *ValidationMiddlewareTestSuite) serve(handler gin.HandlerFunc, req *http.Request, next gin.HandlerFunc) *httptest.ResponseRecorder {
	router := gin.New()
	router.Any("/*path", handler, next)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func ok(c *gin.Context) { c.Status(http.StatusNoContent) }

func (s *ValidationMiddlewareTestSuite) TestSanitizeInput_StripsControlCharacters() {
	// Arrange
	req := httptest.NewRequest(http.MethodGet, "/customers?searchTerm=jane%00%07doe", nil)
	var seen string

	// Act
	w := s.serve(s.m.SanitizeInput(), req, func(c *gin.Context) {
		seen = c.Query("searchTerm")
		ok(c)
	})

	// Assert
	s.Equal(http.StatusNoContent, w.Code)
	s.Equal("janedoe", seen)
}

func (s *ValidationMiddlewareTestSuite) TestBlockSuspiciousPatterns() {
	tests := []struct {
		name    string
		target  string
		blocked bool
	}{
		{name: "plain search", target: "/customers?searchTerm=acme", blocked: false},
		{name: "union select", target: "/customers?searchTerm=1%20UNION%20SELECT%20password", blocked: true},
		{name: "script tag", target: "/customers?searchTerm=%3Cscript%3Ealert(1)", blocked: true},
		{name: "path traversal", target: "/customers?file=..%2F..%2Fetc%2Fpasswd", blocked: true},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			// Act
			w := s.serve(s.m.BlockSuspiciousPatterns(), httptest.NewRequest(http.MethodGet, tt.target, nil), ok)

			// Assert
			if tt.blocked {
				s.Equal(http.StatusBadRequest, w.Code)
			} else {
				s.Equal(http.StatusNoContent, w.Code)
			}
		})
	}
}

func (s *ValidationMiddlewareTestSuite) TestValidateContentType() {
	// Arrange
	req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader("<xml/>"))
	req.Header.Set("Content-Type", "application/xml")

	// Act
	w := s.serve(s.m.ValidateContentType("application/json"), req, ok)

	// Assert
	s.Equal(http.StatusUnsupportedMediaType, w.Code)
	s.Contains(w.Body.String(), "application/json")
}

func (s *ValidationMiddlewareTestSuite) TestValidateContentType_AcceptsCharset() {
	// Arrange
	req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	// Act
	w := s.serve(s.m.ValidateContentType("application/json"), req, ok)

	// Assert
	s.Equal(http.StatusNoContent, w.Code)
}

func (s *ValidationMiddlewareTestSuite) TestValidateRequestSize() {
	// Arrange
	req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(strings.Repeat("a", 64)))

	// Act
	w := s.serve(s.m.ValidateRequestSize(16), req, ok)

	// Assert
	s.Equal(http.StatusRequestEntityTooLarge, w.Code)
}

func TestSanitizeString(t *testing.T) {
	m := NewValidationMiddleware(logger.NewNop())
	assert.Equal(t, "line\nbreak\ttab", m.sanitizeString("line\nbreak\ttab\x00\x1b"))
}

func (s *ValidationMiddlewareTestSuite) TestBlockSuspiciousPatterns_IgnoresCredentials() {
	// Arrange
	req := httptest.NewRequest(http.MethodGet, "/customers", nil)
	req.Header.Set("Authorization", "Bearer a--b")
	req.Header.Set("Cookie", "session=x--y")

	// Act
	w := s.serve(s.m.BlockSuspiciousPatterns(), req, ok)

	// Assert
	s.Equal(http.StatusNoContent, w.Code)
}

func TestMatchRule_ReportsCategory(t *testing.T) {
	tests := []struct {
		input    string
		category string
	}{
		{"1 UNION SELECT password", "sql_injection"},
		{"<IFRAME src=x>", "xss"},
		{"%2E%2E%2Fetc", "path_traversal"},
		{"Jane O'Neil", ""},
	}

	for _, tt := range tests {
		category, found := matchRule(tt.input)
		assert.Equal(t, tt.category != "", found, tt.input)
		assert.Equal(t, tt.category, category, tt.input)
	}
}
