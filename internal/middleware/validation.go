package middleware

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kingrain94/saas-platform-api/internal/api/dto"
	"github.com/kingrain94/saas-platform-api/pkg/logger"
)

type suspiciousRule struct {
	category string
	pattern  *regexp.Regexp
}

func rules(category string, patterns ...string) []suspiciousRule {
	out := make([]suspiciousRule, len(patterns))
	for i, p := range patterns {
		out[i] = suspiciousRule{category: category, pattern: regexp.MustCompile(p)}
	}
	return out
}

var suspiciousRules = concatRules(
	rules("sql_injection",
		`(?i)(\bUNION\b.*\bSELECT\b)`,
		`(?i)(\bOR\b.*=.*\bOR\b)`,
		`(?i)(\bAND\b.*=.*\bAND\b)`,
		`(?i)(\bINSERT\b.*\bINTO\b)`,
		`(?i)(\bDELETE\b.*\bFROM\b)`,
		`(?i)(\bUPDATE\b.*\bSET\b)`,
		`(?i)(\bDROP\b.*\bTABLE\b)`,
		`(?i)(\bALTER\b.*\bTABLE\b)`,
		`--`,
		`/\*.*\*/`,
	),
	rules("xss",
		`(?i)<script.*?>`,
		`(?i)javascript:`,
		`(?i)\bon(load|click|error)=`,
		`(?i)<(iframe|object|embed).*?>`,
	),
	rules("path_traversal",
		`\.\./`,
		`\.\.\\`,
		`(?i)%2e%2e(%2f|%5c)`,
	),
)

func concatRules(groups ...[]suspiciousRule) []suspiciousRule {
	var out []suspiciousRule
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// Credentials are opaque and never inspected or rewritten.
var skippedHeaders = map[string]bool{
	"Authorization": true,
	"Cookie":        true,
}

type ValidationMiddleware struct {
	logger *logger.Logger
}

func NewValidationMiddleware(logger *logger.Logger) *ValidationMiddleware {
	return &ValidationMiddleware{
		logger: logger,
	}
}

// SanitizeInput strips null bytes and control characters from query values
// and headers before binding sees them.
func (m *ValidationMiddleware) SanitizeInput() gin.HandlerFunc {
	return func(c *gin.Context) {
		// URL.Query returns a copy, so the cleaned values are written back
		query := c.Request.URL.Query()
		if m.sanitizeAll("query", query) {
			c.Request.URL.RawQuery = query.Encode()
		}
		m.sanitizeAll("header", c.Request.Header)

		c.Next()
	}
}

func (m *ValidationMiddleware) sanitizeAll(source string, values map[string][]string) bool {
	changed := false
	for key, list := range values {
		if source == "header" && skippedHeaders[key] {
			continue
		}
		for i, value := range list {
			sanitized := m.sanitizeString(value)
			if sanitized == value {
				continue
			}
			m.logger.Info("Sanitized request input",
				zap.String("source", source),
				zap.String("key", key),
				zap.Int("removed", len(value)-len(sanitized)))
			list[i] = sanitized
			changed = true
		}
	}
	return changed
}

// ValidateContentType rejects bodies whose media type is not in allowedTypes.
// Requests without a body pass.
func (m *ValidationMiddleware) ValidateContentType(allowedTypes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodDelete || c.Request.ContentLength == 0 {
			c.Next()
			return
		}

		contentType := c.GetHeader("Content-Type")
		if contentType == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.Fail("Content-Type header is required"))
			return
		}

		mediaType := strings.TrimSpace(strings.Split(contentType, ";")[0])
		for _, allowedType := range allowedTypes {
			if strings.EqualFold(mediaType, allowedType) {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, dto.Fail("Unsupported Content-Type", allowedTypes...))
	}
}

// ValidateRequestSize limits request body size
func (m *ValidationMiddleware) ValidateRequestSize(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxSize {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
				dto.Fail("Request body too large", fmt.Sprintf("maximum size is %d bytes", maxSize)))
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	}
}

// BlockSuspiciousPatterns rejects requests whose path, query values or
// headers look like injection or traversal attempts.
func (m *ValidationMiddleware) BlockSuspiciousPatterns() gin.HandlerFunc {
	return func(c *gin.Context) {
		source, key, category, found := m.inspect(c.Request)
		if !found {
			c.Next()
			return
		}

		m.logger.Warn("Blocked suspicious request",
			zap.String("source", source),
			zap.String("key", key),
			zap.String("category", category),
			zap.String("path", c.Request.URL.Path),
			zap.String("ip", c.ClientIP()))
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.Fail("Invalid request"))
	}
}

func (m *ValidationMiddleware) inspect(r *http.Request) (source, key, category string, found bool) {
	if category, found = matchRule(r.URL.Path); found {
		return "path", "", category, true
	}
	for key, values := range r.URL.Query() {
		for _, value := range values {
			if category, found = matchRule(value); found {
				return "query", key, category, true
			}
		}
	}
	for key, values := range r.Header {
		if skippedHeaders[key] {
			continue
		}
		for _, value := range values {
			if category, found = matchRule(value); found {
				return "header", key, category, true
			}
		}
	}
	return "", "", "", false
}

func matchRule(input string) (string, bool) {
	for _, rule := range suspiciousRules {
		if rule.pattern.MatchString(input) {
			return rule.category, true
		}
	}
	return "", false
}

// sanitizeString drops null bytes and control characters other than
// newline, carriage return and tab.
func (m *ValidationMiddleware) sanitizeString(input string) string {
	return strings.Map(func(r rune) rune {
		if r >= 32 || r == '\n' || r == '\r' || r == '\t' {
			return r
		}
		return -1
	}, input)
}
