package v1

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/fire_ops_system/internal/audit"
	"github.com/shenikar/fire_ops_system/internal/config"
	"github.com/sirupsen/logrus"
)

const (
	requestIDKey    = "request_id"
	requestIDHeader = "X-Request-ID"
	userIDHeader    = "X-User-ID"
)

// APIKeyAuthMiddleware - middleware для аутентификации по API-ключу
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			// Проверяем также заголовок Authorization: Bearer
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				apiKey = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if apiKey == "" {
			log.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		isValid := false
		for _, key := range cfg.APIKeys {
			if key == apiKey {
				isValid = true
				break
			}
		}

		if !isValid {
			log.Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Next()
	}
}

// CORSMiddleware открывает API для браузерного портала граждан.
// Без CORS_ALLOWED_ORIGINS разрешены любые источники.
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AddAllowHeaders("Authorization", "X-API-Key", userIDHeader, requestIDHeader)
	corsConfig.AddExposeHeaders("Content-Length", "Content-Disposition", requestIDHeader)
	return cors.New(corsConfig)
}

// ActorMiddleware кладет пользователя из X-User-ID в контекст запроса для журнала аудита
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := strings.TrimSpace(c.GetHeader(userIDHeader)); userID != "" {
			c.Request = c.Request.WithContext(audit.WithActor(c.Request.Context(), userID))
		}
		c.Next()
	}
}

// RequestLogger присваивает запросу id и пишет строку лога по завершении
func RequestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Header(requestIDHeader, requestID)

		c.Next()

		entry := log.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.FullPath(),
			"status":     c.Writer.Status(),
			"user_id":    audit.ActorFromContext(c.Request.Context()),
		})
		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			entry.Error("HTTP request failed")
		case c.Writer.Status() >= http.StatusBadRequest:
			entry.Warn("HTTP request rejected")
		default:
			entry.Debug("HTTP request served")
		}
	}
}
