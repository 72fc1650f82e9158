package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/locvowork/employee_service/internal/logger"
)

// RequestID tags each request with a UUID unless the caller sent one.
func RequestID() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	})
}

// RequestLogger attaches request-scoped fields to the context logger and
// logs each completed request. It must run after RequestID.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := logger.WithLogger(req.Context(), map[string]interface{}{
				"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
				"method":     req.Method,
				"path":       req.URL.Path,
			})
			c.SetRequest(req.WithContext(ctx))

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			logger.InfoLog(ctx, "request completed status=%d latency=%s", c.Response().Status, time.Since(start))
			return nil
		}
	}
}

// RequireJWT rejects requests without a valid HS256 bearer token signed with secret.
func RequireJWT(secret string) echo.MiddlewareFunc {
	key := []byte(secret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, ok := strings.CutPrefix(auth, "Bearer ")
			if !ok || raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			token, err := jwt.Parse(raw, func(token *jwt.Token) (any, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return key, nil
			})
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid bearer token").SetInternal(err)
			}

			if sub, err := token.Claims.GetSubject(); err == nil && sub != "" {
				ctx := logger.WithLogger(c.Request().Context(), map[string]interface{}{"subject": sub})
				c.SetRequest(c.Request().WithContext(ctx))
			}
			return next(c)
		}
	}
}
