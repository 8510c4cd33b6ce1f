package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"hris-payroll/internal/shared/contextutil"
	"hris-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// AuthMiddleware verifies the bearer token and puts the caller's
// employeeNumber into both the Gin context and the request context.
// A missing credential is 401, a credential that fails verification is 403;
// either aborts before any handler runs.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		zap.L().Debug("auth check",
			zap.Bool("header_present", authHeader != ""),
			zap.Bool("token_present", tokenString != ""),
		)

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "No token provided")
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			zap.L().Debug("token verification failed", zap.Error(err))
			response.Error(c, http.StatusForbidden, "Invalid token")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusForbidden, "Invalid token")
			c.Abort()
			return
		}

		employeeNumber, ok := claims["employeeNumber"].(string)
		if !ok || employeeNumber == "" {
			response.Error(c, http.StatusForbidden, "Invalid token")
			c.Abort()
			return
		}

		role, _ := claims["role"].(string)

		c.Set("employee_number", employeeNumber)
		c.Set("role", role)

		ctx := contextutil.WithEmployeeNumber(c.Request.Context(), employeeNumber)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RoleMiddleware restricts a route to callers whose token carries one of the
// allowed roles. Runs after AuthMiddleware.
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString("role")

		for _, role := range allowedRoles {
			if userRole == role {
				c.Next()
				return
			}
		}

		response.Error(c, http.StatusForbidden, "You do not have permission to access this resource")
		c.Abort()
	}
}
