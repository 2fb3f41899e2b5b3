package middleware

import (
	"fmt"
	"strings"
	"time"

	"skillforge/config"
	"skillforge/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT generates a JWT token for the user, valid for 7 days
func GenerateJWT(userID uint, role models.Role) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"role":   string(role),
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(7 * 24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// JWTMiddleware is a middleware to check for valid JWT token in the request
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Missing or invalid Authorization header")
	}

	// The token should be prefixed with "Bearer "
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Invalid Authorization header format")
	}

	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})

	if err != nil || !token.Valid {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token payload")
	}

	// JWT numeric claims decode as float64
	userID := claims["userId"].(float64)
	c.Locals("userId", uint(userID))

	if role, ok := claims["role"].(string); ok {
		c.Locals("role", models.Role(role))
	}

	return c.Next()
}

// ErrorResponse writes the uniform error body used across the API
func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"error": message,
	})
}

// ServerErrorResponse hides failure detail outside development mode
func ServerErrorResponse(c *fiber.Ctx, err error) error {
	if config.IsDevelopment() && err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Server error",
			"message": err.Error(),
		})
	}
	return ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
}

// ValidationErrorResponse reports field-level validation failures
func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  "Validation failed",
		"fields": errors,
	})
}
