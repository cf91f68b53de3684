package middleware

import (
	"fmt"
	"ilmhub/config"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// Caller is the resolved identity of a request. Anonymous callers are
// represented explicitly rather than by a missing context value, so optional
// endpoints never have to guess why identity is absent.
type Caller struct {
	ID        uint
	Role      string
	Gender    string
	Anonymous bool
}

// GenerateJWT generates a JWT token for the user
func GenerateJWT(userID uint, name, role, gender, email string) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"name":   name,
		"role":   role,
		"gender": gender,
		"email":  email,
		"iat":    time.Now().Unix(),                     // issued at
		"exp":    time.Now().Add(24 * time.Hour).Unix(), // expiry 24h
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// parseBearer extracts and validates the Bearer token from the request.
func parseBearer(c *fiber.Ctx) (jwt.MapClaims, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, fmt.Errorf("missing Authorization header")
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, fmt.Errorf("invalid Authorization header format")
	}
	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil {
		return nil, fmt.Errorf("invalid token payload")
	}
	return claims, nil
}

func callerFromClaims(claims jwt.MapClaims) Caller {
	caller := Caller{}
	if id, ok := claims["userId"].(float64); ok { // JWT numbers decode as float64
		caller.ID = uint(id)
	}
	if role, ok := claims["role"].(string); ok {
		caller.Role = role
	}
	if gender, ok := claims["gender"].(string); ok {
		caller.Gender = gender
	}
	return caller
}

// JWTMiddleware is a middleware to check for valid JWT token in the request
func JWTMiddleware(c *fiber.Ctx) error {
	claims, err := parseBearer(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	caller := callerFromClaims(claims)
	c.Locals("userId", caller.ID)
	c.Locals("caller", caller)

	// If valid, continue to the next handler
	return c.Next()
}

// OptionalJWTMiddleware resolves the caller when a valid token is present and
// continues as an explicit anonymous caller otherwise. Used by endpoints that
// answer for everyone, like the enrollment status lookup.
func OptionalJWTMiddleware(c *fiber.Ctx) error {
	claims, err := parseBearer(c)
	if err != nil {
		c.Locals("caller", Caller{Anonymous: true})
		return c.Next()
	}

	caller := callerFromClaims(claims)
	c.Locals("userId", caller.ID)
	c.Locals("caller", caller)
	return c.Next()
}

func JsonResponse(c *fiber.Ctx, statusCode int, success bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"success": success,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusBadRequest, false, "Validation failed!", errors)
}
