package serverutils

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JwtMiddleware verifies externally issued bearer tokens. Verification only:
// identity is managed elsewhere, and when JWT_SECRET is unset the middleware
// passes everything through so local setups work without an issuer.
func JwtMiddleware(ctx *fiber.Ctx) error {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return ctx.Next()
	}

	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "missing token"))
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "invalid token"))
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "invalid claims"))
	}

	if sub, ok := claims["sub"].(string); ok {
		ctx.Locals("subject", sub)
	}
	return ctx.Next()
}
