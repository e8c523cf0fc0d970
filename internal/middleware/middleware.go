package middleware

import (
	"strings"

	"FoodBook-Backend/domain"
	"FoodBook-Backend/internal/api/presenters"
	"FoodBook-Backend/pkg/jwt"
	"FoodBook-Backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		// AuthMiddleware requires a valid bearer token. Browser GETs
		// without one are redirected to the login page with the original
		// path carried in "next", everything else gets a 401.
		AuthMiddleware(jwtService jwt.JWTService, userService user.UserService) fiber.Handler
		// OptionalAuthMiddleware sets user_id when a valid token is
		// present and lets the request through either way. Public pages
		// use it to render viewer-specific bits like liked_by_me.
		OptionalAuthMiddleware(jwtService jwt.JWTService, userService user.UserService) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	})
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// resolveUser validates the token and the session behind it, returning the
// user id or an error.
func resolveUser(c *fiber.Ctx, jwtService jwt.JWTService, userService user.UserService) (string, error) {
	token := bearerToken(c)
	if token == "" {
		return "", domain.ErrTokenInvalid
	}

	userID, issuedAt, err := jwtService.GetUserIDByToken(token)
	if err != nil {
		return "", domain.ErrTokenInvalid
	}

	if err := userService.VerifySession(c.Context(), userID, issuedAt); err != nil {
		return "", err
	}
	return userID, nil
}

func (m *middleware) AuthMiddleware(jwtService jwt.JWTService, userService user.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := resolveUser(c, jwtService, userService)
		if err != nil {
			if c.Method() == fiber.MethodGet {
				return c.Redirect("/api/v1/users/login?next="+c.Path(), fiber.StatusFound)
			}
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, err)
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}

func (m *middleware) OptionalAuthMiddleware(jwtService jwt.JWTService, userService user.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if userID, err := resolveUser(c, jwtService, userService); err == nil {
			c.Locals("user_id", userID)
		}
		return c.Next()
	}
}
