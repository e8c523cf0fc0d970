package routes

import (
	"FoodBook-Backend/internal/api/handlers"
	"FoodBook-Backend/internal/middleware"
	"FoodBook-Backend/pkg/jwt"
	"FoodBook-Backend/pkg/user"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	IngredientHandler handlers.IngredientHandler
	RecipeHandler     handlers.RecipeHandler
	WizardHandler     handlers.WizardHandler
	ScheduleHandler   handlers.ScheduleHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
	UserService       user.UserService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Ingredients()
	c.Recipes()
	c.Wizard()
	c.Schedules()
	c.GuestRoute()
}

func (c *Config) auth() fiber.Handler {
	return c.Middleware.AuthMiddleware(c.JWTService, c.UserService)
}

func (c *Config) optionalAuth() fiber.Handler {
	return c.Middleware.OptionalAuthMiddleware(c.JWTService, c.UserService)
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Get("/activate", c.UserHandler.Activate)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/password/reset", c.UserHandler.ResetPassword)
		user.Post("/password/set", c.UserHandler.SetPassword)
		user.Get("/panel", c.auth(), c.UserHandler.GetPanel)
		user.Patch("/update", c.auth(), c.UserHandler.UpdateUser)
		user.Post("/avatar", c.auth(), c.UserHandler.UploadAvatar)
		user.Post("/password/update", c.auth(), c.UserHandler.UpdatePassword)
		user.Delete("/delete", c.auth(), c.UserHandler.DeleteUser)
	}
}

func (c *Config) Ingredients() {
	ingredients := c.App.Group("/api/v1/ingredients")

	ingredients.Get("", c.IngredientHandler.GetIngredients)
	ingredients.Get("/mine", c.auth(), c.IngredientHandler.GetMyIngredients)
	ingredients.Post("", c.auth(), c.IngredientHandler.AddIngredient)
	ingredients.Put("/:id", c.auth(), c.IngredientHandler.UpdateIngredient)
	ingredients.Delete("/:id", c.auth(), c.IngredientHandler.DeleteIngredient)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")

	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/mine", c.auth(), c.RecipeHandler.GetMyRecipes)
	recipes.Get("/:id", c.optionalAuth(), c.RecipeHandler.GetRecipeDetail)
	recipes.Delete("/:id", c.auth(), c.RecipeHandler.DeleteRecipe)
	recipes.Post("/:id/image", c.auth(), c.RecipeHandler.UploadRecipeImage)

	recipes.Post("/:id/like", c.auth(), c.RecipeHandler.LikeRecipe)
	recipes.Delete("/:id/like", c.auth(), c.RecipeHandler.UnlikeRecipe)

	recipes.Post("/:id/comments", c.auth(), c.RecipeHandler.AddComment)
	recipes.Delete("/comments/:comment_id", c.auth(), c.RecipeHandler.DeleteComment)
}

func (c *Config) Wizard() {
	wizard := c.App.Group("/api/v1/recipes/wizard", c.auth())

	wizard.Post("/start", c.WizardHandler.StartCreate)
	wizard.Post("/start/:id", c.WizardHandler.StartEdit)
	wizard.Get("/draft", c.WizardHandler.GetDraft)
	wizard.Delete("/draft", c.WizardHandler.Cancel)
	wizard.Post("/ingredients", c.WizardHandler.SubmitIngredients)
	wizard.Post("/details", c.WizardHandler.SubmitDetails)
	wizard.Post("/preparing", c.WizardHandler.SubmitPreparing)
	wizard.Post("/quantities", c.WizardHandler.SubmitQuantities)
	wizard.Post("/complete", c.WizardHandler.Complete)
}

func (c *Config) Schedules() {
	schedules := c.App.Group("/api/v1/schedules")

	schedules.Get("", c.ScheduleHandler.GetSchedules)
	schedules.Get("/mine", c.auth(), c.ScheduleHandler.GetMySchedules)
	schedules.Get("/:id", c.optionalAuth(), c.ScheduleHandler.GetScheduleDetail)
	schedules.Post("", c.auth(), c.ScheduleHandler.AddSchedule)
	schedules.Put("/:id", c.auth(), c.ScheduleHandler.UpdateSchedule)
	schedules.Delete("/:id", c.auth(), c.ScheduleHandler.DeleteSchedule)

	schedules.Post("/:id/slots", c.auth(), c.ScheduleHandler.SetSlot)
	schedules.Delete("/:id/slots", c.auth(), c.ScheduleHandler.ClearSlot)

	schedules.Post("/:id/like", c.auth(), c.ScheduleHandler.LikeSchedule)
	schedules.Delete("/:id/like", c.auth(), c.ScheduleHandler.UnlikeSchedule)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
