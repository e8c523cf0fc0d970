package config

import (
	"os"
	"time"

	"FoodBook-Backend/internal/api/handlers"
	"FoodBook-Backend/internal/api/routes"
	"FoodBook-Backend/internal/middleware"
	"FoodBook-Backend/internal/utils"
	"FoodBook-Backend/internal/utils/mailing"
	"FoodBook-Backend/internal/utils/storage"
	"FoodBook-Backend/pkg/ingredient"
	"FoodBook-Backend/pkg/jwt"
	"FoodBook-Backend/pkg/recipe"
	"FoodBook-Backend/pkg/schedule"
	"FoodBook-Backend/pkg/token"
	"FoodBook-Backend/pkg/user"
	"FoodBook-Backend/pkg/wizard"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	mailer := mailing.NewSMTPMailer()

	// Wizard drafts live in redis when an address is configured, in
	// process memory otherwise.
	var draftStore wizard.DraftStore
	if addr := utils.GetConfig("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: utils.GetConfig("REDIS_PASSWORD"),
		})
		draftStore = wizard.NewRedisDraftStore(client)
	} else {
		draftStore = wizard.NewMemoryDraftStore()
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	tokenRepository := token.NewTokenRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	wizardRepository := wizard.NewWizardRepository(db)
	scheduleRepository := schedule.NewScheduleRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	tokenService := token.NewTokenService(tokenRepository)
	userService := user.NewUserService(userRepository, tokenService, jwtService, mailer, s3)
	ingredientService := ingredient.NewIngredientService(ingredientRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, s3)
	wizardService := wizard.NewWizardService(wizardRepository, draftStore)
	scheduleService := schedule.NewScheduleService(scheduleRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	wizardHandler := handlers.NewWizardHandler(wizardService, validator)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		IngredientHandler: ingredientHandler,
		RecipeHandler:     recipeHandler,
		WizardHandler:     wizardHandler,
		ScheduleHandler:   scheduleHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
		UserService:       userService,
	}
	routesConfig.Setup()
	return app, nil
}
