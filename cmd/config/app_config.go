package config

import (
	"os"
	"time"

	"pantrypal-backend/internal/api/handlers"
	"pantrypal-backend/internal/api/routes"
	"pantrypal-backend/internal/middleware"
	"pantrypal-backend/internal/utils"
	"pantrypal-backend/internal/utils/storage"
	"pantrypal-backend/pkg/ai"
	"pantrypal-backend/pkg/dashboard"
	"pantrypal-backend/pkg/feedback"
	"pantrypal-backend/pkg/history"
	"pantrypal-backend/pkg/household"
	"pantrypal-backend/pkg/jwt"
	"pantrypal-backend/pkg/mealplan"
	"pantrypal-backend/pkg/pantry"
	"pantrypal-backend/pkg/recipes"
	"pantrypal-backend/pkg/shoppinglist"
	"pantrypal-backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
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

	// Repository
	userRepository := user.NewUserRepository(db)
	householdRepository := household.NewHouseholdRepository(db)
	pantryRepository := pantry.NewPantryRepository(db)
	shoppingRepository := shoppinglist.NewShoppingListRepository(db)
	mealPlanRepository := mealplan.NewMealPlanRepository(db)
	recipeRepository := recipes.NewSavedRecipeRepository(db)
	historyRepository := history.NewRecipeHistoryRepository(db)
	dashboardRepository := dashboard.NewDashboardRepository(db)
	feedbackRepository := feedback.NewFeedbackRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(
		userRepository,
		jwtService,
		user.NewGoogleAuthClient(),
		user.NewSMTPMailer(),
		s3,
		utils.GetConfig("APP_URL"),
	)
	householdService := household.NewHouseholdService(householdRepository)
	pantryService := pantry.NewPantryService(pantryRepository, householdService)
	shoppingService := shoppinglist.NewShoppingListService(shoppingRepository, pantryRepository, householdService)
	mealPlanService := mealplan.NewMealPlanService(mealPlanRepository, pantryRepository, shoppingRepository, householdService)
	recipeService := recipes.NewSavedRecipeService(recipeRepository)
	historyService := history.NewRecipeHistoryService(historyRepository, householdService)
	aiService := ai.NewAIService(ai.NewGeminiClient(), pantryRepository, userRepository, historyService, householdService)
	dashboardService := dashboard.NewDashboardService(dashboardRepository, householdService)
	feedbackService := feedback.NewFeedbackService(feedbackRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	householdHandler := handlers.NewHouseholdHandler(householdService, validator)
	pantryHandler := handlers.NewPantryHandler(pantryService, validator)
	shoppingHandler := handlers.NewShoppingListHandler(shoppingService, validator)
	mealPlanHandler := handlers.NewMealPlanHandler(mealPlanService, validator)
	recipeHandler := handlers.NewSavedRecipeHandler(recipeService, validator)
	historyHandler := handlers.NewRecipeHistoryHandler(historyService)
	aiHandler := handlers.NewAIHandler(aiService, validator)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		HouseholdHandler:    householdHandler,
		PantryHandler:       pantryHandler,
		ShoppingListHandler: shoppingHandler,
		MealPlanHandler:     mealPlanHandler,
		SavedRecipeHandler:  recipeHandler,
		HistoryHandler:      historyHandler,
		AIHandler:           aiHandler,
		DashboardHandler:    dashboardHandler,
		FeedbackHandler:     feedbackHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
