package routes

import (
	"pantrypal-backend/internal/api/handlers"
	"pantrypal-backend/internal/middleware"
	"pantrypal-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	HouseholdHandler    handlers.HouseholdHandler
	PantryHandler       handlers.PantryHandler
	ShoppingListHandler handlers.ShoppingListHandler
	MealPlanHandler     handlers.MealPlanHandler
	SavedRecipeHandler  handlers.SavedRecipeHandler
	HistoryHandler      handlers.RecipeHistoryHandler
	AIHandler           handlers.AIHandler
	DashboardHandler    handlers.DashboardHandler
	FeedbackHandler     handlers.FeedbackHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.User()
	c.Household()
	c.Pantry()
	c.ShoppingList()
	c.MealPlans()
	c.Recipes()
	c.History()
	c.AI()
	c.Dashboard()
	c.Feedback()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	{
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
		auth.Post("/google", c.UserHandler.GoogleLogin)
		auth.Get("/verify-email", c.UserHandler.VerifyEmail)
		auth.Post("/resend-verification", c.UserHandler.ResendVerification)
	}
}

func (c *Config) User() {
	user := c.App.Group("/api/users", c.Middleware.AuthMiddleware(c.JWTService))
	{
		user.Get("/me", c.UserHandler.Me)
		user.Patch("/preferences", c.UserHandler.UpdatePreferences)
		user.Post("/avatar", c.UserHandler.UploadAvatar)
	}
}

func (c *Config) Household() {
	households := c.App.Group("/api/households", c.Middleware.AuthMiddleware(c.JWTService))
	{
		households.Post("", c.HouseholdHandler.CreateHousehold)
		households.Get("/mine", c.HouseholdHandler.GetMyHousehold)
		households.Patch("/mine", c.HouseholdHandler.UpdateHousehold)
		households.Post("/join", c.HouseholdHandler.JoinHousehold)
		households.Post("/leave", c.HouseholdHandler.LeaveHousehold)
		households.Delete("/mine", c.HouseholdHandler.DeleteHousehold)
		households.Post("/invite-code", c.HouseholdHandler.RegenerateInviteCode)
		households.Post("/remove-member", c.HouseholdHandler.RemoveMember)
	}
}

func (c *Config) Pantry() {
	pantry := c.App.Group("/api/pantry", c.Middleware.AuthMiddleware(c.JWTService))
	{
		pantry.Post("", c.PantryHandler.AddPantryItem)
		pantry.Get("", c.PantryHandler.GetPantryItems)
		pantry.Get("/:id", c.PantryHandler.GetPantryItemDetails)
		pantry.Put("/:id", c.PantryHandler.UpdatePantryItem)
		pantry.Delete("/:id", c.PantryHandler.DeletePantryItem)
	}
}

func (c *Config) ShoppingList() {
	shopping := c.App.Group("/api/shopping-list", c.Middleware.AuthMiddleware(c.JWTService))
	{
		shopping.Post("", c.ShoppingListHandler.AddShoppingItem)
		shopping.Get("", c.ShoppingListHandler.GetShoppingItems)
		shopping.Post("/generate", c.ShoppingListHandler.GenerateFromLowStock)
		shopping.Delete("/checked", c.ShoppingListHandler.ClearCheckedItems)
		shopping.Put("/:id", c.ShoppingListHandler.UpdateShoppingItem)
		shopping.Patch("/:id/toggle", c.ShoppingListHandler.ToggleShoppingItem)
		shopping.Post("/:id/to-pantry", c.ShoppingListHandler.MoveToPantry)
		shopping.Delete("/:id", c.ShoppingListHandler.DeleteShoppingItem)
	}
}

func (c *Config) MealPlans() {
	mealPlans := c.App.Group("/api/meal-plans", c.Middleware.AuthMiddleware(c.JWTService))
	{
		mealPlans.Post("", c.MealPlanHandler.AddMealPlan)
		mealPlans.Get("", c.MealPlanHandler.GetMealPlans)
		mealPlans.Post("/generate-shopping-list", c.MealPlanHandler.GenerateShoppingList)
		mealPlans.Put("/:id", c.MealPlanHandler.UpdateMealPlan)
		mealPlans.Patch("/:id/toggle", c.MealPlanHandler.ToggleMealPlan)
		mealPlans.Delete("/:id", c.MealPlanHandler.DeleteMealPlan)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/recipes", c.Middleware.AuthMiddleware(c.JWTService))
	{
		recipes.Post("", c.SavedRecipeHandler.SaveRecipe)
		recipes.Get("", c.SavedRecipeHandler.GetRecipes)
		recipes.Get("/:id", c.SavedRecipeHandler.GetRecipeDetails)
		recipes.Put("/:id", c.SavedRecipeHandler.UpdateRecipe)
		recipes.Patch("/:id/favorite", c.SavedRecipeHandler.ToggleFavorite)
		recipes.Delete("/:id", c.SavedRecipeHandler.DeleteRecipe)
	}
}

func (c *Config) History() {
	history := c.App.Group("/api/recipe-history", c.Middleware.AuthMiddleware(c.JWTService))
	{
		history.Get("", c.HistoryHandler.GetHistory)
		history.Get("/:id", c.HistoryHandler.GetHistoryDetails)
		history.Delete("/:id", c.HistoryHandler.DeleteHistory)
	}
}

func (c *Config) AI() {
	ai := c.App.Group("/api/ai", c.Middleware.AuthMiddleware(c.JWTService))
	{
		ai.Post("", c.AIHandler.GenerateText)
		ai.Post("/recipes", c.AIHandler.GenerateRecipes)
	}
}

func (c *Config) Dashboard() {
	dashboard := c.App.Group("/api/dashboard", c.Middleware.AuthMiddleware(c.JWTService))
	{
		dashboard.Get("/overview", c.DashboardHandler.GetOverview)
	}
}

func (c *Config) Feedback() {
	feedback := c.App.Group("/api/feedback", c.Middleware.AuthMiddleware(c.JWTService))
	{
		feedback.Post("", c.FeedbackHandler.AddFeedback)
		feedback.Get("", c.FeedbackHandler.GetFeedback)
		feedback.Patch("/:id", c.FeedbackHandler.UpdateFeedback)
		feedback.Delete("/:id", c.FeedbackHandler.DeleteFeedback)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
