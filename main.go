package main

import (
	"log"
	"net/http"
	"os"

	"recipe-api/config"
	"recipe-api/handlers"
	"recipe-api/middleware"
	"recipe-api/repositories"
	"recipe-api/services"
	"recipe-api/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	recipeRepo := repositories.NewRecipeRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	ingredientRepo := repositories.NewIngredientRepository(db)

	// Initialize services
	uploader := storage.NewSupabaseStorage()
	authService := services.NewAuthService(userRepo)
	recipeService := services.NewRecipeService(recipeRepo, tagRepo, ingredientRepo, uploader)
	tagService := services.NewTagService(tagRepo)
	ingredientService := services.NewIngredientService(ingredientRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	recipeHandler := handlers.NewRecipeHandler(recipeService)
	tagHandler := handlers.NewTagHandler(tagService)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService)

	// Setup router
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", authHandler.GetProfile)

			// Recipes
			recipes := protected.Group("/recipes")
			{
				recipes.POST("", recipeHandler.CreateRecipe)
				recipes.GET("", recipeHandler.GetRecipes)
				recipes.GET("/:id", recipeHandler.GetRecipe)
				recipes.PUT("/:id", recipeHandler.UpdateRecipe)
				recipes.PATCH("/:id", recipeHandler.UpdateRecipe)
				recipes.DELETE("/:id", recipeHandler.DeleteRecipe)
				recipes.POST("/:id/upload-image", recipeHandler.UploadImage)
			}

			// Tags
			tags := protected.Group("/tags")
			{
				tags.POST("", tagHandler.CreateTag)
				tags.GET("", tagHandler.GetTags)
				tags.GET("/:id", tagHandler.GetTag)
				tags.PATCH("/:id", tagHandler.UpdateTag)
				tags.DELETE("/:id", tagHandler.DeleteTag)
			}

			// Ingredients
			ingredients := protected.Group("/ingredients")
			{
				ingredients.POST("", ingredientHandler.CreateIngredient)
				ingredients.GET("", ingredientHandler.GetIngredients)
				ingredients.GET("/:id", ingredientHandler.GetIngredient)
				ingredients.PATCH("/:id", ingredientHandler.UpdateIngredient)
				ingredients.DELETE("/:id", ingredientHandler.DeleteIngredient)
			}
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
