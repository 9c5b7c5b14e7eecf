package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/VitalyVL1/filmorate/internal/auth"
	"github.com/VitalyVL1/filmorate/internal/config"
	"github.com/VitalyVL1/filmorate/internal/database"
	"github.com/VitalyVL1/filmorate/internal/handler"
	"github.com/VitalyVL1/filmorate/internal/service"
	"github.com/VitalyVL1/filmorate/internal/storage"
	"github.com/VitalyVL1/filmorate/internal/storage/memory"
	"github.com/VitalyVL1/filmorate/internal/storage/postgres"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "github.com/VitalyVL1/filmorate/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// buildStorages wires the storage backend selected by configuration.
func buildStorages() (storage.UserStorage, storage.FilmStorage, storage.GenreStorage, storage.MpaStorage) {
	switch config.AppConfig.StorageBackend {
	case config.BackendPostgres:
		db, err := database.Connect(config.AppConfig.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		return postgres.NewUserStorage(db), postgres.NewFilmStorage(db),
			postgres.NewGenreStorage(db), postgres.NewMpaStorage(db)
	case config.BackendMemory:
		genres := memory.NewGenreStorage()
		mpa := memory.NewMpaStorage()
		return memory.NewUserStorage(), memory.NewFilmStorage(genres, mpa), genres, mpa
	default:
		log.Fatalf("Unknown storage backend: %s", config.AppConfig.StorageBackend)
		return nil, nil, nil, nil
	}
}

// @title           Filmorate API
// @version         1.0
// @description     This is the API for the Filmorate service.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	userStore, filmStore, genreStore, mpaStore := buildStorages()

	userService := service.NewUserService(userStore)
	filmService := service.NewFilmService(filmStore, userStore, genreStore, mpaStore)
	genreService := service.NewGenreService(genreStore)
	mpaService := service.NewMpaService(mpaStore)

	users := handler.NewUserHandler(userService)
	films := handler.NewFilmHandler(filmService)
	genres := handler.NewGenreHandler(genreService)
	mpa := handler.NewMpaHandler(mpaService)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Auth routes
	router.POST("/auth/login", handler.Login)

	// User routes
	userRoutes := router.Group("/users")
	{
		userRoutes.POST("", users.Create)
		userRoutes.PUT("", users.Update)
		userRoutes.GET("", users.FindAll)
		userRoutes.GET("/:id", users.FindByID)
		userRoutes.DELETE("/:id", users.Remove)

		// Friendship routes
		userRoutes.PUT("/:id/friends/:friendId", users.AddFriend)
		userRoutes.DELETE("/:id/friends/:friendId", users.RemoveFriend)
		userRoutes.GET("/:id/friends", users.FindFriends)
		userRoutes.GET("/:id/friends/common/:otherId", users.FindCommonFriends)
	}

	// Film routes
	filmRoutes := router.Group("/films")
	{
		filmRoutes.GET("/popular", films.FindPopular) // Must be before /:id
		filmRoutes.POST("", films.Create)
		filmRoutes.PUT("", films.Update)
		filmRoutes.GET("", films.FindAll)
		filmRoutes.GET("/:id", films.FindByID)
		filmRoutes.DELETE("/:id", films.Remove)

		// Like routes
		filmRoutes.PUT("/:id/like/:userId", films.AddLike)
		filmRoutes.DELETE("/:id/like/:userId", films.RemoveLike)
	}

	// Public catalog routes
	router.GET("/genres", genres.FindAll)
	router.GET("/genres/:id", genres.FindByID)
	router.GET("/mpa", mpa.FindAll)
	router.GET("/mpa/:id", mpa.FindByID)

	// Admin routes (protected by auth and admin check)
	adminRoutes := router.Group("/admin")
	adminRoutes.Use(auth.AuthMiddleware(), auth.AdminMiddleware())
	{
		// Genres CRUD
		adminGenres := adminRoutes.Group("/genres")
		{
			adminGenres.POST("", genres.Create)
			adminGenres.PUT("/:id", genres.Update)
			adminGenres.DELETE("/:id", genres.Remove)
		}

		// MPA CRUD
		adminMpa := adminRoutes.Group("/mpa")
		{
			adminMpa.POST("", mpa.Create)
			adminMpa.PUT("/:id", mpa.Update)
			adminMpa.DELETE("/:id", mpa.Remove)
		}
	}

	fmt.Printf("Server is running on %s\n", config.AppConfig.ServerAddress)
	fmt.Println("Swagger UI is available at http://localhost:8080/swagger/index.html")
	log.Fatal(router.Run(config.AppConfig.ServerAddress))
}
