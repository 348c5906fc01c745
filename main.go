package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"vibemix/controllers/playlist"
	"vibemix/logger"
	"vibemix/middleware"
	"vibemix/services/groq"
	"vibemix/services/recommender"
	spotifyservice "vibemix/services/spotify"
)

func init() {
	env := os.Getenv("ENV")
	if env == "" {
		log.Println("==⚠️ WARNING: env variable not set. Using dev ⚠️==")
		env = "dev"
	}
	err := godotenv.Load(".env." + env)
	if err != nil {
		log.Println("Error reading the env file")
		log.Println(err)
	}
}

func heartbeat(ctx *fiber.Ctx) error {
	return ctx.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Request OK",
		"status":  http.StatusOK,
	})
}

func main() {
	app := fiber.New()

	zapLogger := logger.NewZapSentryLogger(nil)
	defer func() {
		_ = zapLogger.Sync()
	}()

	// the cache is optional; without it every catalog search goes to the
	// network.
	var redisClient *redis.Client
	if redisURL := os.Getenv("REDISCLOUD_URL"); redisURL != "" {
		redisOpts, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Printf("\n[main] error - could not parse redis url, continuing without cache: %v\n", err)
		} else {
			redisClient = redis.NewClient(redisOpts)
		}
	} else {
		log.Printf("\n[main] warning - REDISCLOUD_URL not set, catalog search caching disabled\n")
	}

	// without a groq key the generator runs on the deterministic corpus only.
	var backend recommender.TextBackend
	if apiKey := os.Getenv("GROQ_API_KEY"); apiKey != "" {
		backend = groq.NewClient(apiKey)
	} else {
		log.Printf("\n[main] warning - GROQ_API_KEY not set, using corpus fallback only\n")
	}
	generator := recommender.NewGenerator(backend)

	spotifySvc := spotifyservice.NewService(os.Getenv("SPOTIFY_CLIENT_ID"), os.Getenv("SPOTIFY_CLIENT_SECRET"), redisClient)

	playlistController := playlist.NewController(generator, spotifySvc, spotifySvc, spotifySvc)

	app.Use(cors.New(), middleware.RequestLogger(zapLogger))

	app.Get("/heartbeat", heartbeat)

	spotifyRouter := app.Group("/api/spotify")
	spotifyRouter.Post("/generate-playlist", playlistController.GeneratePlaylist)
	spotifyRouter.Post("/create-playlist", playlistController.CreatePlaylist)
	spotifyRouter.Post("/token", playlistController.ExchangeToken)
	spotifyRouter.Get("/login", playlistController.RedirectAuth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("Server running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
