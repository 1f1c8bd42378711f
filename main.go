package main

import (
	"os"

	"collab-server/configs"
	"collab-server/controllers"
	middleware "collab-server/middlewares"
	"collab-server/repository"
	"collab-server/routes"
	"collab-server/server"
	service "collab-server/services"
	"collab-server/utils"

	fiberprometheus "github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file, relying on environment")
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := configs.RegisterService(
		"collab-server",
		"collab-server",
		"localhost",
		4000,
		"http://localhost:4000/health",
	); err != nil {
		log.Warn().Err(err).Msg("Consul service registration failed")
	}

	mongoClient := configs.ConnectMongo()
	redisClient := configs.ConnectRedis()

	store := repository.NewMongoStore(mongoClient, env("MONGO_DB", "collab"))
	presence := repository.NewRedisPresenceRepository(redisClient)

	feedSocket := controllers.NewFeedSocketController(presence)

	perms := service.NewPermissionService(store)
	feeds := service.NewFeedService(store, feedSocket)
	teams := service.NewTeamService(store, perms)
	projects := service.NewProjectService(store, perms)
	tasks := service.NewTaskService(store, perms, feeds)
	bulletins := service.NewBulletinService(store, perms, feeds)
	memos := service.NewMemoService(store, perms)
	users := service.NewUserService(store)

	userController := controllers.NewUserController(users)
	teamController := controllers.NewTeamController(teams, perms)
	projectController := controllers.NewProjectController(projects, perms)
	taskController := controllers.NewTaskController(tasks)
	bulletinController := controllers.NewBulletinController(bulletins)
	memoController := controllers.NewMemoController(memos)
	feedController := controllers.NewFeedController(feeds)

	keyStore := utils.NewPublicKeyStore()
	if err := keyStore.LoadKeys(env("JWT_PUBLIC_KEY_DIR", "keys")); err != nil {
		log.Fatal().Err(err).Msg("failed to load public keys")
	}

	app := fiber.New()

	p := fiberprometheus.New("collab-server")
	p.RegisterAt(app, "/metrics")
	app.Use(p.Middleware)

	app.Use(cors.New(cors.Config{
		AllowOrigins: env("CORS_ORIGIN", "http://localhost:3000"),
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "UP",
		})
	})

	api := app.Group("/", middleware.JWTParser(keyStore))
	api.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	routes.UserRoutes(api, userController)
	routes.TeamRoutes(api, teamController)
	routes.ProjectRoutes(api, projectController)
	routes.TaskRoutes(api, taskController)
	routes.BulletinRoutes(api, bulletinController)
	routes.MemoRoutes(api, memoController)
	routes.FeedRoutes(api, feedController)
	routes.FeedSocketRoutes(api, feedSocket)

	go func() {
		if err := server.RunGRPCServer(env("GRPC_ADDR", ":50051"), keyStore); err != nil {
			log.Fatal().Err(err).Msg("failed to start gRPC server")
		}
	}()

	addr := env("HTTP_ADDR", ":4000")
	log.Info().Str("addr", addr).Msg("starting server")
	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
