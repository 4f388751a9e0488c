package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/havenstay/backend/internal/app"
	"github.com/havenstay/backend/internal/config"
	"github.com/havenstay/backend/internal/routes"
	"github.com/havenstay/backend/internal/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		// fine in production; env comes from the runtime
		utils.Logger.Debug("No .env file loaded")
	}

	utils.InitLogger(config.AppName)

	// 1) Config
	cfg := config.LoadConfig()

	// 2) Core application (store, session, repositories)
	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize application: ", err)
	}
	defer application.Close()

	// 3) Router
	router := routes.NewRouter(application)

	// 4) CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppURL},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on :%s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, c.Handler(router)); err != nil {
		utils.Logger.Fatal("Server error:", err)
	}
}
