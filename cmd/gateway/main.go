package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/NeuralTrust/AuthGuard/pkg/config"
	"github.com/NeuralTrust/AuthGuard/pkg/dependency_container"
	infraLogger "github.com/NeuralTrust/AuthGuard/pkg/infra/logger"
	"github.com/NeuralTrust/AuthGuard/pkg/server"
	"github.com/NeuralTrust/AuthGuard/pkg/server/router"
	"github.com/NeuralTrust/AuthGuard/pkg/version"
	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	serverType := getServerType()
	envFile := os.Getenv("ENV_FILE")

	if envFile == "" {
		envFile = ".env"
	}
	err := godotenv.Load(envFile)
	if err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger, closeLogger, err := infraLogger.NewLogger(serverType)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer closeLogger()
	logger.WithField("server", serverType).Info(version.GetInfo().String())

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config"
	}
	if err := config.Load(configPath); err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	cfg := config.GetConfig()

	container, err := dependency_container.NewContainer(dependency_container.ContainerDI{
		Cfg:    cfg,
		Logger: logger,
	})
	if err != nil {
		logger.Fatalf("failed to initialize dependencies: %v", err)
	}

	var srv server.Server
	switch serverType {
	case "admin":
		var metricsHandler fiber.Handler
		if cfg.Metrics.Enabled {
			metricsHandler = server.MetricsHandler()
		}
		srv = server.NewAdminServer(server.AdminServerDI{
			Config: cfg,
			Logger: logger,
			Routers: []router.ServerRouter{
				router.NewAdminRouter(container.MiddlewareTransport, container.HandlerTransport, metricsHandler),
			},
		})
	default:
		srv = server.NewProxyServer(server.ProxyServerDI{
			Config: cfg,
			Logger: logger,
			Routers: []router.ServerRouter{
				router.NewProxyRouter(container.MiddlewareTransport, container.HandlerTransport),
			},
		})
	}

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	fmt.Println("shutting down server...")
	if err := srv.Shutdown(); err != nil {
		logger.WithError(err).Error("error shutting down server")
	}
	if err := container.Close(); err != nil {
		logger.WithError(err).Error("error releasing resources")
	}
	fmt.Println("server gracefully stopped")
}

func getServerType() string {
	if len(os.Args) > 1 {
		return os.Args[1]
	}
	return "proxy"
}
