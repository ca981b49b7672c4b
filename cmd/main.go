package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"user-auth-server/config"
	_ "user-auth-server/docs"
	"user-auth-server/internal/handler"
	"user-auth-server/internal/repository"
	"user-auth-server/internal/security"
	"user-auth-server/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title User-auth-server
// @version 1.0
// @description REST API аутентификации пользователей и управления ролями

// @host localhost:8080

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil {
		log.Println(".env не найден, используется окружение процесса")
	}

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка при закрытии БД: %v", err)
		}
	}()

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		log.Fatalf("Ошибка подключения к Redis: %v", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("Ошибка при закрытии Redis: %v", err)
		}
	}()

	srv, router := config.SetupServer(cfg.ServerAddr)

	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, time.Duration(cfg.TTL.UserCache)*time.Second)

	avatarStorage, err := service.NewAvatarStorage(ctx, &cfg.AvatarStorage)
	if err != nil {
		log.Fatalf("Ошибка создания хранилища аватаров: %v", err)
	}

	jwtService := security.NewJWTService(&cfg.JWT)
	authService := service.NewAuthenticationService(userRepo, jwtService, cacheRepo)
	registrationService := service.NewRegistrationService(userRepo, roleRepo, cacheRepo, avatarStorage)

	authHandler := handler.NewAuthenticationHandler(authService)
	registrationHandler := handler.NewRegistrationHandler(registrationService)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.CORS.AllowedOrigin},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD"},
		AllowedHeaders: []string{"*"},
	}))
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	setupRoutes(router, authHandler, registrationHandler, jwtService)

	runServer(ctx, srv)
}

func setupRoutes(r chi.Router, authHandler *handler.AuthenticationHandler, registrationHandler *handler.RegistrationHandler, jwtService *security.JWTService) {
	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Post("/RegisterUser", registrationHandler.RegisterUser)
			r.Post("/AuthenticateUser", authHandler.AuthenticateUser)
			r.Post("/RefreshToken", authHandler.RefreshToken)
		})

		r.Group(func(r chi.Router) {
			r.Use(security.JWTMiddleware(jwtService))
			r.Post("/CreateRole", registrationHandler.CreateRole)
			r.Post("/AssignRoleToUser", registrationHandler.AssignRoleToUser)
		})
	})
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		log.Println("сервер запущен на " + server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			log.Fatalf("ошибка работы сервера: %v", err)
		}
	case sig := <-signalChannel:
		log.Printf("получен сигнал %v остановки работы сервера ", sig)
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		log.Printf("ошибка при остановке сервера: %v", err)
	} else {
		log.Println("Сервер успешно остановлен")
	}
}
