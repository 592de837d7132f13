package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/chatsync/internal/pkg/config"
	"github.com/piresc/chatsync/internal/pkg/constants"
	"github.com/piresc/chatsync/internal/pkg/database"
	"github.com/piresc/chatsync/internal/pkg/health"
	httpclient "github.com/piresc/chatsync/internal/pkg/http"
	"github.com/piresc/chatsync/internal/pkg/logger"
	"github.com/piresc/chatsync/internal/pkg/middleware"
	"github.com/piresc/chatsync/internal/pkg/models"
	"github.com/piresc/chatsync/internal/pkg/notice"
	"github.com/piresc/chatsync/internal/pkg/server"
	"github.com/piresc/chatsync/internal/pkg/session"
	"github.com/piresc/chatsync/internal/pkg/tokenstore"
	wspkg "github.com/piresc/chatsync/internal/pkg/websocket"
	"github.com/piresc/chatsync/internal/utils"
	chatGateway "github.com/piresc/chatsync/services/chat/gateway/http"
	chatHandler "github.com/piresc/chatsync/services/chat/handler"
	chatWS "github.com/piresc/chatsync/services/chat/handler/websocket"
	chatUsecase "github.com/piresc/chatsync/services/chat/usecase"
	notificationGateway "github.com/piresc/chatsync/services/notifications/gateway/http"
	notificationHandler "github.com/piresc/chatsync/services/notifications/handler"
	notificationWS "github.com/piresc/chatsync/services/notifications/handler/websocket"
	notificationUsecase "github.com/piresc/chatsync/services/notifications/usecase"
	"go.uber.org/zap"
)

func main() {
	configPath := config.GetEnv("CONFIG_PATH", "config/chatsync.env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", configs.App.Name),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
		zap.String("api", configs.API.BaseURL),
		zap.String("ws", configs.API.WSBaseURL),
	)

	shutdown := server.NewShutdownManager(zapLogger)

	// Token persistence is optional
	var redisClient *database.RedisClient
	var tokens *tokenstore.Store
	initial := models.Credentials{
		AccessToken:  configs.Session.AccessToken,
		RefreshToken: configs.Session.RefreshToken,
	}
	if configs.Redis.Enabled {
		redisClient, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		shutdown.Register("redis", func(context.Context) error { return redisClient.Close() })
		repo := tokenstore.NewRedisRepository(redisClient.GetClient(), configs.Session.TokenTTL)
		tokens = tokenstore.NewPersistentStore(initial, configs.Session.Name, repo)
	} else {
		tokens = tokenstore.NewStore(initial)
	}

	board := notice.NewBoard(configs.Session.NoticeCapacity)

	// REST gateways and usecases
	restClient := httpclient.NewClient(httpclient.Config{
		BaseURL: configs.API.BaseURL,
		Timeout: configs.API.Timeout,
	}, tokens, zapLogger)

	chatUC := chatUsecase.NewChatUC(chatGateway.NewChatGW(restClient), board)
	notificationUC := notificationUsecase.NewNotificationUC(
		notificationGateway.NewNotificationGW(restClient),
		chatUC,
		board,
		configs.Session.FriendRequestLimit,
	)
	shutdown.Register("inflight", func(ctx context.Context) error {
		done := make(chan struct{})
		go func() {
			chatUC.Wait()
			notificationUC.Wait()
			close(done)
		}()
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	// Sockets
	manager := wspkg.NewManager(configs.API.WSBaseURL, tokens, wspkg.NewDialer(configs.API.Timeout))
	sess := session.New(session.Deps{
		Tokens:              tokens,
		Manager:             manager,
		Chats:               chatUC,
		Notifications:       notificationUC,
		ChatSockets:         chatWS.NewChatHandler(chatUC, board),
		NotificationSockets: notificationWS.NewNotificationHandler(notificationUC, board),
		Notices:             board,
	})
	shutdown.Register("session", func(context.Context) error {
		sess.Close()
		return nil
	})

	ctx := context.Background()
	if err := sess.Start(ctx); err != nil {
		zapLogger.Fatal("Failed to start session", zap.Error(err))
	}
	if chatID := configs.Session.AutoOpenChatID; chatID > 0 {
		if _, err := sess.OpenChat(ctx, chatID); err != nil {
			zapLogger.Warn("Failed to open chat", zap.Int64("chat_id", chatID), zap.Error(err))
		}
	}

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewRequestValidator()

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("api", health.NewAPIHealthChecker(restClient))
	healthService.AddChecker("notifications_socket", health.NewSocketHealthChecker(manager, constants.SubscriberNotifications))
	if redisClient != nil {
		healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	}
	health.RegisterHealthEndpoints(e, configs.App.Name, configs.App.Version, healthService)

	// Register service routes
	notice.RegisterRoutes(e, board)
	chatHandler.NewHandler(chatUC, sess, time.Local).RegisterRoutes(e)
	notificationHandler.NewHandler(notificationUC).RegisterRoutes(e)

	// Start server
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Host, configs.Server.Port)
	if err := srv.Run(ctx); err != nil {
		zapLogger.Error("Server stopped", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
	defer cancel()
	if err := shutdown.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Shutdown finished with errors", zap.Error(err))
	}
}
