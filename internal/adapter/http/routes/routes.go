package routes

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "assistente_juridico/docs" // swagger docs
	"assistente_juridico/internal/adapter/http/handlers"
	"assistente_juridico/internal/adapter/persistence/repository"
	"assistente_juridico/internal/config"
	"assistente_juridico/internal/infrastructure/auth"
	"assistente_juridico/internal/infrastructure/database"
	"assistente_juridico/internal/infrastructure/payments"
	"assistente_juridico/internal/infrastructure/scheduler"
	"assistente_juridico/internal/infrastructure/storage"
	"assistente_juridico/internal/logger"
	"assistente_juridico/internal/usecase"
	"assistente_juridico/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var router = gin.New()

// closer stops background work owned by the use cases.
type closer interface{ Close() }

// Run will start the server and block until SIGINT/SIGTERM.
func Run() {
	cfg := config.MustLoad()

	flush, err := logger.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		panic("cannot build logger: " + err.Error())
	}
	defer flush()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	closers, err := getRoutes(ctx, cfg)
	if err != nil {
		zap.L().Fatal("[routes] failed to wire the application", zap.Error(err))
	}
	defer func() {
		for _, c := range closers {
			c.Close()
		}
	}()

	srv := &http.Server{Addr: ":" + cfg.HTTPPort, Handler: router}
	go func() {
		zap.L().Info("[routes] server started", zap.String("port", cfg.HTTPPort), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("[routes] failed to startup the application", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zap.L().Info("[routes] stopping server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("[routes] server closed with error", zap.Error(err))
	}
}

func getRoutes(ctx context.Context, cfg *config.Config) ([]closer, error) {
	var (
		lawyerRepo  interfaces.ILawyerRepository
		paymentRepo interfaces.IPaymentRepository
	)
	if cfg.UseDynamoDB() {
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBOptions{
			Region:          cfg.AWS.Region,
			AccessKeyID:     cfg.AWS.AccessKeyID,
			SecretAccessKey: cfg.AWS.SecretAccessKey,
			Endpoint:        cfg.AWS.DynamoDBEndpoint,
		})
		if err != nil {
			return nil, err
		}
		lawyerRepo = repository.NewLawyerDynamoRepository(ddb, cfg.LawyersTable)
		paymentRepo = repository.NewPaymentDynamoRepository(ddb, cfg.PaymentsTable)
	} else {
		lawyerRepo = repository.NewLawyerMemoryRepository()
		paymentRepo = repository.NewPaymentMemoryRepository()
	}
	registrationRepo := repository.NewRegistrationMemoryRepository()

	var store interfaces.IObjectStore
	if cfg.UseMinio() {
		m, err := storage.NewMinioStore(cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.Bucket, cfg.Minio.UseSSL, cfg.DownloadURLExpiry)
		if err != nil {
			return nil, err
		}
		store = m
	} else {
		store = storage.NewMemoryStore(cfg.DownloadBaseURL)
	}

	gateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken, cfg.MercadoPago.PayerEmail, cfg.MercadoPago.Mock)
	if err != nil {
		return nil, err
	}
	if cfg.MercadoPago.Mock {
		zap.L().Warn("[routes] payment gateway running in mock mode")
	}

	timer := scheduler.NewTimer()
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)

	paymentIntentUseCase := usecase.NewPaymentIntentUseCase(gateway)
	registrationUseCase := usecase.NewRegistrationUseCase(registrationRepo, lawyerRepo, paymentRepo, paymentIntentUseCase)
	authUseCase := usecase.NewAuthUseCase(lawyerRepo, tokens, cfg.LoginLatency)
	chatUseCase := usecase.NewChatUseCase(timer, cfg.AssistantReplyDelay)
	attachmentUseCase := usecase.NewAttachmentUseCase(chatUseCase, store, cfg.MaxAttachments, cfg.MaxAttachmentBytes)
	processUseCase := usecase.NewProcessUseCase(chatUseCase, store, timer, cfg.ProcessCompletionDelay)
	profileUseCase := usecase.NewProfileUseCase(lawyerRepo, paymentRepo, paymentIntentUseCase)

	maxFiles, maxBytes := attachmentUseCase.Limits()
	catalogHandler := handlers.NewCatalogHandler()
	authHandler := handlers.NewAuthHandler(authUseCase)
	registrationHandler := handlers.NewRegistrationHandler(registrationUseCase)
	paymentIntentHandler := handlers.NewPaymentIntentHandler(paymentIntentUseCase)
	chatHandler := handlers.NewChatHandler(chatUseCase, attachmentUseCase, maxFiles, maxBytes)
	processHandler := handlers.NewProcessHandler(processUseCase)
	profileHandler := handlers.NewProfileHandler(profileUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, catalogHandler)
	addAuthRoutes(v1, authHandler)
	addRegistrationRoutes(v1, registrationHandler)
	addPaymentIntentRoutes(router.Group("/api"), paymentIntentHandler)

	// Rotas autenticadas
	private := router.Group("/v1", handlers.RequireAuth(authUseCase))
	addChatRoutes(private, chatHandler, processHandler)
	addProcessRoutes(private, processHandler)
	addProfileRoutes(private, profileHandler)

	// Use cases drain their pending work before the timer goes away.
	return []closer{processUseCase, chatUseCase, timer}, nil
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		zap.L().Error("[routes] recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
