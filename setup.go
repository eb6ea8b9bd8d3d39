package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	filev1 "github.com/Yulian302/lfusys-services-files/api/filev1"
	"github.com/Yulian302/lfusys-services-files/auth"
	"github.com/Yulian302/lfusys-services-files/config"
	"github.com/Yulian302/lfusys-services-files/handlers"
	"github.com/Yulian302/lfusys-services-files/health"
	logger "github.com/Yulian302/lfusys-services-files/logging"
	"github.com/Yulian302/lfusys-services-files/tracing"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type App struct {
	Server       *grpc.Server
	HealthServer *grpchealth.Server
	HTTPServer   *http.Server

	DynamoDB   *dynamodb.Client
	S3         *s3.Client
	Sqs        *sqs.Client
	Mongo      *mongo.Client
	Redis      *redis.Client
	AuthClient *auth.GRPCAuthClient

	Config    config.Config
	AwsConfig aws.Config

	Services       *Services
	TracerProvider *trace.TracerProvider
	Logger         logger.Logger
}

func SetupApp(ctx context.Context) (*App, error) {
	cfg := config.LoadConfig()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	appLogger := logger.NewSlogLogger(logger.CreateAppLogger(cfg.Env))

	app := &App{
		Config: cfg,
		Logger: appLogger,
	}

	if cfg.Tracing {
		tp, err := tracing.InitTracer(ctx, "files", cfg.TracingAddr)
		if err != nil {
			return nil, fmt.Errorf("failed to start tracing: %w", err)
		}
		appLogger.Info("tracing enabled", "addr", cfg.TracingAddr)

		app.TracerProvider = tp
	}

	if cfg.MetadataBackend != config.BackendMemory {
		awsCfg, err := initAWS(ctx, *cfg.AWSConfig)
		if err != nil {
			return nil, err
		}
		app.AwsConfig = awsCfg
		app.S3 = initS3(awsCfg, *cfg.AWSConfig, *cfg.S3Config)

		if cfg.SessionExpiryQueueURL != "" {
			app.Sqs = initSqs(awsCfg, *cfg.AWSConfig)
		}
	}

	switch cfg.MetadataBackend {
	case config.BackendDynamoDB:
		app.DynamoDB = initDynamo(app.AwsConfig, *cfg.AWSConfig)
	case config.BackendMongo:
		client, err := initMongo(*cfg.MongoConfig)
		if err != nil {
			return nil, err
		}
		app.Mongo = client
	}

	app.Redis = initRedis(*cfg.RedisConfig)

	authClient, err := auth.NewGRPCAuthClient(cfg.AuthServiceAddr)
	if err != nil {
		return nil, fmt.Errorf("could not init auth client: %w", err)
	}
	app.AuthClient = authClient

	services, err := BuildServices(ctx, app)
	if err != nil {
		return nil, err
	}
	app.Services = services

	return app, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.Server = handlers.NewGRPCServer(a.Services.Resolver)
	a.createHealthServer(ctx)
	a.RegisterHandlers()

	l, err := net.Listen("tcp", a.Config.FileGRPCAddr)
	if err != nil {
		return err
	}

	if a.Config.EnableHTTP {
		a.HTTPServer = &http.Server{
			Addr:              a.Config.FileHTTPAddr,
			Handler:           a.Services.HTTPHandler.Router(a.Services.Resolver),
			ReadHeaderTimeout: 10 * time.Second,
		}

		go func() {
			a.Logger.Info("http server started", "addr", a.Config.FileHTTPAddr)
			if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.Logger.Error("http server failed", "error", err)
			}
		}()
	}

	a.Logger.Info("grpc server started", "addr", a.Config.FileGRPCAddr, "backend", a.Config.MetadataBackend)
	return a.Server.Serve(l)
}

func (a *App) createHealthServer(ctx context.Context) {
	a.HealthServer = grpchealth.NewServer()

	// start pessimistic
	a.HealthServer.SetServingStatus(
		"",
		healthpb.HealthCheckResponse_NOT_SERVING,
	)
	healthpb.RegisterHealthServer(a.Server, a.HealthServer)

	checks := a.Services.Stores.Checks()

	go func() {
		ticker := time.NewTicker(5 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				status := healthpb.HealthCheckResponse_SERVING

				if err := health.CheckAll(ctx, 500*time.Millisecond, checks...); err != nil {
					a.Logger.Warn("readiness check failed", "error", err)
					status = healthpb.HealthCheckResponse_NOT_SERVING
				}

				a.HealthServer.SetServingStatus("", status)
				a.HealthServer.SetServingStatus(filev1.FileService_ServiceDesc.ServiceName, status)
			}
		}
	}()
}

func initAWS(ctx context.Context, cfg config.AWSConfig) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("load aws config: %w", err)
	}
	return awsCfg, nil
}

func initDynamo(cfg aws.Config, awsCfg config.AWSConfig) *dynamodb.Client {
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if awsCfg.EndpointURL != "" {
			o.BaseEndpoint = aws.String(awsCfg.EndpointURL)
		}
	})
}

func initS3(cfg aws.Config, awsCfg config.AWSConfig, s3Cfg config.S3Config) *s3.Client {
	endpoint := s3Cfg.Endpoint
	if endpoint == "" {
		endpoint = awsCfg.EndpointURL
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.UsePathStyle = s3Cfg.UsePathStyle
	})
}

func initSqs(cfg aws.Config, awsCfg config.AWSConfig) *sqs.Client {
	return sqs.NewFromConfig(cfg, func(o *sqs.Options) {
		if awsCfg.EndpointURL != "" {
			o.BaseEndpoint = aws.String(awsCfg.EndpointURL)
		}
	})
}

func initMongo(cfg config.MongoConfig) (*mongo.Client, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	return client, nil
}

func initRedis(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.HOST,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func (a *App) Shutdown(ctx context.Context) error {
	a.Logger.Info("starting graceful shutdown")

	if a.HTTPServer != nil {
		if err := a.HTTPServer.Shutdown(ctx); err != nil {
			a.Logger.Error("http server shutdown error", "error", err)
		}
	}

	if a.Server != nil {
		done := make(chan struct{})
		go func() {
			a.Server.GracefulStop()
			close(done)
		}()

		select {
		case <-done:
		case <-ctx.Done():
			a.Server.Stop() // force
		}
	}

	if a.Services != nil {
		if err := a.Services.Shutdown(ctx); err != nil {
			a.Logger.Error("services shutdown error", "error", err)
		}
	}

	if a.AuthClient != nil {
		if err := a.AuthClient.Close(); err != nil {
			a.Logger.Error("auth client close error", "error", err)
		}
	}

	if a.Mongo != nil {
		if err := a.Mongo.Disconnect(ctx); err != nil {
			a.Logger.Error("mongodb disconnect error", "error", err)
		}
	}

	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			a.Logger.Error("redis close error", "error", err)
		}
	}

	if a.TracerProvider != nil {
		if err := a.TracerProvider.Shutdown(ctx); err != nil {
			a.Logger.Error("tracer shutdown error", "error", err)
		}
	}

	a.Logger.Info("graceful shutdown complete")
	return nil
}

func (a *App) RegisterHandlers() {
	filev1.RegisterFileServiceServer(a.Server, a.Services.FileHandler)
}
