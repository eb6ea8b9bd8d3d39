package main

import (
	"context"
	"fmt"

	filev1 "github.com/Yulian302/lfusys-services-files/api/filev1"
	"github.com/Yulian302/lfusys-services-files/auth"
	"github.com/Yulian302/lfusys-services-files/caching"
	"github.com/Yulian302/lfusys-services-files/config"
	"github.com/Yulian302/lfusys-services-files/handlers"
	"github.com/Yulian302/lfusys-services-files/health"
	logger "github.com/Yulian302/lfusys-services-files/logging"
	"github.com/Yulian302/lfusys-services-files/queues"
	"github.com/Yulian302/lfusys-services-files/services"
	"github.com/Yulian302/lfusys-services-files/store"
	"github.com/Yulian302/lfusys-services-files/store/memstore"
	"github.com/spf13/afero"
)

type Stores struct {
	files    store.FileStore
	sessions store.SessionStore
	objects  store.ObjectStorage
}

// Checks lists the dependencies that gate readiness. The cache is left out
// because its failures never fail a call.
func (s *Stores) Checks() []health.ReadinessCheck {
	return []health.ReadinessCheck{s.files, s.sessions, s.objects}
}

type Services struct {
	Files     services.FileService
	Transfer  services.TransferService
	Multipart services.MultipartService

	Sweeper *services.SessionSweeper
	Expiry  queues.SessionExpiryReceiver

	Stores   *Stores
	Resolver *auth.Resolver

	FileHandler filev1.FileServiceServer
	HTTPHandler *handlers.HttpHandler

	logger logger.Logger
}

type Shutdowner interface {
	Shutdown(context.Context) error
}

func buildStores(ctx context.Context, app *App) (*Stores, error) {
	cfg := app.Config

	switch cfg.MetadataBackend {
	case config.BackendMemory:
		app.Logger.Warn("using in-memory storage, data is lost on restart")
		return &Stores{
			files:    memstore.NewFileStore(),
			sessions: memstore.NewSessionStore(),
			objects:  memstore.NewObjectStorage(),
		}, nil

	case config.BackendMongo:
		db := app.Mongo.Database(cfg.MongoConfig.Database)
		fileStore := store.NewMongoFileStoreImpl(db)
		sessStore := store.NewMongoSessionStoreImpl(db)

		if err := fileStore.EnsureIndexes(ctx); err != nil {
			return nil, fmt.Errorf("ensure file indexes: %w", err)
		}
		if err := sessStore.EnsureIndexes(ctx); err != nil {
			return nil, fmt.Errorf("ensure session indexes: %w", err)
		}

		return &Stores{
			files:    fileStore,
			sessions: sessStore,
			objects:  store.NewS3FileStorageImpl(app.S3, cfg.BucketName, app.Logger),
		}, nil

	default:
		return &Stores{
			files:    store.NewDynamoDbFileStoreImpl(app.DynamoDB, cfg.FilesTableName),
			sessions: store.NewDynamoDbSessionStoreImpl(app.DynamoDB, cfg.SessionsTableName),
			objects:  store.NewS3FileStorageImpl(app.S3, cfg.BucketName, app.Logger),
		}, nil
	}
}

func BuildServices(ctx context.Context, app *App) (*Services, error) {
	stores, err := buildStores(ctx, app)
	if err != nil {
		return nil, err
	}

	var cachingSvc caching.CachingService
	cachingSvc = caching.NewRedisCachingService(app.Redis)
	if app.Redis == nil {
		cachingSvc = caching.NewNullCachingService()
	}

	fileSvc := services.NewFileServiceImpl(stores.files, stores.objects, cachingSvc, app.Logger)
	transferSvc := services.NewTransferServiceImpl(stores.files, stores.objects, cachingSvc, services.SpoolConfig{
		Fs:        afero.NewOsFs(),
		Dir:       app.Config.SpoolDir,
		Threshold: app.Config.SpoolThreshold,
	}, app.Logger)
	multipartSvc := services.NewMultipartServiceImpl(stores.sessions, stores.files, stores.objects, cachingSvc, app.Logger)

	sweeper := services.NewSessionSweeper(context.Background(), stores.sessions, stores.objects, app.Config.SweepInterval, app.Logger)
	sweeper.Start()

	var expiry queues.SessionExpiryReceiver
	if app.Sqs != nil {
		receiver := queues.NewSessionExpiryReceiverImpl(
			context.Background(),
			app.Sqs,
			stores.sessions,
			stores.objects,
			app.Config.SessionExpiryQueueURL,
			app.Logger,
		)
		receiver.Start()
		expiry = receiver
	}

	resolver := auth.NewResolver(app.AuthClient, app.Logger)

	return &Services{
		Files:     fileSvc,
		Transfer:  transferSvc,
		Multipart: multipartSvc,

		Sweeper: sweeper,
		Expiry:  expiry,

		Stores:   stores,
		Resolver: resolver,

		FileHandler: handlers.NewGrpcHandler(fileSvc, transferSvc, multipartSvc, app.Logger),
		HTTPHandler: handlers.NewHttpHandler(fileSvc, transferSvc, stores.Checks(), app.Logger),

		logger: app.Logger,
	}, nil
}

func (s *Services) Shutdown(ctx context.Context) error {
	shutdownIfPossible := func(name string, v any) {
		if sh, ok := v.(Shutdowner); ok {
			if err := sh.Shutdown(ctx); err != nil {
				s.logger.Error("shutdown error", "component", name, "error", err)
			}
		}
	}

	if s.Sweeper != nil {
		shutdownIfPossible("session sweeper", s.Sweeper)
	}
	if s.Expiry != nil {
		shutdownIfPossible("session expiry receiver", s.Expiry)
	}

	if s.Stores != nil {
		shutdownIfPossible("files store", s.Stores.files)
		shutdownIfPossible("sessions store", s.Stores.sessions)
		shutdownIfPossible("object storage", s.Stores.objects)
	}

	return nil
}
