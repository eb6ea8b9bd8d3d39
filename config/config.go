package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	BackendDynamoDB = "dynamodb"
	BackendMongo    = "mongo"
	// BackendMemory keeps metadata and objects in process memory.
	BackendMemory = "memory"
)

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	// EndpointURL points every AWS client at a local emulator (localstack).
	EndpointURL string
}

func (c *AWSConfig) Validate() error {
	if c.Region == "" {
		return errors.New("AWS_REGION is required")
	}
	if (c.AccessKeyID == "") != (c.SecretAccessKey == "") {
		return errors.New("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set together")
	}
	return nil
}

type DynamoDBConfig struct {
	FilesTableName    string
	SessionsTableName string
}

func (c *DynamoDBConfig) Validate() error {
	if c.FilesTableName == "" || c.SessionsTableName == "" {
		return errors.New("DYNAMODB_FILES_TABLE and DYNAMODB_SESSIONS_TABLE are required")
	}
	return nil
}

type MongoConfig struct {
	URI      string
	Database string
}

func (c *MongoConfig) Validate() error {
	if c.URI == "" {
		return errors.New("MONGODB_URI is required")
	}
	if c.Database == "" {
		return errors.New("MONGODB_DATABASE is required")
	}
	return nil
}

type S3Config struct {
	BucketName   string
	Endpoint     string
	UsePathStyle bool
}

func (c *S3Config) Validate() error {
	if c.BucketName == "" {
		return errors.New("S3_BUCKET_NAME is required")
	}
	return nil
}

type RedisConfig struct {
	HOST     string
	Password string
	DB       int
}

type ServiceConfig struct {
	FileGRPCAddr string
	FileHTTPAddr string
	EnableHTTP   bool

	AuthServiceAddr string

	// SessionExpiryQueueURL is optional; the expiry receiver is not started
	// when it is empty.
	SessionExpiryQueueURL string
	SweepInterval         time.Duration

	SpoolThreshold int64
	SpoolDir       string
}

func (c *ServiceConfig) Validate() error {
	if c.FileGRPCAddr == "" {
		return errors.New("FILE_SERVICE_GRPC_ADDR is required")
	}
	if c.AuthServiceAddr == "" {
		return errors.New("AUTH_SERVICE_ADDR is required")
	}
	if c.SweepInterval <= 0 {
		return errors.New("SWEEP_INTERVAL must be positive")
	}
	if c.SpoolThreshold <= 0 {
		return errors.New("SPOOL_THRESHOLD_BYTES must be positive")
	}
	return nil
}

type Config struct {
	Env             string
	MetadataBackend string
	Tracing         bool
	TracingAddr     string

	*AWSConfig
	*DynamoDBConfig
	*S3Config
	*MongoConfig
	*RedisConfig
	*ServiceConfig
}

func (c Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if c.MetadataBackend == BackendMemory {
		return nil
	}

	if err := c.AWSConfig.Validate(); err != nil {
		return err
	}
	if err := c.S3Config.Validate(); err != nil {
		return err
	}

	switch c.MetadataBackend {
	case BackendDynamoDB:
		return c.DynamoDBConfig.Validate()
	case BackendMongo:
		return c.MongoConfig.Validate()
	default:
		return fmt.Errorf("unknown METADATA_BACKEND %q", c.MetadataBackend)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "dev")
	v.SetDefault("METADATA_BACKEND", BackendDynamoDB)
	v.SetDefault("TRACING", false)
	v.SetDefault("TRACING_ADDR", "localhost:4317")

	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "")
	v.SetDefault("AWS_ENDPOINT_URL", "")

	v.SetDefault("DYNAMODB_FILES_TABLE", "files")
	v.SetDefault("DYNAMODB_SESSIONS_TABLE", "upload_sessions")

	v.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGODB_DATABASE", "file_service")

	v.SetDefault("S3_BUCKET_NAME", "file-storage")
	v.SetDefault("S3_ENDPOINT", "")
	v.SetDefault("S3_USE_PATH_STYLE", false)

	v.SetDefault("REDIS_HOST", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("FILE_SERVICE_GRPC_ADDR", ":50054")
	v.SetDefault("FILE_SERVICE_HTTP_ADDR", ":3001")
	v.SetDefault("FILE_SERVICE_ENABLE_HTTP", true)
	v.SetDefault("AUTH_SERVICE_ADDR", "localhost:8081")
	v.SetDefault("SESSION_EXPIRY_QUEUE_URL", "")
	v.SetDefault("SWEEP_INTERVAL", time.Hour)
	v.SetDefault("SPOOL_THRESHOLD_BYTES", 8*1024*1024)
	v.SetDefault("SPOOL_DIR", "")
}

// LoadConfig reads .env (when present) and the process environment.
func LoadConfig() Config {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return Config{
		Env:             v.GetString("ENV"),
		MetadataBackend: v.GetString("METADATA_BACKEND"),
		Tracing:         v.GetBool("TRACING"),
		TracingAddr:     v.GetString("TRACING_ADDR"),

		AWSConfig: &AWSConfig{
			Region:          v.GetString("AWS_REGION"),
			AccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
			EndpointURL:     v.GetString("AWS_ENDPOINT_URL"),
		},
		DynamoDBConfig: &DynamoDBConfig{
			FilesTableName:    v.GetString("DYNAMODB_FILES_TABLE"),
			SessionsTableName: v.GetString("DYNAMODB_SESSIONS_TABLE"),
		},
		S3Config: &S3Config{
			BucketName:   v.GetString("S3_BUCKET_NAME"),
			Endpoint:     v.GetString("S3_ENDPOINT"),
			UsePathStyle: v.GetBool("S3_USE_PATH_STYLE"),
		},
		MongoConfig: &MongoConfig{
			URI:      v.GetString("MONGODB_URI"),
			Database: v.GetString("MONGODB_DATABASE"),
		},
		RedisConfig: &RedisConfig{
			HOST:     v.GetString("REDIS_HOST"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		ServiceConfig: &ServiceConfig{
			FileGRPCAddr:          v.GetString("FILE_SERVICE_GRPC_ADDR"),
			FileHTTPAddr:          v.GetString("FILE_SERVICE_HTTP_ADDR"),
			EnableHTTP:            v.GetBool("FILE_SERVICE_ENABLE_HTTP"),
			AuthServiceAddr:       v.GetString("AUTH_SERVICE_ADDR"),
			SessionExpiryQueueURL: v.GetString("SESSION_EXPIRY_QUEUE_URL"),
			SweepInterval:         v.GetDuration("SWEEP_INTERVAL"),
			SpoolThreshold:        v.GetInt64("SPOOL_THRESHOLD_BYTES"),
			SpoolDir:              v.GetString("SPOOL_DIR"),
		},
	}
}
