package config

import (
	"database/sql"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		MongoDB        *mongo.Client
		PostgresDB     *sql.DB
		Redis          *redis.Client
		RabbitMQ       *amqp091.Connection
		Minio          *minio.Client
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App  App
		JWT  JWT
		Chat Chat
	}

	DriverConfig struct {
		MongoDB    MongoDB
		PostgresDB PostgresDB
		Redis      Redis
		RabbitMQ   RabbitMQ
		Minio      Minio
		Logger     Logger
	}

	App struct {
		Env                        string
		Port                       string
		BaseUrl                    string
		Version                    string
		Timezone                   string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		RequestBodyLimitInMegabyte int
		SessionExpiryTimeInHour    int
		OnboardingExpiryTimeInHour int
		EHRUploadMaxSizeInMB       int64
		RabbitMQEventExchange      string
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	Chat struct {
		BaseUrl           string
		APIKey            string
		Model             string
		TimeoutInSeconds  int
		MaxRetries        int
		RequestsPerMinute int
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	PostgresDB struct {
		Host     string
		Port     string
		DBName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
