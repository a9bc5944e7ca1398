package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort         int    `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"debug"`
	PostgresDSN      string `env:"POSTGRES_DSN"`
	PostgresMaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`

	JWTPublicKeyPath  string `env:"JWT_PUBLIC_KEY_PATH"`
	StorageServiceURL string `env:"STORAGE_SERVICE_URL"`

	TaskIdentifierPrefix   string        `env:"TASK_IDENTIFIER_PREFIX" envDefault:"СТРФ"`
	JobAssignmentsInterval time.Duration `env:"JOB_ASSIGNMENTS_INTERVAL" envDefault:"1h"`

	Kafka Kafka
}

type Kafka struct {
	Brokers              []string `env:"KAFKA_BROKERS"`
	ConsumerID           string   `env:"KAFKA_CONSUMER_ID"`
	TaskAssignedTopic    string   `env:"KAFKA_TASK_ASSIGNED_TOPIC" envDefault:"stroika.task.assigned"`
	MentionCreatedTopic  string   `env:"KAFKA_MENTION_CREATED_TOPIC" envDefault:"stroika.mention.created"`
	UserDeactivatedTopic string   `env:"KAFKA_USER_DEACTIVATED_TOPIC" envDefault:"stroika.user.deactivated"`
}

func New(envPath string) (Config, error) {
	var c Config

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	err = env.Parse(&c)
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
