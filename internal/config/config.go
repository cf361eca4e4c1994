package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageMemory   = "memory"
	StorageDynamoDB = "dynamodb"
)

type AWS struct {
	Region           string `env:"REGION" env-default:"us-east-1"`
	AccessKeyID      string `env:"ACCESS_KEY_ID"`
	SecretAccessKey  string `env:"SECRET_ACCESS_KEY"`
	DynamoDBEndpoint string `env:"DYNAMODB_ENDPOINT"`
}

type MercadoPago struct {
	AccessToken string `env:"MERCADOPAGO_ACCESS_TOKEN"`
	PayerEmail  string `env:"MERCADOPAGO_PAYER_EMAIL"`
	Mock        bool   `env:"PAYMENT_GATEWAY_MOCK" env-default:"true"`
}

type Minio struct {
	Endpoint  string `env:"ENDPOINT"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	Bucket    string `env:"BUCKET" env-default:"assistente-juridico"`
	UseSSL    bool   `env:"USE_SSL" env-default:"false"`
}

type Config struct {
	Env      string `env:"APP_ENV" env-default:"local"`
	HTTPPort string `env:"HTTP_PORT" env-default:"8080"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`

	StorageDriver string `env:"STORAGE_DRIVER" env-default:"memory"`
	LawyersTable  string `env:"LAWYERS_TABLE" env-default:"lawyers"`
	PaymentsTable string `env:"PAYMENTS_TABLE" env-default:"payments"`

	AWS         AWS   `env-prefix:"AWS_"`
	Minio       Minio `env-prefix:"MINIO_"`
	MercadoPago MercadoPago

	DownloadBaseURL   string        `env:"DOWNLOAD_BASE_URL" env-default:"https://example.com/files"`
	DownloadURLExpiry time.Duration `env:"DOWNLOAD_URL_EXPIRY" env-default:"1h"`

	JWTSecret string        `env:"JWT_SECRET" env-default:"dev-secret-change-me"`
	JWTTTL    time.Duration `env:"JWT_TTL" env-default:"24h"`

	AssistantReplyDelay    time.Duration `env:"ASSISTANT_REPLY_DELAY" env-default:"1s"`
	ProcessCompletionDelay time.Duration `env:"PROCESS_COMPLETION_DELAY" env-default:"3s"`
	LoginLatency           time.Duration `env:"LOGIN_LATENCY" env-default:"1s"`

	MaxAttachments     int   `env:"MAX_ATTACHMENTS" env-default:"5"`
	MaxAttachmentBytes int64 `env:"MAX_ATTACHMENT_BYTES" env-default:"10485760"`
}

// Load reads the configuration from the environment (.env is loaded by main).
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad panics when the environment cannot be parsed.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic("cannot read config from environment: " + err.Error())
	}
	return cfg
}

func (c *Config) UseDynamoDB() bool {
	return c.StorageDriver == StorageDynamoDB
}

func (c *Config) UseMinio() bool {
	return c.Minio.Endpoint != ""
}
