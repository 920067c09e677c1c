package config

import (
	"os"
	"time"

	errorsUtils "github.com/Egor213/LogiWatch/pkg/errors"

	"github.com/ilyakaznacheev/cleanenv"
	log "github.com/sirupsen/logrus"

	"github.com/joho/godotenv"
)

type (
	Config struct {
		App        `yaml:"app"`
		Log        `yaml:"log"`
		PG         `yaml:"postgres"`
		HTTP       `yaml:"http"`
		GRPC       `yaml:"grpc"`
		Prometheus `yaml:"prometheus"`
		Kafka      `yaml:"kafka"`
		Monitor    `yaml:"monitor"`
		Ingest     `yaml:"ingest"`
		Alerts     `yaml:"alerts"`
	}

	App struct {
		Name        string `yaml:"name" env-required:"true"`
		Version     string `yaml:"version" env-required:"true"`
		DemoOnEmpty bool   `yaml:"demo_on_empty" env:"DEMO_ON_EMPTY" env-default:"false"`
	}

	Log struct {
		Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
		Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
	}

	PG struct {
		MaxPoolSize     int           `env-required:"true" env:"MAX_POOL_SIZE" yaml:"max_pool_size"`
		URL             string        `env-required:"true" env:"PG_URL"`
		ConnAttempts    int           `yaml:"conn_attempts" env-default:"10"`
		MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env-default:"5m"`
	}

	HTTP struct {
		Host         string        `yaml:"host" env:"HTTP_HOST"`
		Port         string        `env-required:"true" yaml:"port" env:"HTTP_PORT"`
		ReadTimeout  time.Duration `yaml:"read_timeout" env-default:"5s"`
		WriteTimeout time.Duration `yaml:"write_timeout" env-default:"10s"`
	}

	Prometheus struct {
		Port string `env-required:"true" yaml:"port" env:"PROMETHEUS_PORT"`
	}

	GRPC struct {
		Port string `env-required:"true" yaml:"port" env:"GRPC_PORT"`
	}

	Kafka struct {
		Enabled     bool     `yaml:"enabled" env:"KAFKA_ENABLED" env-default:"false"`
		Brokers     []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
		AlertsTopic string   `yaml:"alerts_topic" env:"KAFKA_ALERTS_TOPIC" env-default:"logiwatch.alerts"`
	}

	Monitor struct {
		Path         string        `yaml:"path" env:"LOG_PATH"`
		Extension    string        `yaml:"extension" env-default:".log"`
		PollInterval time.Duration `yaml:"poll_interval" env-default:"2s"`
		ErrorBackoff time.Duration `yaml:"error_backoff" env-default:"5s"`
		StopTimeout  time.Duration `yaml:"stop_timeout" env-default:"1s"`
		UseNotify    bool          `yaml:"use_notify"`
	}

	Ingest struct {
		BatchSize      int           `yaml:"batch_size" env-default:"100"`
		TickInterval   time.Duration `yaml:"tick_interval" env-default:"1s"`
		QueueCapacity  int           `yaml:"queue_capacity" env-default:"10000"`
		OverflowPolicy string        `yaml:"overflow_policy" env:"QUEUE_OVERFLOW_POLICY" env-default:"block"`
		BufferCap      int           `yaml:"buffer_cap" env:"BUFFER_CAP" env-default:"1000"`
		MaxFiles       int           `yaml:"max_files" env-default:"5"`
	}

	// Booleans carry no env-default: cleanenv would apply it over an explicit false.
	Alerts struct {
		LoginFailureThreshold int           `yaml:"login_failure_threshold" env-default:"3"`
		OffHours              bool          `yaml:"off_hours"`
		RestrictedURLs        []string      `yaml:"restricted_urls" env-separator:","`
		DedupWindow           time.Duration `yaml:"dedup_window" env-default:"0s"`
		MaxActive             int           `yaml:"max_active" env-default:"100"`
	}
)

const ENV_PATH = "infra/.env.dev"

func init() {
	if err := godotenv.Load(ENV_PATH); err != nil {
		log.WithField("path", ENV_PATH).Debug("No .env file loaded")
	}
}

func New() (*Config, error) {
	pathToConfig, ok := os.LookupEnv("APP_CONFIG_PATH")
	if !ok || pathToConfig == "" {
		log.WithField("env_var", "APP_CONFIG_PATH").
			Info("Config path is not set, using default")
		pathToConfig = "infra/config.yaml"
	}

	return Load(pathToConfig)
}

// Load reads the yaml file at path and applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	if err := cleanenv.UpdateEnv(cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return cfg, nil
}
