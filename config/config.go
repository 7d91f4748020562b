package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type HTTP struct {
	Addr              string        `default:":8080" envconfig:"ADDR"`
	GinMode           string        `default:"debug" envconfig:"GIN_MODE"`
	ReadTimeout       time.Duration `default:"10s" envconfig:"READ_TIMEOUT"`
	WriteTimeout      time.Duration `default:"10s" envconfig:"WRITE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `default:"5s" envconfig:"READ_HEADER_TIMEOUT"`
	IdleTimeout       time.Duration `default:"60s" envconfig:"IDLE_TIMEOUT"`
	GracefulTimeout   time.Duration `default:"5s" envconfig:"GRACEFUL_TIMEOUT"`
}

type API struct {
	BaseURL string        `default:"http://localhost:5000" envconfig:"BASE_URL"`
	Timeout time.Duration `default:"10s" envconfig:"TIMEOUT"`
}

type Refresh struct {
	Enabled  bool          `default:"true" envconfig:"ENABLED"`
	Interval time.Duration `default:"30s" envconfig:"INTERVAL"`
}

type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"OTEL_ENABLED"`
	ServiceName string  `default:"rms-gateway" envconfig:"OTEL_SERVICE_NAME"`
	Endpoint    string  `default:"jaeger:4318" envconfig:"OTEL_ENDPOINT"`
	SampleRatio float64 `default:"1" envconfig:"OTEL_SAMPLE_RATIO"`
}

type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

type Config struct {
	HTTP    HTTP
	API     API
	Refresh Refresh
	Tracing Tracing
	Logger  Logger
}

// Load — конфигурация из окружения с префиксом RMS.
func Load() (Config, error) {
	return LoadWithPrefix("RMS")
}

// LoadWithPrefix — вариант с произвольным префиксом (для тестов).
func LoadWithPrefix(prefix string) (Config, error) {
	var c Config
	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
