package config

import (
	"context"
	"log/slog"
	"os"
	"reflect"

	"github.com/mcuadros/go-defaults"
	"github.com/naoina/toml"
	"github.com/sethvargo/go-envconfig"
)

var configFile = ""

type Config struct {
	// name reported to tracing backends
	ServiceName string `env:"MEMBERSHIP_PROVIDER_SERVICE_NAME" default:"github-team-membership"`

	APIServer struct {
		Port int `env:"MEMBERSHIP_PROVIDER_SERVER_PORT" default:"8080"`
		// expose /debug/pprof, keep off outside of debugging sessions
		EnablePprof bool `env:"MEMBERSHIP_PROVIDER_SERVER_ENABLE_PPROF" default:"false"`
	}

	GitHub struct {
		// REST endpoint, override for GitHub Enterprise Server e.g. https://ghe.example.com/api/v3/
		APIURL string `env:"MEMBERSHIP_PROVIDER_GITHUB_API_URL" default:"https://api.github.com/"`
		// used when the invocation does not carry its own user agent
		UserAgent  string `env:"MEMBERSHIP_PROVIDER_GITHUB_USER_AGENT" default:"github-team-membership"`
		PageSize   int    `env:"MEMBERSHIP_PROVIDER_GITHUB_PAGE_SIZE" default:"100"`
		TimeoutSEC int    `env:"MEMBERSHIP_PROVIDER_GITHUB_TIMEOUT_SEC" default:"30"`
		// total attempts per remote call, 1 disables retry
		RetryAttempts uint `env:"MEMBERSHIP_PROVIDER_GITHUB_RETRY_ATTEMPTS" default:"3"`
		RetryDelayMS  int  `env:"MEMBERSHIP_PROVIDER_GITHUB_RETRY_DELAY_MS" default:"500"`
		// fetch active members and pending invitations concurrently when listing
		ParallelList bool `env:"MEMBERSHIP_PROVIDER_GITHUB_PARALLEL_LIST" default:"false"`
	}

	Metrics struct {
		Enable bool `env:"MEMBERSHIP_PROVIDER_METRICS_ENABLE" default:"true"`
	}

	Instrumentation struct {
		OTLPEndpoint string `env:"MEMBERSHIP_PROVIDER_OTLP_ENDPOINT" default:""`
		OTLPLogging  bool   `env:"MEMBERSHIP_PROVIDER_OTLP_LOGGING" default:"false"`
	}
}

func SetConfigFile(file string) {
	configFile = file
}

func LoadConfig() (*Config, error) {
	defer slog.Debug("end load config")
	slog.Debug("start load config")
	cfg := &Config{}
	defaults.SetDefaults(cfg)
	toml.DefaultConfig.MissingField = func(typ reflect.Type, key string) error {
		return nil
	}

	if configFile != "" {
		f, err := os.Open(configFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		err = toml.NewDecoder(f).Decode(cfg)
		if err != nil {
			return nil, err
		}
	}

	// Environment variables always win over the config file, the file wins over defaults.
	err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:           cfg,
		DefaultOverwrite: true,
	})
	return cfg, err
}
