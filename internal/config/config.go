package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// DefaultAPIURL é usado quando nem API_URL nem VITE_API_URL estão definidos
const DefaultAPIURL = "http://localhost:8080"

// ErrInvalidConfig indica um valor de configuração que o cliente não consegue usar
var ErrInvalidConfig = errors.New("invalid configuration")

// FailurePolicy escolhe o sentinela de UpdateFlowers e GetLastUpdated em caso de falha
type FailurePolicy string

const (
	// FailureNull devolve nil
	FailureNull FailurePolicy = "null"
	// FailureFlagged devolve uma resposta com Success=false
	FailureFlagged FailurePolicy = "flagged"
)

type Config struct {
	App     App     `mapstructure:",squash"`
	Server  Server  `mapstructure:",squash"`
	Client  Client  `mapstructure:",squash"`
	Refresh Refresh `mapstructure:",squash"`
	Stub    Stub    `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Client descreve como falar com o serviço Blumenladen
type Client struct {
	BaseURL            string        `mapstructure:"api_url"`
	ViteBaseURL        string        `mapstructure:"vite_api_url"`
	EncodePathSegments bool          `mapstructure:"encode_path_segments"`
	UpdatePath         string        `mapstructure:"update_path"`
	FailurePolicy      FailurePolicy `mapstructure:"failure_policy"`
	Timeout            time.Duration `mapstructure:"http_timeout"`
	TracingEnabled     bool          `mapstructure:"tracing_enabled"`
}

type Refresh struct {
	CronSchedule string `mapstructure:"refresh_cron"`
	Enabled      bool   `mapstructure:"refresh_enabled"`
}

type Stub struct {
	FixturesPath string `mapstructure:"stub_fixtures"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", "8080")

	v.SetDefault("API_URL", "")
	v.SetDefault("VITE_API_URL", "")
	v.SetDefault("ENCODE_PATH_SEGMENTS", true)
	v.SetDefault("UPDATE_PATH", "/version")
	v.SetDefault("FAILURE_POLICY", string(FailureNull))
	v.SetDefault("HTTP_TIMEOUT", "0s") // 0 = timeout padrão do transporte
	v.SetDefault("TRACING_ENABLED", false)

	v.SetDefault("REFRESH_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	v.SetDefault("REFRESH_ENABLED", false)

	v.SetDefault("STUB_FIXTURES", "")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	config := &Config{}
	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, errors.Wrap(err, "config: unmarshal")
	}

	if config.Client.BaseURL == "" {
		config.Client.BaseURL = config.Client.ViteBaseURL
	}
	if config.Client.BaseURL == "" {
		config.Client.BaseURL = DefaultAPIURL
	}
	config.Client.FailurePolicy = FailurePolicy(strings.ToLower(string(config.Client.FailurePolicy)))

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate confere a URL base, o caminho de atualização e a política de falha
func (c *Config) Validate() error {
	u, err := url.Parse(c.Client.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: api url %q", ErrInvalidConfig, c.Client.BaseURL)
	}

	if !strings.HasPrefix(c.Client.UpdatePath, "/") {
		return fmt.Errorf("%w: update path %q must start with /", ErrInvalidConfig, c.Client.UpdatePath)
	}

	switch c.Client.FailurePolicy {
	case FailureNull, FailureFlagged:
	default:
		return fmt.Errorf("%w: failure policy %q", ErrInvalidConfig, c.Client.FailurePolicy)
	}

	if c.Client.Timeout < 0 {
		return fmt.Errorf("%w: negative http timeout", ErrInvalidConfig)
	}

	return nil
}

// Addr é o endereço de escuta do servidor stub
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// loadEnvFile tenta carregar o .env do diretório atual e dos diretórios acima
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("config: could not resolve working directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(cwd, "..", ".env"),
		filepath.Join(cwd, "..", "..", ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("config: .env loaded from ", location)
			return
		}
	}

	logrus.Debug("config: no .env file found, using environment only")
}
