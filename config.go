package users

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Config is a structure used for the application configuration.
// It is intended to be mapped by viper.
type Config struct {
	ApplicationName string `mapstructure:"application_name"`

	Environment Environment `mapstructure:"environment"`

	Log   Log   `mapstructure:"log"`
	Users Users `mapstructure:"users"`
	OTEL  OTEL  `mapstructure:"otel"`
}

const (
	LocalEnv       Environment = "local"
	TestEnv        Environment = "test"
	DevelopmentEnv Environment = "dev"
	ProductionEnv  Environment = "prod"
)

// Environments is the list of all supported environments.
func Environments() []Environment {
	return []Environment{LocalEnv, TestEnv, DevelopmentEnv, ProductionEnv}
}

type Environment string

type (
	Log struct {
		Level string `mapstructure:"level" json:"level"`
	}

	Users struct {
		// Seed starts the store with the two seed users instead of an empty one.
		Seed bool `mapstructure:"seed" json:"seed"`
	}

	OTEL struct {
		Enabled bool   `mapstructure:"enabled" json:"enabled"`
		Host    string `mapstructure:"host"    json:"host"`
		Port    int    `mapstructure:"port"    json:"port"`
	}
)

const envPrefix = "USERS"

// DefaultViper returns a new viper instance with all default values
// from Config set. Each value can be overwritten by an environment variable,
// e.g. USERS_LOG_LEVEL for log.level.
func DefaultViper() *Viper {
	vip := viper.New()

	vip.SetEnvPrefix(envPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vip.AutomaticEnv()

	vip.SetDefault("application_name", "users")

	vip.SetDefault("environment", "local")

	vip.SetDefault("log.level", "info")

	vip.SetDefault("users.seed", true)

	vip.SetDefault("otel.enabled", false)
	vip.SetDefault("otel.host", "localhost")
	vip.SetDefault("otel.port", 4317) //nolint:mnd // default otlp grpc port

	return &Viper{Viper: vip}
}

var errConfigLoadFailed = errors.New("loading configuration failed")

// Viper is a wrapper around viper.Viper for configuration loading.
// It overwrites Unmarshal, so that the Environment is checked
// and a developer does not have to remember the decode hook.
type Viper struct {
	*viper.Viper
}

// Load reads the config file, if one is given, and unmarshals the result into a Config.
func (vip *Viper) Load(file string) (*Config, error) {
	if file != "" {
		vip.SetConfigFile(file)

		if err := vip.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: could not read config file: %v", errConfigLoadFailed, err)
		}
	}

	conf := &Config{}
	if err := vip.Unmarshal(conf); err != nil {
		return nil, err
	}

	return conf, nil
}

func (vip *Viper) Unmarshal(rawVal any, opts ...viper.DecoderConfigOption) error {
	opts = append(opts, viper.DecodeHook(allowedEnvironmentHookFunc()))

	err := vip.Viper.Unmarshal(rawVal, opts...)
	if err != nil {
		return fmt.Errorf("%w: could not decode configuration into struct: %v", errConfigLoadFailed, err)
	}

	return nil
}

func allowedEnvironmentHookFunc() mapstructure.DecodeHookFuncType {
	return func(_ reflect.Type, t reflect.Type, data any) (interface{}, error) {
		if t != reflect.TypeOf(Environment("")) {
			return data, nil
		}

		env := Environments()
		if s, ok := data.(string); ok && slices.Contains(env, Environment(s)) {
			return data, nil
		}

		e := make([]string, 0, len(env))
		for _, env := range env {
			e = append(e, string(env))
		}

		return data, fmt.Errorf("value is not allowed, use one of: %s", strings.Join(e, ", ")) //nolint:err113,lll // accept dynamic error
	}
}
