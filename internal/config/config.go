package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/redoxlab/internal/chrono"
)

const (
	DefaultN          = 1
	DefaultS          = 0.25
	DefaultC          = 1e-5
	DefaultD          = 1e-5
	DefaultGridStop   = 20.0
	DefaultGridPoints = 1000
	DefaultCoxTime    = 1.0
	DefaultCoxXMax    = 0.05
	DefaultCoxPoints  = 200
)

var validate = newValidator()

// newValidator reports fields by their yaml keys.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type Config struct {
	Params   ParamsConfig   `yaml:"params"`
	Grid     GridConfig     `yaml:"grid"`
	Cox      CoxConfig      `yaml:"cox"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Log      LogConfig      `yaml:"log"`
}

type ParamsConfig struct {
	N int     `yaml:"n" default:"1" validate:"gt=0"`
	S float64 `yaml:"s" default:"0.25" validate:"gt=0"`
	C float64 `yaml:"c" default:"0.00001" validate:"gte=0"`
	D float64 `yaml:"d" default:"0.00001" validate:"gt=0"`
}

type GridConfig struct {
	Start  float64 `yaml:"start" validate:"gte=0"`
	Stop   float64 `yaml:"stop" default:"20" validate:"gtfield=Start"`
	Points int     `yaml:"points" default:"1000" validate:"gte=2"`
}

type CoxConfig struct {
	Time   float64 `yaml:"time" default:"1" validate:"gt=0"`
	XMax   float64 `yaml:"xmax" default:"0.05" validate:"gt=0"`
	Points int     `yaml:"points" default:"200" validate:"gte=2"`
}

type AnalysisConfig struct {
	MinIntervalWidth float64 `yaml:"min_interval_width" default:"0.2" validate:"gte=0"`
}

type LogConfig struct {
	Level  string `yaml:"level" default:"info" validate:"oneof=debug info warn error disabled"`
	Format string `yaml:"format" default:"console" validate:"oneof=console json"`
}

// DefaultConfig returns the parameters the lab opens with.
func DefaultConfig() *Config {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		panic(fmt.Sprintf("config: invalid default tags: %v", err))
	}
	return cfg
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks every field and reports all failures at once.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "gtfield":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s failed validation: %s", field, fe.Tag())
	}
}

func (c *Config) PhysicalParameters() chrono.PhysicalParameters {
	return chrono.PhysicalParameters{
		N: c.Params.N,
		S: c.Params.S,
		C: c.Params.C,
		D: c.Params.D,
	}
}
