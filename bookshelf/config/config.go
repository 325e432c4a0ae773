package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/bookshelf-service/pkg/kafka"
	"github.com/Astemirdum/bookshelf-service/pkg/logger"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"BOOKSHELF_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"BOOKSHELF_HTTP_PORT" default:"9000"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE"`
}

type Config struct {
	Server HTTPServer   `yaml:"server"`
	Kafka  kafka.Config `yaml:"kafka"`
	Log    logger.Log   `yaml:"log"`
	// Seed fills the collection with sample books on start.
	Seed bool `yaml:"seed" envconfig:"BOOKSHELF_SEED"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		config, err := Load(ops...)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

// Load applies ops and then overrides them with whatever is set in the environment.
func Load(ops ...Option) (*Config, error) {
	var config Config
	for _, op := range ops {
		op(&config)
	}
	if err := envconfig.Process("", &config); err != nil {
		return nil, err
	}
	return &config, nil
}

func printConfig(cfg *Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
