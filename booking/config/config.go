package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/Astemirdum/seat-booking/pkg/auth"
	"github.com/Astemirdum/seat-booking/pkg/kafka"
	"github.com/Astemirdum/seat-booking/pkg/lock"
	"github.com/Astemirdum/seat-booking/pkg/logger"
	"github.com/Astemirdum/seat-booking/pkg/postgres"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"BOOKING_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"BOOKING_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE"`
}

type Config struct {
	Server   HTTPServer  `yaml:"server"`
	Database postgres.DB `yaml:"db"`
	Auth     auth.Config `yaml:"auth" json:"-"`
	Kafka    kafka.Config
	Redis    lock.RedisConfig `json:"-"`
	Log      logger.Log       `yaml:"log"`
	// CompleteInterval is how often expired ACTIVE reservations are moved to COMPLETED.
	CompleteInterval time.Duration `yaml:"completeInterval" envconfig:"COMPLETE_INTERVAL" default:"1m"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return &cfg
}

func printConfig(cfg Config) {
	cfg.Database.Password = "***"
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
