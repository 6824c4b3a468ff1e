package kafka

import (
	"github.com/IBM/sarama"
)

const EventsTopic = "booking.events"

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
	Topic string   `envconfig:"KAFKA_TOPIC" default:"booking.events"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}
