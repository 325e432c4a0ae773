package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const BookTopic = "bookshelf.books"

type Config struct {
	Addrs []string `yaml:"addrs" envconfig:"KAFKA_ADDRS"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

func NewSyncProducer(cfg Config) (sarama.SyncProducer, error) {
	return sarama.NewSyncProducer(cfg.Addrs, ProducerConfig())
}

// ProducerConfig keeps a send short: it runs inside the HTTP request that changed the book.
func ProducerConfig() *sarama.Config {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Retry.Max = 1
	defaultCfg.Producer.Retry.Backoff = 50 * time.Millisecond
	defaultCfg.Producer.Timeout = time.Second
	defaultCfg.Net.DialTimeout = 2 * time.Second
	defaultCfg.Net.ReadTimeout = 2 * time.Second
	defaultCfg.Net.WriteTimeout = 2 * time.Second
	defaultCfg.Metadata.Retry.Max = 1

	return defaultCfg
}
