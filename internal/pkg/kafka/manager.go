package kafka

import (
	"Conexus/internal/api/config"
	"Conexus/internal/service"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager owns the Kafka consumer groups and their handlers.
type ConsumerManager struct {
	connectionsConsumer sarama.ConsumerGroup
	connectionsHandler  sarama.ConsumerGroupHandler
}

func NewConsumerManager(
	cfg *config.Config,
	networkMetricService service.NetworkMetricService,
) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	connectionsConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaConnectionConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	connectionsHandler := NewConnectionsConsumer(networkMetricService)

	return &ConsumerManager{
		connectionsConsumer: connectionsConsumer,
		connectionsHandler:  connectionsHandler,
	}, nil
}

// Start runs the consumers until the context is cancelled, then closes them.
func (m *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	go func() {
		topic := cfg.KafkaConnectionConsumer.Topic
		log.Info("Connections consumer started", "topic", topic)
		for {
			if err := m.connectionsConsumer.Consume(ctx, []string{topic}, m.connectionsHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.connectionsConsumer.Close(); err != nil {
		log.Error("Failed to close connections consumer", "err", err)
	}

	return nil
}
