package kafka

import (
	"Conexus/internal/pkg/consts"
	"Conexus/internal/service"
	log "log/slog"
	"reflect"
	"strconv"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// ConnectionsConsumer applies connections-table binlog events to the daily
// network snapshots, keeping them current between nightly syncs.
type ConnectionsConsumer struct {
	networkMetricService service.NetworkMetricService
}

func NewConnectionsConsumer(networkMetricService service.NetworkMetricService) *ConnectionsConsumer {
	return &ConnectionsConsumer{
		networkMetricService: networkMetricService,
	}
}

func (c *ConnectionsConsumer) Setup(sarama.ConsumerGroupSession) error {
	log.Info("connections consumer setup")
	return nil
}

func (c *ConnectionsConsumer) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("connections consumer cleanup")
	return nil
}

func (c *ConnectionsConsumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		log.Info("consume message", "msg", string(msg.Value))
		c.handleMessage(session, msg)
		session.MarkMessage(msg, "")
	}
	return nil
}

func (c *ConnectionsConsumer) handleMessage(session sarama.ConsumerGroupSession, msg *sarama.ConsumerMessage) {
	var canalMsg CanalMessage
	if err := json.Unmarshal(msg.Value, &canalMsg); err != nil {
		log.Error("unmarshal canal message error", "err", err)
		return
	}

	if canalMsg.Table != "connections" {
		return
	}

	if len(canalMsg.Data) == 0 {
		return
	}

	// Each directional row counts once for its owning user; the paired
	// reverse row arrives as its own event.
	for _, data := range canalMsg.Data {
		val, ok := data["user_id"]
		if !ok {
			continue
		}

		idStr, ok := val.(string)
		if !ok {
			log.Warn("unexpected type for user_id", "type", reflect.TypeOf(val))
			return
		}
		userID, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			log.Error("parse user_id error", "err", err)
			return
		}

		switch canalMsg.Type {
		case consts.INSERT:
			if err := c.networkMetricService.AddCountNetworkMetric(session.Context(), userID, 1); err != nil {
				log.Error("add network metric error", "err", err)
			}
		case consts.DELETE:
			if err := c.networkMetricService.AddCountNetworkMetric(session.Context(), userID, -1); err != nil {
				log.Error("subtract network metric error", "err", err)
			}
		}
	}
}
