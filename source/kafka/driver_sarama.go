// Package kafka provides a consumer-group source driver. Message values are
// delivered to the pipeline as raw chunks, in partition order; placeholders
// may span messages.
package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"

	"sluice/internal/logging"
	"sluice/source"
)

func init() {
	source.Register("sarama", func() source.Adapter { return &SaramaDriver{} })
}

type SaramaDriver struct {
	cfg    Config
	cl     sarama.Client
	group  sarama.ConsumerGroup
	th     *Throttle
	commit *commitPolicy
}

func (d *SaramaDriver) Configure(raw any) error {
	cfg, ok := raw.(Config)
	if !ok {
		return fmt.Errorf("kafka-source: expected Config, got %T", raw)
	}
	d.cfg = cfg
	d.commit = newCommitPolicy(cfg.Commit.Interval)
	if cfg.Throttle.RateBytes > 0 {
		d.th = NewThrottle(cfg.Throttle.Burst, cfg.Throttle.RateBytes, cfg.Throttle.Tick)
	}

	sc := sarama.NewConfig()
	if cfg.Version != "" {
		ver, err := sarama.ParseKafkaVersion(cfg.Version)
		if err != nil {
			return err
		}
		sc.Version = ver
	}
	sc.Consumer.Return.Errors = true
	if cfg.TLSEn {
		sc.Net.TLS.Enable = true
	}
	if cfg.SASLUser != "" {
		sc.Net.SASL.Enable = true
		sc.Net.SASL.User, sc.Net.SASL.Password = cfg.SASLUser, cfg.SASLPass
	}
	switch cfg.StartFrom {
	case "oldest":
		sc.Consumer.Offsets.Initial = sarama.OffsetOldest
	default:
		sc.Consumer.Offsets.Initial = sarama.OffsetNewest
	}

	var err error
	if d.cl, err = sarama.NewClient(cfg.Brokers, sc); err != nil {
		return err
	}
	d.group, err = sarama.NewConsumerGroupFromClient(cfg.GroupID, d.cl)
	return err
}

func (d *SaramaDriver) Run(ctx context.Context, emit source.EmitFunc) error {
	handler := &groupHandler{driver: d, emit: emit}
	for {
		if err := d.group.Consume(ctx, d.cfg.Topics, handler); err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func (d *SaramaDriver) Close() error {
	if d.group != nil {
		_ = d.group.Close()
	}
	if d.cl != nil {
		_ = d.cl.Close()
	}
	if d.th != nil {
		d.th.Close()
	}
	return nil
}

type groupHandler struct {
	driver *SaramaDriver
	emit   source.EmitFunc
}

func (*groupHandler) Setup(sarama.ConsumerGroupSession) error { return nil }

func (*groupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *groupHandler) ConsumeClaim(
	sess sarama.ConsumerGroupSession,
	claim sarama.ConsumerGroupClaim,
) error {
	for {
		select {
		case <-sess.Context().Done():
			return sess.Context().Err()

		case msg, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			if h.driver.th != nil {
				if err := h.driver.th.Acquire(sess.Context(), int64(len(msg.Value))); err != nil {
					return err
				}
			}
			if len(msg.Value) > 0 {
				// the pipeline owns the slice from here on
				if err := h.emit(msg.Value); err != nil {
					return err
				}
			}
			sess.MarkMessage(msg, "")
			if h.driver.commit.due() {
				sess.Commit()
				logging.L().Debug("kafka offsets committed",
					"topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)
			}
		}
	}
}
