package kafka

import (
	"fmt"

	"github.com/IBM/sarama"

	"sluice/sink"
)

type Config struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
	Acks    int16    `yaml:"required_acks"` // 0,1,-1
}

type driver struct {
	cfg Config
	p   sarama.AsyncProducer
}

func (d *driver) Configure(raw any) error {
	cfg, ok := raw.(Config)
	if !ok {
		return fmt.Errorf("kafka-sink: expected Config, got %T", raw)
	}
	d.cfg = cfg

	sc := sarama.NewConfig()
	sc.Producer.RequiredAcks = sarama.RequiredAcks(cfg.Acks)
	var err error
	d.p, err = sarama.NewAsyncProducer(cfg.Brokers, sc)
	return err
}

func (d *driver) Push(p []byte) error {
	// the producer retains the message beyond this call
	val := make([]byte, len(p))
	copy(val, p)
	d.p.Input() <- &sarama.ProducerMessage{
		Topic: d.cfg.Topic,
		Value: sarama.ByteEncoder(val),
	}
	return nil
}

func (d *driver) Close() error {
	if d.p == nil {
		return nil
	}
	return d.p.Close()
}

func init() { sink.Register("kafka", func() sink.Adapter { return &driver{} }) }
