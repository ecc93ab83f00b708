// Package broadcaster drains the outbox to Kafka. Events become
// visible to clients only through this path; the ledger store is the
// source of truth for what is still owed.
package broadcaster

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"google.golang.org/protobuf/proto"

	"darkpool/api/pb"
	"darkpool/infra/ledger"
)

type Broadcaster struct {
	store      *ledger.Store
	producer   sarama.SyncProducer
	topic      string
	retryAfter time.Duration
}

// ------------------------------------------------
// CONSTRUCTION
// ------------------------------------------------

// Dial connects a synchronous producer configured the way delivery
// needs it: acks from all in-sync replicas, bounded broker retries.
func Dial(brokers []string) (sarama.SyncProducer, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	return sarama.NewSyncProducer(brokers, cfg)
}

// New wires a broadcaster over an outbox and a producer. Records stuck
// in SENT are retried once their last attempt is older than retryAfter.
func New(store *ledger.Store, producer sarama.SyncProducer, topic string, retryAfter time.Duration) *Broadcaster {
	return &Broadcaster{
		store:      store,
		producer:   producer,
		topic:      topic,
		retryAfter: retryAfter,
	}
}

// ------------------------------------------------
// SWEEP LOOP
// ------------------------------------------------

// Start sweeps the outbox on a ticker until ctx ends.
func (b *Broadcaster) Start(ctx context.Context, interval time.Duration) {
	log.Infof("Broadcaster started (topic %q, sweep every %s)", b.topic, interval)

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				b.sweep()
			}
		}
	}()
}

// sweep publishes NEW records, then retries SENT records whose last
// attempt is older than the retry window. A crash between publish and
// ack leaves a record SENT; the retry pass repairs it, so delivery is
// at-least-once and consumers must dedupe on offset.
func (b *Broadcaster) sweep() {
	err := b.store.ScanEvents(ledger.StateNew, func(rec ledger.EventRecord) error {
		b.publish(rec)
		return nil
	})
	if err != nil {
		log.Errorf("Outbox scan failed: %v", err)
		return
	}

	cutoff := time.Now().Add(-b.retryAfter).UnixMilli()
	err = b.store.ScanEvents(ledger.StateSent, func(rec ledger.EventRecord) error {
		if rec.LastAttempt > cutoff {
			return nil
		}
		b.publish(rec)
		return nil
	})
	if err != nil {
		log.Errorf("Outbox retry scan failed: %v", err)
	}
}

// publish walks one record to SENT, sends it, and acks it. A failed
// send leaves the record SENT for a later sweep.
func (b *Broadcaster) publish(rec ledger.EventRecord) {
	if err := b.store.MarkSent(rec.Offset); err != nil {
		log.Errorf("Mark sent %d: %v", rec.Offset, err)
		return
	}

	msg := &sarama.ProducerMessage{
		Topic: b.topic,
		Value: sarama.ByteEncoder(rec.Payload),
	}
	if key := recipientKey(rec.Payload); len(key) > 0 {
		msg.Key = sarama.ByteEncoder(key)
	}

	if _, _, err := b.producer.SendMessage(msg); err != nil {
		log.Warnf("Publish offset %d failed, will retry: %v", rec.Offset, err)
		return
	}

	if err := b.store.MarkAcked(rec.Offset); err != nil {
		log.Errorf("Mark acked %d: %v", rec.Offset, err)
		return
	}
	log.Debugf("Broadcast event at offset %d", rec.Offset)
}

// recipientKey partitions the topic by recipient so one client's
// events stay in order. Undecodable payloads fall back to no key.
func recipientKey(payload []byte) []byte {
	evt := &pb.CallbackEvent{}
	if err := proto.Unmarshal(payload, evt); err != nil {
		return nil
	}
	return evt.Recipient
}

// ------------------------------------------------
// SHUTDOWN
// ------------------------------------------------

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}
