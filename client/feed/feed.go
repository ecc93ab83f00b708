// Package feed tails the broadcast topic for one recipient.
//
// The engine answers every instruction through an encrypted callback
// event on Kafka rather than on the submitting connection. A feed
// client reads that topic, drops events addressed to other parties,
// and opens the envelope on the ones addressed to its own keypair.
// Delivery is at least once; consumers deduplicate on Offset.
package feed

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"google.golang.org/protobuf/proto"

	"darkpool/api/pb"
	"darkpool/enc"
)

// Event is one decoded callback addressed to this client. Payload is
// the decrypted body: an order receipt, a match result, or a depth
// snapshot depending on Kind, and nil for kinds that carry none.
type Event struct {
	Offset  uint64
	Kind    pb.EventKind
	Time    time.Time
	Payload []byte
}

// Client consumes callback events for a single keypair.
type Client struct {
	reader *kafka.Reader
	keys   *enc.Keypair
}

// New connects a client to the broadcast topic. groupID names the
// Kafka consumer group; independent subscribers need distinct groups
// or they will steal each other's messages.
func New(brokers []string, topic, groupID string, keys *enc.Keypair) *Client {
	return &Client{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			Topic:    topic,
			GroupID:  groupID,
			MinBytes: 1,
			MaxBytes: 10e6,
		}),
		keys: keys,
	}
}

// Next blocks until an event addressed to this client arrives or ctx
// ends. Events for other recipients and undecodable messages are
// skipped, not surfaced.
func (c *Client) Next(ctx context.Context) (*Event, error) {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return nil, err
		}
		evt, err := c.decode(msg.Value)
		if err != nil {
			log.Warnf("Skipping event at kafka offset %d: %v", msg.Offset, err)
			continue
		}
		if evt == nil {
			continue
		}
		return evt, nil
	}
}

// decode parses one broadcast message and opens its envelope. A nil
// event with a nil error means the message is addressed elsewhere.
func (c *Client) decode(value []byte) (*Event, error) {
	wire := new(pb.CallbackEvent)
	if err := proto.Unmarshal(value, wire); err != nil {
		return nil, fmt.Errorf("bad callback event: %w", err)
	}

	pub := c.keys.Public()
	if !bytes.Equal(wire.Recipient, pub[:]) {
		return nil, nil
	}

	evt := &Event{
		Offset: wire.Offset,
		Kind:   wire.Kind,
		Time:   time.UnixMilli(wire.UnixMs),
	}
	if wire.Payload == nil {
		return evt, nil
	}

	env, err := pb.ToEnvelope(wire.Payload)
	if err != nil {
		return nil, fmt.Errorf("event %d: %w", wire.Offset, err)
	}
	pt, err := c.keys.Open(env)
	if err != nil {
		return nil, fmt.Errorf("event %d: %w", wire.Offset, err)
	}
	evt.Payload = pt
	return evt, nil
}

// Close releases the underlying Kafka reader.
func (c *Client) Close() error {
	return c.reader.Close()
}
