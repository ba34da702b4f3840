package submission

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"
)

// Producer interface defines the contract for publishing booking payloads
type Producer interface {
	Publish(ctx context.Context, payload *Payload) error
	Close() error
	HealthCheck(ctx context.Context) error
}

// KafkaProducerConfig contains configuration for the booking producer
type KafkaProducerConfig struct {
	Brokers          []string
	BookingTopic     string
	RetryMax         int
	TimeoutMs        int
	RequiredAcks     sarama.RequiredAcks
	CompressionType  sarama.CompressionCodec
	IdempotentWrites bool
	MaxMessageBytes  int
}

// DefaultKafkaProducerConfig returns a default producer configuration
func DefaultKafkaProducerConfig() *KafkaProducerConfig {
	return &KafkaProducerConfig{
		Brokers:          []string{"localhost:9092"},
		BookingTopic:     "bookings",
		RetryMax:         3,
		TimeoutMs:        10000,
		RequiredAcks:     sarama.WaitForAll,
		CompressionType:  sarama.CompressionSnappy,
		IdempotentWrites: true,
		MaxMessageBytes:  1000000, // 1MB
	}
}

// KafkaBookingProducer publishes booking payloads to Kafka
type KafkaBookingProducer struct {
	producer sarama.SyncProducer
	config   *KafkaProducerConfig
}

// NewKafkaBookingProducer creates a new Kafka booking producer
func NewKafkaBookingProducer(config *KafkaProducerConfig) (Producer, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = config.RequiredAcks
	saramaConfig.Producer.Compression = config.CompressionType
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Timeout = time.Duration(config.TimeoutMs) * time.Millisecond
	saramaConfig.Producer.Idempotent = config.IdempotentWrites
	saramaConfig.Producer.MaxMessageBytes = config.MaxMessageBytes

	if config.IdempotentWrites {
		saramaConfig.Net.MaxOpenRequests = 1
	}

	// Hash partitioner keeps all messages for one booking ref in order
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &KafkaBookingProducer{
		producer: producer,
		config:   config,
	}, nil
}

// Publish sends a booking payload to the booking topic
func (p *KafkaBookingProducer) Publish(ctx context.Context, payload *Payload) error {
	messageBytes, err := payload.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal booking payload: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     p.config.BookingTopic,
		Key:       sarama.StringEncoder(payload.BookingRef),
		Value:     sarama.ByteEncoder(messageBytes),
		Timestamp: payload.SubmittedAt,
		Headers: []sarama.RecordHeader{
			{Key: []byte("booking_ref"), Value: []byte(payload.BookingRef)},
			{Key: []byte("package_id"), Value: []byte(payload.PackageID)},
			{Key: []byte("content_type"), Value: []byte("application/json")},
		},
	}

	if _, _, err := p.producer.SendMessage(message); err != nil {
		return fmt.Errorf("failed to publish booking %s: %w", payload.BookingRef, err)
	}
	return nil
}

// Close shuts down the underlying producer
func (p *KafkaBookingProducer) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("failed to close Kafka producer: %w", err)
	}
	return nil
}

// HealthCheck verifies broker connectivity
func (p *KafkaBookingProducer) HealthCheck(ctx context.Context) error {
	client, err := sarama.NewClient(p.config.Brokers, sarama.NewConfig())
	if err != nil {
		return fmt.Errorf("kafka health check failed: %w", err)
	}
	defer client.Close()

	brokers := client.Brokers()
	if len(brokers) == 0 {
		return fmt.Errorf("no kafka brokers available")
	}
	return nil
}
