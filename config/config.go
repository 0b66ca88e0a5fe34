package config

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

// OrdersTopic carries the order lifecycle events consumed by the counter
// board.
const OrdersTopic = "orders"

func MustInitPostgres() *sql.DB {
	connStr := "host=" + getenv("DB_HOST", "localhost") +
		" port=" + getenv("DB_PORT", "5432") +
		" user=" + getenv("DB_USER", "postgres") +
		" password=" + os.Getenv("DB_PASSWORD") +
		" dbname=" + getenv("DB_NAME", "canteen") +
		" sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: getenv("REDIS_HOST", "localhost") + ":" + getenv("REDIS_PORT", "6379"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{getenv("KAFKA_BROKER", "localhost:9092")},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(getenv("KAFKA_BROKER", "localhost:9092")),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}

func HTTPAddr() string {
	return ":" + getenv("PORT", "5000")
}

// JWTSecret signs session tokens. The default only exists so local
// development works out of the box.
func JWTSecret() []byte {
	return []byte(getenv("JWT_SECRET", "dev-secret-change-me"))
}

// PublicBaseURL is the address encoded into QR pickup passes.
func PublicBaseURL() string {
	return getenv("PUBLIC_BASE_URL", "http://localhost:5000")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
