package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BruksfildServices01/barber-queue/internal/domain/queue"
	"github.com/BruksfildServices01/barber-queue/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-queue/internal/notify"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

type Config struct {
	ServerPort   string
	ShopTimezone string

	SlotMinutes       int
	MaxQueueSize      int
	AvgServiceMinutes int
	NotificationCap   int
	QueueEnabled      bool

	LunchStart string
	LunchEnd   string
}

func Load() *Config {
	return &Config{
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		ShopTimezone: getEnv("SHOP_TIMEZONE", timezone.DefaultTimezone),

		SlotMinutes:       getEnvInt("SLOT_MINUTES", schedule.DefaultSlotMinutes),
		MaxQueueSize:      getEnvInt("MAX_QUEUE_SIZE", 10),
		AvgServiceMinutes: getEnvInt("AVG_SERVICE_MINUTES", queue.DefaultAvgServiceMinutes),
		NotificationCap:   getEnvInt("NOTIFICATION_CAP", notify.DefaultCapacity),
		QueueEnabled:      getEnvBool("QUEUE_ENABLED", true),

		LunchStart: getEnv("LUNCH_START", "12:00"),
		LunchEnd:   getEnv("LUNCH_END", "13:00"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
