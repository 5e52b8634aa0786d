package kafka

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("KAFKA_DECLINE_TOPIC", "declines")

	var cfg Config
	require.NoError(t, LoadEnv(&cfg))
	require.True(t, cfg.Enabled)
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Brokers)
	require.Equal(t, "converge.transaction.response", cfg.ResponseTopic)
	require.Equal(t, "declines", cfg.DeclineTopic)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	require.NoError(t, Config{}.Validate())

	cfg := DefaultConfig()
	cfg.Enabled = true
	require.NoError(t, cfg.Validate())

	cfg.Brokers = nil
	require.Error(t, cfg.Validate())

	cfg.Brokers = []string{" "}
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Enabled = true
	cfg.DeclineTopic = ""
	require.Error(t, cfg.Validate())
}
