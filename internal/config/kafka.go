package config

type Kafka struct {
	// Addresses is the list of seed brokers. Leaving it empty disables
	// everything that publishes to Kafka.
	Addresses []string `env:"KAFKA_ADDRESSES" envSeparator:","`
}

// Enabled reports whether Kafka publishing is configured.
func (k Kafka) Enabled() bool {
	return len(k.Addresses) > 0
}
