package config

// Default configuration values
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"

	// DefaultPoolCapacity bounds the loot box pool; generation is a no-op
	// once the pool holds this many unopened boxes.
	DefaultPoolCapacity = 5

	// DefaultBoxTTLSeconds is how long an unopened box survives in the pool
	DefaultBoxTTLSeconds = 600

	// DefaultGenerationIntervalSeconds is the pool refill cadence
	DefaultGenerationIntervalSeconds = 10

	// DefaultFrameIntervalMillis is the simulation frame cadence
	DefaultFrameIntervalMillis = 100

	DefaultItemsPath      = "configs/items.json"
	DefaultDeadLetterPath = "dead_letter.jsonl"
	DefaultPlayerName     = "player"

	// DefaultMetricsAddr is where the Prometheus endpoint listens;
	// an empty METRICS_ADDR disables it.
	DefaultMetricsAddr = "127.0.0.1:9091"
)
