package worker

// Config holds configuration for the bulk-processing worker pool.
type Config struct {
	// Workers is the number of concurrent workers per run.
	Workers int `mapstructure:"workers" default:"4"`
	// QueueSize is the producer/consumer queue depth.
	QueueSize int `mapstructure:"queue_size" default:"8"`
}
