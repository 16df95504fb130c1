package config

// RedisConfig holds the connection and consumer settings for the
// lifecycle event stream.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`

	// Stream consumer settings
	Stream        string   `yaml:"stream"`
	Group         string   `yaml:"group"`
	Consumer      string   `yaml:"consumer"`
	MinIdle       Duration `yaml:"min_idle"`
	MaxDeliveries int64    `yaml:"max_deliveries"`
}
