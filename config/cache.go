package config

import "time"

// RedisConfig contains Redis configuration. Redis holds viewer sessions and
// the cached recent-activity snapshots.
type RedisConfig struct {
	URI                string   `env:"URI"                  envDefault:"localhost:6379"`
	Password           string   `env:"PASSWORD"             envDefault:""`
	SentinelNodes      []string `env:"SENTINEL_NODES"       envDefault:"localhost:26379"`
	SentinelMasterName string   `env:"SENTINEL_MASTER_NAME" envDefault:"mymaster"`
	SentinelPassword   string   `env:"SENTINEL_PASSWORD"    envDefault:""`
	UseSentinel        bool     `env:"USE_SENTINEL"         envDefault:"false"`
	ClusterNodes       []string `env:"CLUSTER_NODES"        envDefault:""`
	UseCluster         bool     `env:"USE_CLUSTER"          envDefault:"false"`
}

// CacheConfig contains cache tuning for the recent-activity summary.
type CacheConfig struct {
	// SummaryTTL is how long a cached overview snapshot stays fresh.
	SummaryTTL time.Duration `env:"CACHE_SUMMARY_TTL" envDefault:"30s"`

	// SummarySize is the number of events kept in each snapshot.
	SummarySize int `env:"CACHE_SUMMARY_SIZE" envDefault:"5"`
}

// Sanitize applies guardrails to cache configuration values.
func (c *CacheConfig) Sanitize() {
	if c.SummaryTTL <= 0 {
		c.SummaryTTL = 30 * time.Second
	}
	if c.SummarySize < 1 {
		c.SummarySize = 5
	}
}
