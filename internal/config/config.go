package config

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

// RedisConfig holds redis connection settings.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// ServerConfig controls the read-only results API.
type ServerConfig struct {
	Addr         string   `mapstructure:"addr"`
	CORSOrigins  []string `mapstructure:"cors_origins"`
	ReadTimeout  string   `mapstructure:"read_timeout"`  // duration string, e.g., "10s"
	WriteTimeout string   `mapstructure:"write_timeout"` // duration string, e.g., "30s"
}

// DatasetConfig points at the flat post file the analyzer watches.
type DatasetConfig struct {
	Path            string `mapstructure:"path"`
	RefreshInterval string `mapstructure:"refresh_interval"` // duration string, e.g., "5m"
	CacheTTL        string `mapstructure:"cache_ttl"`        // duration string, e.g., "168h"
}

// AnalyticsConfig holds the run-scoped pipeline settings.
type AnalyticsConfig struct {
	SentimentStrategy string   `mapstructure:"sentiment_strategy"` // lexicon or statistical
	EnableTopics      bool     `mapstructure:"enable_topics"`
	TopicCount        int      `mapstructure:"topic_count"`
	TopicTerms        int      `mapstructure:"topic_terms"`
	TopicSeed         int64    `mapstructure:"topic_seed"`
	TopicIterations   int      `mapstructure:"topic_iterations"`
	TopN              int      `mapstructure:"top_n"` // size of top/bottom sentiment views
	DenseRange        bool     `mapstructure:"dense_range"`
	Subreddits        []string `mapstructure:"subreddits"`
	Workers           int      `mapstructure:"workers"`
}

// NATSConfig controls run-completed event publishing (optional).
type NATSConfig struct {
	URL     string `mapstructure:"url"`
	Subject string `mapstructure:"subject"`
}

// OpenAIConfig controls the optional topic labeler.
type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

// Config is the top-level configuration structure.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Server    ServerConfig    `mapstructure:"server"`
	Dataset   DatasetConfig   `mapstructure:"dataset"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
	NATS      NATSConfig      `mapstructure:"nats"`
	OpenAI    OpenAIConfig    `mapstructure:"openai"`
}

// FillDefaults applies default values if not provided.
func (c *Config) FillDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "127.0.0.1:6379"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ReadTimeout == "" {
		c.Server.ReadTimeout = "10s"
	}
	if c.Server.WriteTimeout == "" {
		c.Server.WriteTimeout = "30s"
	}
	if c.Dataset.Path == "" {
		c.Dataset.Path = "cleaned_tech_posts.csv"
	}
	if c.Dataset.RefreshInterval == "" {
		c.Dataset.RefreshInterval = "5m"
	}
	if c.Dataset.CacheTTL == "" {
		c.Dataset.CacheTTL = "168h"
	}
	if c.Analytics.SentimentStrategy == "" {
		c.Analytics.SentimentStrategy = "lexicon"
	}
	if c.Analytics.TopicCount == 0 {
		c.Analytics.TopicCount = 3
	}
	if c.Analytics.TopicTerms == 0 {
		c.Analytics.TopicTerms = 5
	}
	if c.Analytics.TopicSeed == 0 {
		c.Analytics.TopicSeed = 42
	}
	if c.Analytics.TopicIterations == 0 {
		c.Analytics.TopicIterations = 200
	}
	if c.Analytics.TopN == 0 {
		c.Analytics.TopN = 3
	}
	if c.Analytics.Workers == 0 {
		c.Analytics.Workers = 4
	}
	if c.NATS.Subject == "" {
		c.NATS.Subject = "analytics.run.completed"
	}
}
