package config

// Config is the top-level configuration body.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	DB        DBConfig        `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Naver     NaverConfig     `mapstructure:"naver"`
	Collector CollectorConfig `mapstructure:"collector"`
	Cron      CronConfig      `mapstructure:"cron"`
	Logstash  LogstashConfig  `mapstructure:"logstash"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type LLMConfig struct {
	URL         string           `mapstructure:"url"`
	Model       string           `mapstructure:"model"`
	ApiKey      string           `mapstructure:"api_key"`
	Timeout     int              `mapstructure:"timeout"`
	PromptsPath PromptPathConfig `mapstructure:"prompts_path"`
}

type PromptPathConfig struct {
	SentimentClassify string `mapstructure:"sentiment_classify"`
	HeartInsight      string `mapstructure:"heart_insight"`
	KeywordExtract    string `mapstructure:"keyword_extract"`
	KeywordCluster    string `mapstructure:"keyword_cluster"`
}

// NaverConfig carries the open API credentials for blog/cafe search.
type NaverConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	BlogURL      string `mapstructure:"blog_url"`
	CafeURL      string `mapstructure:"cafe_url"`
}

type CollectorConfig struct {
	GooglePlayURL string `mapstructure:"google_play_url"`
	AppStoreURL   string `mapstructure:"app_store_url"`
	UserAgent     string `mapstructure:"user_agent"`
	Timeout       int    `mapstructure:"timeout"`
}

type CronConfig struct {
	CollectSpec string `mapstructure:"collect_spec"`
}

type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}
