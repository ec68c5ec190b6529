package config

import "time"

type Config struct {
	Server    ServerConfig    `json:"server"`
	Logging   LoggingConfig   `json:"logging"`
	Fetch     FetchConfig     `json:"fetch"`
	HTTP      HTTPConfig      `json:"http"`
	RSS       RSSConfig       `json:"rss"`
	RateLimit RateLimitConfig `json:"rate_limit"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"9100"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"60s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"60s"`
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

// FetchConfig is the outbound URL policy. It is loaded once at startup and
// treated as immutable afterwards.
type FetchConfig struct {
	AllowURLFetch    bool     `json:"allow_url_fetch" env:"ALLOW_URL_FETCH" default:"1"`
	AllowedSchemes   []string `json:"allowed_schemes" env:"URL_ALLOWED_SCHEMES" default:"https"`
	AllowRedirects   bool     `json:"allow_redirects" env:"URL_ALLOW_REDIRECTS" default:"0"`
	MaxRedirects     int      `json:"max_redirects" env:"URL_MAX_REDIRECTS" default:"2"`
	AllowlistDomains []string `json:"allowlist_domains" env:"URL_ALLOWLIST_DOMAINS"`
	BlockPrivateIPs  bool     `json:"block_private_ips" env:"URL_BLOCK_PRIVATE_IPS" default:"1"`
	MaxBytes         int64    `json:"max_bytes" env:"HTTP_MAX_BYTES" default:"5000000"`
	RespectRobotsTxt bool     `json:"respect_robots_txt" env:"FETCH_RESPECT_ROBOTS_TXT" default:"0"`
}

// HTTPConfig holds transport-level timeouts for outbound requests. The
// *_SEC variables accept bare numbers of seconds for compatibility with the
// deployment environment; Go duration strings work as well.
type HTTPConfig struct {
	ConnectTimeout      time.Duration `json:"connect_timeout" env:"HTTP_CONNECT_TIMEOUT_SEC" default:"3"`
	ReadTimeout         time.Duration `json:"read_timeout" env:"HTTP_READ_TIMEOUT_SEC" default:"7"`
	DNSTimeout          time.Duration `json:"dns_timeout" env:"HTTP_DNS_TIMEOUT_SEC" default:"5"`
	TLSHandshakeTimeout time.Duration `json:"tls_handshake_timeout" env:"HTTP_TLS_HANDSHAKE_TIMEOUT" default:"10s"`
	IdleConnTimeout     time.Duration `json:"idle_conn_timeout" env:"HTTP_IDLE_CONN_TIMEOUT" default:"90s"`
	UserAgent           string        `json:"user_agent" env:"HTTP_USER_AGENT" default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"`
}

type RSSConfig struct {
	MaxBytes         int64    `json:"max_bytes" env:"RSS_MAX_BYTES" default:"2000000"`
	FeedsFileOnly    bool     `json:"feeds_file_only" env:"RSS_FEEDS_FILE_ONLY" default:"1"`
	ItemLinkPolicy   string   `json:"item_link_policy" env:"RSS_ITEM_LINK_POLICY" default:"A"`
	FeedURLs         []string `json:"feed_urls" env:"RSS_FEED_URLS"`
	FeedsFile        string   `json:"feeds_file" env:"RSS_FEEDS_FILE" default:"config/rss_feeds.txt"`
	SearchLimit      int      `json:"search_limit" env:"RSS_SEARCH_LIMIT" default:"5"`
	FetchConcurrency int      `json:"fetch_concurrency" env:"RSS_FETCH_CONCURRENCY" default:"4"`
}

type RateLimitConfig struct {
	ExternalAPIInterval time.Duration `json:"external_api_interval" env:"RATE_LIMIT_EXTERNAL_API_INTERVAL" default:"5s"`
}

// NewConfig creates a new configuration by loading from environment
// variables with fallback to default values.
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Load is an alias for NewConfig.
func Load() (*Config, error) {
	return NewConfig()
}
