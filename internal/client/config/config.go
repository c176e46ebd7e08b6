package config

import "time"

// Config holds runtime settings for the photoctl CLI.
//
// Units: all intervals are time.Durations; UploadMaxBytes is bytes.
type Config struct {
	// APIBaseURL is the root of the photo service HTTP API,
	// e.g. "http://localhost:8080/api".
	APIBaseURL string `env:"PHOTOCTL_API_URL"`

	// UserID is attached to every upload and list query.
	UserID string `env:"PHOTOCTL_USER_ID"`

	// Username/Password are the basic-auth fallback used until a bearer
	// token is installed.
	Username string `env:"PHOTOCTL_USERNAME"`
	Password string `env:"PHOTOCTL_PASSWORD"`

	// Token is an optional bearer token to start the session with.
	Token string `env:"PHOTOCTL_TOKEN"`

	// PageSize is the default photo page size for list/load.
	PageSize int `env:"PHOTOCTL_PAGE_SIZE"`

	// UploadMaxBytes bounds accepted upload sizes.
	UploadMaxBytes int64 `env:"PHOTOCTL_UPLOAD_MAX_BYTES"`

	// ToastDuration is how long a notification stays up unless dismissed.
	ToastDuration time.Duration `env:"PHOTOCTL_TOAST_DURATION"`

	// OnlineCheckInterval is how often the CLI probes server reachability.
	OnlineCheckInterval time.Duration `env:"PHOTOCTL_ONLINE_CHECK_INTERVAL"`

	// RequestTimeout caps each API request.
	RequestTimeout time.Duration `env:"PHOTOCTL_REQUEST_TIMEOUT"`

	// LogFormat selects "console" (default) or "json" output.
	LogFormat string `env:"PHOTOCTL_LOG_FORMAT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api"
	c.UserID = "user-123"
	c.Username = "user"
	c.Password = "password"
	c.PageSize = 20
	c.UploadMaxBytes = 50 << 20
	c.ToastDuration = 5 * time.Second
	c.OnlineCheckInterval = 30 * time.Second
	c.RequestTimeout = 30 * time.Second
	c.LogFormat = "console"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
