package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Session   SessionConfig   `mapstructure:"session"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Log       LogConfig       `mapstructure:"log"`
	Upload    UploadConfig    `mapstructure:"upload"`
	Seed      SeedConfig      `mapstructure:"seed"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr is the listen address for net/http.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

type SessionConfig struct {
	Secret        string        `mapstructure:"secret"`
	TTL           time.Duration `mapstructure:"ttl"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
	CookieSecure  bool          `mapstructure:"cookie_secure"`
}

type RateLimitConfig struct {
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

type RedisConfig struct {
	URL string `mapstructure:"url"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

type UploadConfig struct {
	MaxImages     int   `mapstructure:"max_images"`
	MaxImageBytes int64 `mapstructure:"max_image_bytes"`
	MaxFormBytes  int64 `mapstructure:"max_form_bytes"`
}

type SeedConfig struct {
	File string `mapstructure:"file"`
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}
	if c.Session.TTL <= 0 {
		errs = append(errs, errors.New("session.ttl must be positive"))
	}
	if c.Session.SweepInterval <= 0 {
		errs = append(errs, errors.New("session.sweep_interval must be positive"))
	}
	if c.IsProduction() && c.Session.Secret == "" {
		errs = append(errs, errors.New("session.secret is required in production"))
	}
	if c.RateLimit.Requests <= 0 {
		errs = append(errs, errors.New("rate_limit.requests must be positive"))
	}
	if c.RateLimit.Window <= 0 {
		errs = append(errs, errors.New("rate_limit.window must be positive"))
	}
	if c.Upload.MaxImages <= 0 {
		errs = append(errs, errors.New("upload.max_images must be positive"))
	}
	if c.Upload.MaxImageBytes <= 0 {
		errs = append(errs, errors.New("upload.max_image_bytes must be positive"))
	}
	if _, err := zap.ParseAtomicLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

const devSessionSecret = "dev-session-secret-change-in-production"

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")

	v.SetDefault("server.port", 8081)
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000", "http://localhost:3001"})
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("session.secret", "")
	v.SetDefault("session.ttl", 30*time.Minute)
	v.SetDefault("session.sweep_interval", time.Minute)
	v.SetDefault("session.cookie_secure", false)

	v.SetDefault("rate_limit.requests", 100)
	v.SetDefault("rate_limit.window", time.Minute)

	v.SetDefault("redis.url", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)

	v.SetDefault("upload.max_images", 5)
	v.SetDefault("upload.max_image_bytes", 10<<20)
	v.SetDefault("upload.max_form_bytes", 64<<20)

	v.SetDefault("seed.file", "")
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	// SESSION_SECRET, REDIS_URL, SERVER_PORT, RATE_LIMIT_REQUESTS, ...
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Session.Secret == "" && !cfg.IsProduction() {
		cfg.Session.Secret = devSessionSecret
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads .env (if present), defaults, the optional config file and the
// environment, in increasing order of precedence.
func Load(configFile string) (*Watcher, error) {
	_ = godotenv.Load()

	v := newViper()
	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType(strings.TrimPrefix(filepath.Ext(configFile), "."))
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}
	return &Watcher{cfg: cfg, viper: v, file: configFile}, nil
}

// ── Watcher ──────────────────────────────────────────────────────────────────

// Watcher holds the current Config and re-reads it when the config file
// changes. Without a config file there is nothing to watch.
type Watcher struct {
	mu          sync.RWMutex
	cfg         *Config
	viper       *viper.Viper
	file        string
	subscribers []func(*Config)
}

func (w *Watcher) Get() *Config {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.cfg
}

// Subscribe registers fn to receive every successfully reloaded Config.
func (w *Watcher) Subscribe(fn func(*Config)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.subscribers = append(w.subscribers, fn)
}

// EnableHotReload starts watching the config file. A reload that fails to
// decode or validate is logged and the previous Config stays in effect.
func (w *Watcher) EnableHotReload(log *zap.Logger) bool {
	if w.file == "" {
		return false
	}
	w.viper.OnConfigChange(func(e fsnotify.Event) {
		log.Info("config file changed", zap.String("file", e.Name), zap.String("op", e.Op.String()))
		w.reload(log)
	})
	w.viper.WatchConfig()
	return true
}

func (w *Watcher) reload(log *zap.Logger) {
	cfg, err := decode(w.viper)
	if err != nil {
		log.Warn("config reload rejected", zap.Error(err))
		return
	}

	w.mu.Lock()
	w.cfg = cfg
	subscribers := make([]func(*Config), len(w.subscribers))
	copy(subscribers, w.subscribers)
	w.mu.Unlock()

	for _, fn := range subscribers {
		fn(cfg)
	}
}
