// Package config resolves the suite configuration once at startup.
// Components receive a *Config; nothing reads the environment ad hoc.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// Config holds everything the suite needs to run against a deployed
// storefront. All values come from E2E_* environment variables, with an
// optional .env file for local runs (real environment wins).
type Config struct {
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
	APIURL  string `mapstructure:"api_url" validate:"required,url"`

	Admin AdminConfig `mapstructure:"admin"`

	Browser         string `mapstructure:"browser" validate:"oneof=chromium firefox"`
	Headless        bool   `mapstructure:"headless"`
	SlowMoMS        int    `mapstructure:"slow_mo_ms" validate:"gte=0"`
	TimeoutMS       int    `mapstructure:"timeout_ms" validate:"gt=0"`
	ExpectTimeoutMS int    `mapstructure:"expect_timeout_ms" validate:"gt=0"`

	Viewport ViewportConfig `mapstructure:"viewport"`

	Screenshots  bool   `mapstructure:"screenshots"`
	Videos       bool   `mapstructure:"videos"`
	ArtifactsDir string `mapstructure:"artifacts_dir" validate:"required"`

	// LockoutThreshold is the number of consecutive failed login
	// attempts after which the backend locks the account. The demo
	// environments have shipped with both 4 and 5, so it is
	// configuration rather than a constant.
	LockoutThreshold int `mapstructure:"lockout_threshold" validate:"gt=0"`

	// RunID scopes artifact output (screenshots, videos) to one suite
	// invocation.
	RunID string `mapstructure:"-"`
}

// AdminConfig carries the credentials for the pre-provisioned admin
// account. They are optional at load time: only admin-mediated flows
// need them, and a missing value fails those tests during setup.
type AdminConfig struct {
	Email    string `mapstructure:"email" validate:"omitempty,email"`
	Password string `mapstructure:"password"`
}

// ViewportConfig is the browser window size for every test context.
type ViewportConfig struct {
	Width  int `mapstructure:"width" validate:"gt=0"`
	Height int `mapstructure:"height" validate:"gt=0"`
}

// Load resolves and validates the configuration. Call it once per
// process; pass the result down.
func Load() (*Config, error) {
	loadDotEnv(".env")

	v := viper.New()
	v.SetEnvPrefix("e2e")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("base_url", "https://practicesoftwaretesting.com")
	v.SetDefault("api_url", "https://api.practicesoftwaretesting.com")
	v.SetDefault("admin.email", "")
	v.SetDefault("admin.password", "")
	v.SetDefault("browser", "chromium")
	v.SetDefault("headless", true)
	v.SetDefault("slow_mo_ms", 0)
	v.SetDefault("timeout_ms", 30000)
	v.SetDefault("expect_timeout_ms", 5000)
	v.SetDefault("viewport.width", 1280)
	v.SetDefault("viewport.height", 720)
	v.SetDefault("screenshots", true)
	v.SetDefault("videos", false)
	v.SetDefault("artifacts_dir", "test-results")
	v.SetDefault("lockout_threshold", 4)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	cfg.RunID = uuid.NewString()[:8]

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadDotEnv reads KEY=VALUE pairs from path into the process
// environment. Existing variables are never overwritten.
func loadDotEnv(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		return
	}
	for _, key := range v.AllKeys() {
		name := strings.ToUpper(key)
		if os.Getenv(name) != "" {
			continue
		}
		_ = os.Setenv(name, v.GetString(key))
	}
}

// HasAdminCredentials reports whether admin-mediated flows can run.
func (c *Config) HasAdminCredentials() bool {
	return c.Admin.Email != "" && c.Admin.Password != ""
}

// ActionTimeout bounds every individual browser action.
func (c *Config) ActionTimeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// ExpectTimeout bounds assertions and condition waits.
func (c *Config) ExpectTimeout() time.Duration {
	return time.Duration(c.ExpectTimeoutMS) * time.Millisecond
}

// RunArtifactsDir is the per-invocation directory for screenshots and
// videos.
func (c *Config) RunArtifactsDir() string {
	return filepath.Join(c.ArtifactsDir, c.RunID)
}

// Application URLs. The data-test hooks behind these paths are the
// contract the page objects depend on.

func (c *Config) StorefrontURL() string     { return c.BaseURL }
func (c *Config) LoginURL() string          { return c.BaseURL + "/auth/login" }
func (c *Config) RegisterURL() string       { return c.BaseURL + "/auth/register" }
func (c *Config) ForgotPasswordURL() string { return c.BaseURL + "/auth/forgot-password" }
func (c *Config) AccountURL() string        { return c.BaseURL + "/account" }
func (c *Config) AdminDashboardURL() string { return c.BaseURL + "/admin/dashboard" }
func (c *Config) AdminUsersURL() string     { return c.BaseURL + "/admin/users" }

// ForgotPasswordAPI is the endpoint whose intercepted response carries
// the {success} body asserted by the recovery specs.
func (c *Config) ForgotPasswordAPI() string { return c.APIURL + "/users/forgot-password" }

// Redacted returns a copy safe for logging.
func (c *Config) Redacted() Config {
	out := *c
	if out.Admin.Password != "" {
		out.Admin.Password = "[redacted]"
	}
	return out
}
