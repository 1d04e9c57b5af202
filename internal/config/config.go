package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort       = 2336
	defaultEnv        = "development"
	defaultDBHost     = "127.0.0.1"
	defaultDBPort     = 3306
	defaultDBUser     = "root"
	defaultDBPassword = "password"
	defaultDBName     = "odhav_site"
	defaultDBCharset  = "utf8mb4"
	defaultDBLoc      = "Local"
	defaultBaseURL    = "http://localhost:3000"
	defaultSiteName   = "Odhav Enterprise"
)

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int                   `yaml:"port"`
	DSN            string                `yaml:"dsn"` // MySQL DSN; overrides the database block
	Database       DatabaseRuntimeConfig `yaml:"database"`
	RedisURL       string                `yaml:"redis_url"`
	Env            string                `yaml:"env"` // "development" | "production"
	AllowedOrigins []string              `yaml:"allowed_origins"`
	JWTSecret      string                `yaml:"jwt_secret"`
	Site           SiteConfig            `yaml:"site"`
	Admin          AdminConfig           `yaml:"admin"`
}

// DatabaseRuntimeConfig assembles a DSN from discrete fields when no full
// DSN is given.
type DatabaseRuntimeConfig struct {
	DSN      string            `yaml:"dsn"`
	Host     string            `yaml:"host"`
	Port     int               `yaml:"port"`
	User     string            `yaml:"user"`
	Password string            `yaml:"password"`
	Name     string            `yaml:"name"`
	Charset  string            `yaml:"charset"`
	Loc      string            `yaml:"loc"`
	Params   map[string]string `yaml:"params"`
}

// SiteConfig feeds the sitemap and SEO metadata.
type SiteConfig struct {
	BaseURL     string `yaml:"base_url"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// AdminConfig seeds the dashboard account on first boot.
type AdminConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Load reads, defaults and normalizes the YAML configuration. A missing
// file is tolerated in development (all defaults apply); a production
// configuration without a resolvable DSN is a fatal startup condition.
func Load(configPath string) (*AppConfig, error) {
	cfg := defaultAppConfig()

	raw, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config %s: %w", configPath, err)
		}
	} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", configPath, err)
	}

	explicitDB := cfg.DSN != "" || cfg.Database.DSN != "" ||
		cfg.Database.Host != "" || cfg.Database.Name != ""

	cfg.normalize()

	if cfg.Env == "production" && !explicitDB {
		return nil, fmt.Errorf("database connection is required in production: set dsn or the database block in %s", configPath)
	}

	return &cfg, nil
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port: defaultPort,
		Env:  defaultEnv,
		Site: SiteConfig{
			BaseURL: defaultBaseURL,
			Name:    defaultSiteName,
		},
		Admin: AdminConfig{Username: "admin"},
	}
}

func (c *AppConfig) normalize() {
	c.Env = normalizeEnv(c.Env)
	if c.Port <= 0 {
		c.Port = defaultPort
	}
	if c.DSN == "" {
		c.DSN = c.Database.DSNValue()
	}
	c.Site.BaseURL = strings.TrimRight(strings.TrimSpace(c.Site.BaseURL), "/")
	if c.Site.BaseURL == "" {
		c.Site.BaseURL = defaultBaseURL
	}
	if strings.TrimSpace(c.Site.Name) == "" {
		c.Site.Name = defaultSiteName
	}
	if strings.TrimSpace(c.Admin.Username) == "" {
		c.Admin.Username = "admin"
	}
	c.AllowedOrigins = normalizeOrigins(c.AllowedOrigins)
}

// DSNValue assembles a go-sql-driver DSN from the discrete fields.
func (c DatabaseRuntimeConfig) DSNValue() string {
	if strings.TrimSpace(c.DSN) != "" {
		return strings.TrimSpace(c.DSN)
	}

	host := firstNonEmpty(c.Host, defaultDBHost)
	port := c.Port
	if port <= 0 {
		port = defaultDBPort
	}
	user := firstNonEmpty(c.User, defaultDBUser)
	password := firstNonEmpty(c.Password, defaultDBPassword)
	name := firstNonEmpty(c.Name, defaultDBName)
	charset := firstNonEmpty(c.Charset, defaultDBCharset)
	loc := firstNonEmpty(c.Loc, defaultDBLoc)

	params := url.Values{}
	params.Set("charset", charset)
	params.Set("parseTime", "True")
	params.Set("loc", loc)
	for k, v := range c.Params {
		if strings.TrimSpace(k) != "" {
			params.Set(k, v)
		}
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s", user, password, host, port, name, params.Encode())
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool { return c.Env != "production" }

func normalizeEnv(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "production", "prod":
		return "production"
	default:
		return "development"
	}
}

func normalizeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
