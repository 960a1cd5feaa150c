package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultCount      = 500
	defaultMaxCount   = 100000
	defaultSeed       = 42
	defaultLogLevel   = "info"
	defaultLogFormat  = "text"
	defaultListenAddr = ":50051"
)

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Generation GenerationConfig `yaml:"generation"`
	Export     ExportConfig     `yaml:"export"`
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Log        LogConfig        `yaml:"log"`
}

// GenerationConfig はデータ生成に関する設定です。
type GenerationConfig struct {
	Count    int        `yaml:"count"`
	MaxCount int        `yaml:"max_count"`
	Seed     *int64     `yaml:"seed"`
	AsOfRaw  string     `yaml:"as_of"`
	AsOf     *time.Time `yaml:"-"`
	SeedUsed int64      `yaml:"-"`
}

// ExportConfig はファイル出力に関する設定です。空のパスは出力しません。
type ExportConfig struct {
	CSVPath  string `yaml:"csv_path"`
	XLSXPath string `yaml:"xlsx_path"`
}

// ServerConfig は gRPC サーバーに関する設定です。
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// LogConfig はログ出力に関する設定です。
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DatabaseConfig は PostgreSQL 接続に関する設定です。Enabled が false の場合は接続しません。
type DatabaseConfig struct {
	Enabled            bool          `yaml:"enabled"`
	Host               string        `yaml:"host"`
	Port               int           `yaml:"port"`
	User               string        `yaml:"user"`
	Password           string        `yaml:"password"`
	Name               string        `yaml:"name"`
	SSLMode            string        `yaml:"ssl_mode"`
	MaxOpenConns       int           `yaml:"max_open_conns"`
	MaxIdleConns       int           `yaml:"max_idle_conns"`
	ConnMaxLifetime    time.Duration `yaml:"-"`
	ConnMaxIdleTime    time.Duration `yaml:"-"`
	ConnMaxLifetimeRaw string        `yaml:"conn_max_lifetime"`
	ConnMaxIdleTimeRaw string        `yaml:"conn_max_idle_time"`
}

// Load は指定されたパスから設定ファイルを読み込みます。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// EffectivePath はフラグ、CONFIG_PATH、既定値の順に設定ファイルのパスを決定します。
func EffectivePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env
	}
	return "assets/local.yaml"
}

func (c *Config) validateAndNormalize() error {
	if err := c.Generation.validateAndNormalize(); err != nil {
		return err
	}

	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = defaultListenAddr
	}

	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = defaultLogFormat
	}

	if c.Database.Enabled {
		if err := c.Database.validateAndNormalize(); err != nil {
			return err
		}
	}

	return nil
}

func (g *GenerationConfig) validateAndNormalize() error {
	if g.Count == 0 {
		g.Count = defaultCount
	}
	if g.Count < 0 {
		return fmt.Errorf("config: generation.count must be positive")
	}
	if g.MaxCount == 0 {
		g.MaxCount = defaultMaxCount
	}
	if g.MaxCount < 0 {
		return fmt.Errorf("config: generation.max_count must be positive")
	}
	if g.Count > g.MaxCount {
		return fmt.Errorf("config: generation.count %d exceeds max_count %d", g.Count, g.MaxCount)
	}

	g.SeedUsed = defaultSeed
	if g.Seed != nil {
		g.SeedUsed = *g.Seed
	}

	if strings.TrimSpace(g.AsOfRaw) != "" {
		asOf, err := ParseDate(g.AsOfRaw)
		if err != nil {
			return fmt.Errorf("config: generation.as_of: %w", err)
		}
		g.AsOf = &asOf
	}

	return nil
}

func (d *DatabaseConfig) validateAndNormalize() error {
	if d.Host == "" {
		return fmt.Errorf("config: database.host must be set")
	}
	if d.Port == 0 {
		return fmt.Errorf("config: database.port must be set")
	}
	if d.User == "" {
		return fmt.Errorf("config: database.user must be set")
	}
	if d.Password == "" {
		return fmt.Errorf("config: database.password must be set")
	}
	if d.Name == "" {
		return fmt.Errorf("config: database.name must be set")
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}

	lifetime, err := parseDurationAllowEmpty(d.ConnMaxLifetimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_lifetime: %w", err)
	}
	d.ConnMaxLifetime = lifetime

	idleTime, err := parseDurationAllowEmpty(d.ConnMaxIdleTimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_idle_time: %w", err)
	}
	d.ConnMaxIdleTime = idleTime

	return nil
}

func parseDurationAllowEmpty(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	return d, nil
}

// ParseDate は YYYY-MM-DD 形式の日付を UTC で解釈します。
func ParseDate(raw string) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, strings.TrimSpace(raw), time.UTC)
}

// DSN は pgx 用の接続文字列を返します。
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=" + url.QueryEscape(d.SSLMode),
	}
	return u.String()
}
