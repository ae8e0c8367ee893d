package config

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"

	gomysql "github.com/go-sql-driver/mysql"
	"gopkg.in/yaml.v3"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	OpenAI   OpenAIConfig   `yaml:"openai"`
	JWT      JWTConfig      `yaml:"jwt"`
	Database DatabaseConfig `yaml:"database"`
	CORS     CORSConfig     `yaml:"cors"`
	Slack    SlackConfig    `yaml:"slack"`
	Trello   TrelloConfig   `yaml:"trello"`
	Notion   NotionConfig   `yaml:"notion"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	Console    bool   `yaml:"console"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

type CORSConfig struct {
	Origins []string `yaml:"origins"`
}

type SlackConfig struct {
	WebhookURL string `yaml:"webhook_url"`
}

type TrelloConfig struct {
	Key    string `yaml:"key"`
	Token  string `yaml:"token"`
	ListID string `yaml:"list_id"`
}

type NotionConfig struct {
	Token      string `yaml:"token"`
	DatabaseID string `yaml:"database_id"`
}

func Load(configFile string) *Config {
	c := &Config{
		Server:   ServerConfig{Port: 8080},
		OpenAI:   OpenAIConfig{Model: "gpt-4o"},
		Log:      LogConfig{Level: "info", Console: true, MaxSizeMB: 100, MaxBackups: 3, MaxAgeDays: 30},
		Database: DatabaseConfig{Host: "127.0.0.1", Port: 3306, Name: "meetwise"},
		CORS:     CORSConfig{Origins: []string{"*"}},
	}

	paths := []string{"etc/config-dev.yaml", "/etc/meetwise/config.yaml"}
	if configFile != "" {
		paths = []string{configFile}
	}
	for _, path := range paths {
		if data, err := os.ReadFile(path); err == nil {
			yaml.Unmarshal(data, c)
			break
		}
	}

	envOverride(&c.OpenAI.APIKey, "OPENAI_API_KEY")
	envOverride(&c.OpenAI.BaseURL, "OPENAI_BASE_URL")
	envOverride(&c.OpenAI.Model, "OPENAI_MODEL")
	envOverride(&c.JWT.Secret, "JWT_SECRET")
	envOverride(&c.Database.Host, "DB_HOST")
	envOverride(&c.Database.User, "DB_USER")
	envOverride(&c.Database.Password, "DB_PASS")
	envOverride(&c.Database.Name, "DB_NAME")
	envOverride(&c.Slack.WebhookURL, "SLACK_WEBHOOK_URL")
	envOverride(&c.Trello.Key, "TRELLO_KEY")
	envOverride(&c.Trello.Token, "TRELLO_TOKEN")
	envOverride(&c.Trello.ListID, "TRELLO_LIST_ID")
	envOverride(&c.Notion.Token, "NOTION_TOKEN")
	envOverride(&c.Notion.DatabaseID, "NOTION_DATABASE_ID")
	envOverride(&c.Log.Level, "LOG_LEVEL")
	envOverride(&c.Log.File, "LOG_FILE")
	envOverrideInt(&c.Server.Port, "PORT")
	envOverrideInt(&c.Database.Port, "DB_PORT")
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		c.CORS.Origins = strings.Split(v, ",")
	}

	return c
}

// Validate checks the values the server cannot start without. Export
// target credentials are checked at the point of use instead, so a
// deployment without e.g. Trello still boots.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("jwt secret is required (set JWT_SECRET or jwt.secret)")
	}
	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("openai api key is required (set OPENAI_API_KEY or openai.api_key)")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required (set DB_USER or database.user)")
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func (c *Config) OpenGormDB() (*gorm.DB, error) {
	cfg := gomysql.NewConfig()
	cfg.User = c.Database.User
	cfg.Passwd = c.Database.Password
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%d", c.Database.Host, c.Database.Port)
	cfg.DBName = c.Database.Name
	cfg.ParseTime = true

	connector, err := gomysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("create connector: %w", err)
	}
	sqlDB := sql.OpenDB(connector)
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return gorm.Open(mysql.New(mysql.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envOverrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
