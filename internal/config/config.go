package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
)

// Config хранит настройки HTTP-сервера, базы данных и провайдера аутентификации.
type Config struct {
	Addr         string `json:"addr"`
	DatabaseURL  string `json:"database_url"`
	IdentityURL  string `json:"identity_url"`
	WebDir       string `json:"web_dir"`
	ShareHashtag string `json:"share_hashtag"`
}

// Validate проверяет, что обязательные поля заполнены и URL провайдера корректен.
func (cfg *Config) Validate() error {
	if cfg.Addr == "" {
		return errors.New("addr is required")
	}
	if cfg.DatabaseURL == "" {
		return errors.New("database_url is required")
	}
	if _, err := url.ParseRequestURI(cfg.IdentityURL); err != nil {
		return fmt.Errorf("invalid identity URL: %s", cfg.IdentityURL)
	}
	return nil
}

// LoadConfig читает JSON-файл по пути path и применяет переопределения из окружения.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	return &cfg, nil
}

func (cfg *Config) applyEnv() {
	if v := os.Getenv("NEWSDESK_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("IDENTITY_URL"); v != "" {
		cfg.IdentityURL = v
	}
	if v := os.Getenv("NEWSDESK_WEB_DIR"); v != "" {
		cfg.WebDir = v
	}
}
