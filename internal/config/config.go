package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the top-level fintrack.yaml configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Categories CategoriesConfig `yaml:"categories"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DatabaseConfig locates the SQLite database.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// CategoriesConfig carries the default category taxonomy. Seeding it into
// the database is an explicit step (store.CategoryStore.SeedDefaults),
// never a side effect of lookups.
type CategoriesConfig struct {
	Defaults []CategorySeed `yaml:"defaults"`
}

// CategorySeed is one default category with its matching keywords.
type CategorySeed struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords,omitempty"`
}

// Load reads a fintrack.yaml file, then applies FINTRACK_* environment
// overrides. A .env file in the working directory is honored when present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyEnv()
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if addr := os.Getenv("FINTRACK_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if path := os.Getenv("FINTRACK_DB"); path != "" {
		c.Database.Path = path
	}
}

// Default returns the configuration written by `fintrack init`, including
// the default category taxonomy seeded for every new database.
func Default() *Config {
	return &Config{
		Server:   ServerConfig{Addr: ":8080"},
		Database: DatabaseConfig{Path: "fintrack.db"},
		Categories: CategoriesConfig{
			Defaults: []CategorySeed{
				{Name: "Groceries", Keywords: []string{"grocery", "supermarket", "whole foods", "trader joe", "safeway", "kroger"}},
				{Name: "Restaurants", Keywords: []string{"restaurant", "food and drink", "cafe", "coffee", "doordash", "grubhub"}},
				{Name: "Transport", Keywords: []string{"uber", "lyft", "fuel", "parking", "transit", "gas"}},
				{Name: "Shopping", Keywords: []string{"amazon", "target", "walmart", "shopping"}},
				{Name: "Entertainment", Keywords: []string{"netflix", "spotify", "hulu", "cinema", "entertainment"}},
				{Name: "Utilities", Keywords: []string{"electric", "water", "internet", "comcast", "utility", "bills and utilities"}},
				{Name: "Health", Keywords: []string{"pharmacy", "doctor", "dental", "health and wellness"}},
				{Name: "Travel", Keywords: []string{"airline", "hotel", "airbnb", "travel"}},
				{Name: "Income", Keywords: []string{"payroll", "direct deposit", "salary", "interest payment"}},
				{Name: "Fees", Keywords: []string{"fee", "service charge", "fees and adjustments"}},
				{Name: "Uncategorized"},
			},
		},
	}
}
