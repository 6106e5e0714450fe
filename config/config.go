package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"time"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
)

func New(loc string) (*Config, error) {
	var c Config

	f, err := os.Open(loc)
	if err != nil {
		log.Println("Config error", err)
		return nil, err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&c); err != nil {
		log.Println("Config error", err)
		return nil, err
	}

	if c.Bucket.Requirements == "" {
		return nil, ErrInvalidConfig
	}

	return &c, nil
}

type Config struct {
	Host string `json:"host"`
	Port string `json:"port"`

	Sandbox bool `json:"sandbox"`

	DBPath string `json:"dbPath"`
	DBName string `json:"dbName"`

	OverdueCheck int `json:"overdueCheck"` // Overdue recheck interval, in hours
	DueSoonDays  int `json:"dueSoonDays"`  // Default window for the dueSoon endpoint

	AI struct {
		Endpoint    string        `json:"endpoint"`
		Model       string        `json:"model"`
		MaxTokens   int           `json:"maxTokens"`
		Temperature float64       `json:"temperature"`
		Timeout     time.Duration `json:"timeout"` // In seconds

		Mode string `json:"mode"` // development, staging or production

		KeystorePath  string `json:"keystorePath"`
		DevKeyFile    string `json:"devKeyFile"`
		StagingFile   string `json:"stagingFile"`
		ProdFile      string `json:"prodFile"`
		OverrideFile  string `json:"overrideFile"`
		EncryptedFile string `json:"encryptedFile"`
	} `json:"ai"`

	Bucket struct {
		Requirements string   `json:"requirements"`
		All          []string `json:"all"`
	} `json:"bucket"`
}
