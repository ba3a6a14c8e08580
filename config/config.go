/*
Copyright 2024 Nellcorp Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"strings"
	"sync/atomic"

	"github.com/kelseyhightower/envconfig"

	"github.com/sirupsen/logrus"
)

const (
	DEFAULT_PORT = "5101"

	DEFAULT_PAGE_SIZE = 20
	MAX_PAGE_SIZE     = 100
)

var ConfigStore atomic.Value

type ServerConfig struct {
	Secure    bool   `json:"secure" envconfig:"BANKGATE_SERVER_SECURE"`
	SecretKey string `json:"secret_key" envconfig:"BANKGATE_SERVER_SECRET_KEY"`
	Port      string `json:"port" envconfig:"BANKGATE_SERVER_PORT"`
}

type RateLimitConfig struct {
	RequestsPerSecond  *float64 `json:"requests_per_second" envconfig:"BANKGATE_RATE_LIMIT_RPS"`
	Burst              *int     `json:"burst" envconfig:"BANKGATE_RATE_LIMIT_BURST"`
	CleanupIntervalSec *int     `json:"cleanup_interval_sec" envconfig:"BANKGATE_RATE_LIMIT_CLEANUP_INTERVAL_SEC"`
}

type PaginationConfig struct {
	DefaultPageSize int `json:"default_page_size" envconfig:"BANKGATE_PAGINATION_DEFAULT_PAGE_SIZE"`
	MaxPageSize     int `json:"max_page_size" envconfig:"BANKGATE_PAGINATION_MAX_PAGE_SIZE"`
}

type Configuration struct {
	ProjectName  string           `json:"project_name" envconfig:"BANKGATE_PROJECT_NAME"`
	SeedDemoData bool             `json:"seed_demo_data" envconfig:"BANKGATE_SEED_DEMO_DATA"`
	Server       ServerConfig     `json:"server"`
	RateLimit    RateLimitConfig  `json:"rate_limit"`
	Pagination   PaginationConfig `json:"pagination"`
}

func loadConfigFromFile(file string) error {
	var cnf Configuration
	_, err := os.Stat(file)
	if err == nil {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		err = json.NewDecoder(f).Decode(&cnf)
		if err != nil {
			return err
		}

	} else if errors.Is(err, os.ErrNotExist) {
		log.Println("config json not passed, will use env variables")
	}

	// override config from environment variables
	err = envconfig.Process("bankgate", &cnf)
	if err != nil {
		return err
	}

	err = cnf.validateAndAddDefaults()
	if err != nil {
		return err
	}

	ConfigStore.Store(&cnf)
	return err
}

func InitConfig(configFile string) error {
	logger()
	return loadConfigFromFile(configFile)
}

func Fetch() (*Configuration, error) {
	config := ConfigStore.Load()
	c, ok := config.(*Configuration)
	if !ok {
		return nil, errors.New("config not loaded from file. Create a json file called bankgate.json with your config ❌")
	}
	return c, nil
}

func (cnf *Configuration) validateAndAddDefaults() error {
	if cnf.ProjectName == "" {
		log.Println("Warning: Project name is empty. Setting a default name.")
		cnf.ProjectName = "Bankgate Server"
	}

	// Trim white spaces from fields
	cnf.ProjectName = strings.TrimSpace(cnf.ProjectName)
	cnf.Server.Port = strings.TrimSpace(cnf.Server.Port)

	// Set default value for Port if it's empty
	if cnf.Server.Port == "" {
		cnf.Server.Port = DEFAULT_PORT
		log.Printf("Warning: Port not specified in config. Setting default port: %s", DEFAULT_PORT)
	}

	if cnf.Pagination.DefaultPageSize <= 0 {
		cnf.Pagination.DefaultPageSize = DEFAULT_PAGE_SIZE
	}
	if cnf.Pagination.MaxPageSize <= 0 {
		cnf.Pagination.MaxPageSize = MAX_PAGE_SIZE
	}
	if cnf.Pagination.DefaultPageSize > cnf.Pagination.MaxPageSize {
		log.Printf("Warning: Default page size %d exceeds max page size %d. Clamping.", cnf.Pagination.DefaultPageSize, cnf.Pagination.MaxPageSize)
		cnf.Pagination.DefaultPageSize = cnf.Pagination.MaxPageSize
	}

	// Rate limiting is disabled by default (when both RPS and Burst are nil)
	if cnf.RateLimit.RequestsPerSecond != nil && cnf.RateLimit.Burst == nil {
		defaultBurst := 2 * int(*cnf.RateLimit.RequestsPerSecond)
		cnf.RateLimit.Burst = &defaultBurst
		log.Printf("Warning: Rate limit burst not specified. Setting default value: %d", defaultBurst)
	}
	if cnf.RateLimit.RequestsPerSecond == nil && cnf.RateLimit.Burst != nil {
		defaultRPS := float64(*cnf.RateLimit.Burst) / 2
		cnf.RateLimit.RequestsPerSecond = &defaultRPS
		log.Printf("Warning: Rate limit RPS not specified. Setting default value: %.2f", defaultRPS)
	}

	// Set default cleanup interval if not specified
	if cnf.RateLimit.CleanupIntervalSec == nil {
		defaultCleanup := 10800 // 3 hours in seconds
		cnf.RateLimit.CleanupIntervalSec = &defaultCleanup
		log.Printf("Warning: Rate limit cleanup interval not specified. Setting default value: %d seconds", defaultCleanup)
	}

	return nil
}

// MockConfig sets a mock configuration for testing purposes.
func MockConfig(mockConfig *Configuration) {
	ConfigStore.Store(mockConfig)
}

func logger() {
	logger := logrus.New()
	log.SetOutput(logger.Writer())
}
