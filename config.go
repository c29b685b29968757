/*
* Configuration module
* Copyright (C) 2025  Artem Stefankiv
*
* This program is free software: you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation, either version 3 of the License, or
* (at your option) any later version.
*
* This program is distributed in the hope that it will be useful,
* but WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
* GNU General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
)

const (
	defaultInputFile   = "rockyou.txt"
	defaultTopN        = 30
	defaultOutputImage = "character_distribution.png"

	envPrefix = "PASSWORD_ENTROPY_"
)

// Config holds the run parameters. JSON tags match the --config file format.
type Config struct {
	InputFile   string `json:"input_file,omitempty" validate:"required"`
	TopN        int    `json:"top_n,omitempty" validate:"min=1"`
	OutputImage string `json:"output_image,omitempty" validate:"required_unless=NoChart true"`
	ReportJSON  string `json:"report_json,omitempty"`
	BlockSize   int    `json:"block_size,omitempty" validate:"min=1"`
	Verbose     bool   `json:"verbose,omitempty"`
	NoChart     bool   `json:"no_chart,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		InputFile:   defaultInputFile,
		TopN:        defaultTopN,
		OutputImage: defaultOutputImage,
		BlockSize:   defaultBlockSize,
	}
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ConfigFromEnv reads PASSWORD_ENTROPY_* variables. Unset variables stay zero.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	cfg.InputFile = os.Getenv(envPrefix + "INPUT_FILE")
	cfg.OutputImage = os.Getenv(envPrefix + "OUTPUT_IMAGE")
	cfg.ReportJSON = os.Getenv(envPrefix + "REPORT_JSON")

	ints := map[string]*int{
		"TOP_N":      &cfg.TopN,
		"BLOCK_SIZE": &cfg.BlockSize,
	}
	for name, target := range ints {
		raw := os.Getenv(envPrefix + name)
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("config error: %s%s must be an integer: %w", envPrefix, name, err)
		}
		*target = value
	}
	return cfg, nil
}

// MergeWithDefaults returns a copy with zero-valued fields taken from defaults.
// Bool fields are not merged; flags always win for them.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.InputFile == "" {
		result.InputFile = defaults.InputFile
	}
	if result.OutputImage == "" {
		result.OutputImage = defaults.OutputImage
	}
	if result.ReportJSON == "" {
		result.ReportJSON = defaults.ReportJSON
	}
	if result.TopN == 0 {
		result.TopN = defaults.TopN
	}
	if result.BlockSize == 0 {
		result.BlockSize = defaults.BlockSize
	}

	return result
}

// ValidateFlagValue checks an explicitly set integer flag before defaults
// can replace its zero value.
func ValidateFlagValue(name string, value int) error {
	if err := validator.New().Var(value, "min=1"); err != nil {
		return fmt.Errorf("config error: --%s must be at least 1, got %d", name, value)
	}
	return nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}
