// Package config loads and validates harness settings.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings is the complete harness configuration.
//
// Example YAML:
//
//	iterations: 100
//	timePerIteration: 20
//	suite: templates
//	filter: "^test"
//	report:
//	  histogram: true
//	  histogramBuckets: 20
type Settings struct {
	// Iterations is the number of trials per test
	Iterations int `json:"iterations" yaml:"iterations"`

	// TimePerIteration is the per-trial time budget in milliseconds
	TimePerIteration int `json:"timePerIteration" yaml:"timePerIteration"`

	// Suite selects the registered test suite
	Suite string `json:"suite" yaml:"suite"`

	// Filter is a regular expression matched against test names
	Filter string `json:"filter" yaml:"filter"`

	// Compare is a results file to compare the run against
	Compare string `json:"compare,omitempty" yaml:"compare,omitempty"`

	Save SaveSettings `json:"save,omitempty" yaml:"save,omitempty"`

	Report ReportSettings `json:"report,omitempty" yaml:"report,omitempty"`
}

// SaveSettings controls persistence of a run.
type SaveSettings struct {
	Enabled bool `json:"enabled,omitempty" yaml:"enabled,omitempty"`

	// Name is added to the generated file name
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Path overrides the generated file name
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// ReportSettings controls report formatting.
type ReportSettings struct {
	Histogram        bool `json:"histogram,omitempty" yaml:"histogram,omitempty"`
	HistogramBuckets int  `json:"histogramBuckets,omitempty" yaml:"histogramBuckets,omitempty"`
	HistogramWidth   int  `json:"histogramWidth,omitempty" yaml:"histogramWidth,omitempty"`
	ShowOutliers     bool `json:"showOutliers,omitempty" yaml:"showOutliers,omitempty"`
	ShowAll          bool `json:"showAll,omitempty" yaml:"showAll,omitempty"`
	NoColor          bool `json:"noColor,omitempty" yaml:"noColor,omitempty"`
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() *Settings {
	return &Settings{
		Iterations:       250,
		TimePerIteration: 50,
		Suite:            "builtin",
		Filter:           "^test",
		Report: ReportSettings{
			HistogramBuckets: 16,
			HistogramWidth:   50,
		},
	}
}

// Budget returns the per-trial time budget.
func (s *Settings) Budget() time.Duration {
	return time.Duration(s.TimePerIteration) * time.Millisecond
}

// LoadSettings reads a YAML settings file on top of the defaults.
func LoadSettings(path string) (*Settings, error) {
	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return ParseSettings(data)
}

// ParseSettings parses YAML settings on top of the defaults and validates them.
func ParseSettings(data []byte) (*Settings, error) {
	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}
