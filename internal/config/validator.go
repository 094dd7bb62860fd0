package config

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []*ValidationError
}

func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no validation errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e.Errors)))
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Add adds an error to the collection.
func (e *ValidationErrors) Add(field, message string) {
	e.Errors = append(e.Errors, &ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are any errors.
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

// Validate checks every setting.
//
// Returns nil if valid, or a *ValidationErrors containing all problems.
func (s *Settings) Validate() error {
	errs := &ValidationErrors{}

	if s.Iterations < 1 {
		errs.Add("iterations", fmt.Sprintf("must be at least 1, got %d", s.Iterations))
	}
	if s.TimePerIteration < 1 {
		errs.Add("timePerIteration", fmt.Sprintf("must be at least 1ms, got %d", s.TimePerIteration))
	}
	if s.Suite == "" {
		errs.Add("suite", "suite is required")
	}
	if _, err := regexp.Compile(s.Filter); err != nil {
		errs.Add("filter", fmt.Sprintf("invalid regular expression: %v", err))
	}

	validateReport(&s.Report, errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func validateReport(r *ReportSettings, errs *ValidationErrors) {
	if r.HistogramBuckets < 1 {
		errs.Add("report.histogramBuckets", fmt.Sprintf("must be at least 1, got %d", r.HistogramBuckets))
	}
	if r.HistogramWidth < 1 {
		errs.Add("report.histogramWidth", fmt.Sprintf("must be at least 1, got %d", r.HistogramWidth))
	}
}
