package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rohankatakam/githours/internal/errors"
	"github.com/rohankatakam/githours/internal/logging"
)

// OutputFormats lists the report formats understood by the output package
var OutputFormats = []string{"json", "yaml", "table"}

// ValidationResult holds validation results
type ValidationResult struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// AddError adds an error to the validation result
func (vr *ValidationResult) AddError(format string, args ...interface{}) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, fmt.Sprintf(format, args...))
}

// AddWarning adds a warning to the validation result
func (vr *ValidationResult) AddWarning(format string, args ...interface{}) {
	vr.Warnings = append(vr.Warnings, fmt.Sprintf(format, args...))
}

// HasErrors returns true if there are any errors
func (vr *ValidationResult) HasErrors() bool {
	return !vr.Valid || len(vr.Errors) > 0
}

// Error returns a formatted error message
func (vr *ValidationResult) Error() string {
	if !vr.HasErrors() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("configuration validation failed:\n")
	for _, err := range vr.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err))
	}

	return strings.TrimRight(sb.String(), "\n")
}

// Err returns a validation error when the result has errors, nil otherwise
func (vr *ValidationResult) Err() error {
	if !vr.HasErrors() {
		return nil
	}
	return errors.ValidationError(vr.Error())
}

// Validate checks the configuration. now anchors relative dates.
func (c *Config) Validate(now time.Time) *ValidationResult {
	result := &ValidationResult{Valid: true}

	c.validateSession(result)
	c.validateWindow(result, now)
	c.validateAliases(result)
	c.validateOutput(result)

	return result
}

// validateSession accepts any integers. Values outside the useful range are
// estimated as given and only reported as warnings.
func (c *Config) validateSession(result *ValidationResult) {
	if c.MaxCommitDiff <= 0 {
		result.AddWarning("max_commit_diff is %d; every gap between commits starts a new session", c.MaxCommitDiff)
	}
	if c.FirstCommitAdd < 0 {
		result.AddWarning("first_commit_add is %d; each new session subtracts time", c.FirstCommitAdd)
	}
}

func (c *Config) validateWindow(result *ValidationResult, now time.Time) {
	since, err := ParseDate(c.Since, now)
	if err != nil {
		result.AddError("since: %v", err)
	}
	until, err := ParseDate(c.Until, now)
	if err != nil {
		result.AddError("until: %v", err)
	}

	if !since.IsZero() && !until.IsZero() && !until.After(since) {
		result.AddWarning("until (%s) is not after since (%s); no commits will match", c.Until, c.Since)
	}
}

func (c *Config) validateAliases(result *ValidationResult) {
	for _, entry := range c.EmailAliases {
		if _, _, err := ParseEmailAlias(entry); err != nil {
			result.AddError("%v", err)
		}
	}
}

func (c *Config) validateOutput(result *ValidationResult) {
	known := false
	for _, format := range OutputFormats {
		if c.Output.Format == format {
			known = true
			break
		}
	}
	if !known {
		result.AddError("output.format %q is not one of %s", c.Output.Format, strings.Join(OutputFormats, ", "))
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		result.AddError("log.level: %v", err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		result.AddError("log.format %q is not one of text, json", c.Log.Format)
	}
}
