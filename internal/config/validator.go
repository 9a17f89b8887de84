package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// ValidationError is one invalid setting.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

func ValidSecretBackends() []string {
	return []string{"pass", "file", "pass+file"}
}

// Validate returns every invalid setting found.
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validatePanel()...)
	errors = append(errors, c.validateSessions()...)
	errors = append(errors, c.validateSecrets()...)
	errors = append(errors, c.validateLog()...)
	errors = append(errors, c.validateAdmins()...)
	errors = append(errors, c.validateCatalog()...)

	return errors
}

func (c *Config) validatePanel() []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(c.Panel.URL) == "" {
		errors = append(errors, ValidationError{
			Field:   "panel.url",
			Value:   c.Panel.URL,
			Message: "is required",
		})
	} else if parsed, err := url.Parse(c.Panel.URL); err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		errors = append(errors, ValidationError{
			Field:   "panel.url",
			Value:   c.Panel.URL,
			Message: "must be an absolute http or https url",
		})
	}

	if strings.TrimSpace(c.Panel.ApplicationKey) == "" {
		errors = append(errors, ValidationError{
			Field:   "panel.application_key",
			Value:   "",
			Message: "is required (set PANELBOT_PANEL_APPLICATION_KEY)",
		})
	}
	if c.Panel.NodeID <= 0 {
		errors = append(errors, ValidationError{
			Field:   "panel.node_id",
			Value:   c.Panel.NodeID,
			Message: "must be positive",
		})
	}
	if c.Panel.DefaultAllocation < 0 {
		errors = append(errors, ValidationError{
			Field:   "panel.default_allocation",
			Value:   c.Panel.DefaultAllocation,
			Message: "must be non-negative",
		})
	}
	if c.Panel.RequestTimeoutSeconds <= 0 {
		errors = append(errors, ValidationError{
			Field:   "panel.request_timeout_seconds",
			Value:   c.Panel.RequestTimeoutSeconds,
			Message: "must be positive",
		})
	}
	if c.Panel.CreateTimeoutSeconds <= 0 {
		errors = append(errors, ValidationError{
			Field:   "panel.create_timeout_seconds",
			Value:   c.Panel.CreateTimeoutSeconds,
			Message: "must be positive",
		})
	}

	return errors
}

func (c *Config) validateSessions() []ValidationError {
	var errors []ValidationError

	if c.Sessions.StepTimeoutSeconds <= 0 {
		errors = append(errors, ValidationError{
			Field:   "sessions.step_timeout_seconds",
			Value:   c.Sessions.StepTimeoutSeconds,
			Message: "must be positive",
		})
	}
	if c.Sessions.SweepIntervalSeconds <= 0 {
		errors = append(errors, ValidationError{
			Field:   "sessions.sweep_interval_seconds",
			Value:   c.Sessions.SweepIntervalSeconds,
			Message: "must be positive",
		})
	}
	for _, word := range c.Sessions.CancelWords {
		if strings.TrimSpace(word) == "" {
			errors = append(errors, ValidationError{
				Field:   "sessions.cancel_words",
				Value:   c.Sessions.CancelWords,
				Message: "must not contain empty words",
			})
			break
		}
	}

	return errors
}

func (c *Config) validateSecrets() []ValidationError {
	var errors []ValidationError

	if c.Secrets.Backend != "" && !slices.Contains(ValidSecretBackends(), c.Secrets.Backend) {
		errors = append(errors, ValidationError{
			Field:   "secrets.backend",
			Value:   c.Secrets.Backend,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidSecretBackends(), ", ")),
		})
	}
	if c.Secrets.Backend != "pass" && strings.TrimSpace(c.Secrets.Dir) == "" {
		errors = append(errors, ValidationError{
			Field:   "secrets.dir",
			Value:   c.Secrets.Dir,
			Message: "is required for the file backend",
		})
	}

	return errors
}

func (c *Config) validateLog() []ValidationError {
	if c.Log.Level != "" && !slices.Contains(ValidLogLevels(), strings.ToLower(c.Log.Level)) {
		return []ValidationError{{
			Field:   "log.level",
			Value:   c.Log.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		}}
	}
	return nil
}

func (c *Config) validateAdmins() []ValidationError {
	var errors []ValidationError

	bounds := c.Admins.Bounds
	if bounds.MaxMemoryMB <= 0 || bounds.MaxCPUPercent <= 0 || bounds.MaxDiskMB <= 0 {
		errors = append(errors, ValidationError{
			Field:   "admins.bounds",
			Value:   bounds,
			Message: "limits must be positive",
		})
	}

	return errors
}

func (c *Config) validateCatalog() []ValidationError {
	var errors []ValidationError

	if _, err := c.Catalog(); err != nil {
		errors = append(errors, ValidationError{
			Field:   "offerings",
			Value:   len(c.Offerings),
			Message: err.Error(),
		})
	}
	if _, err := c.TierTable(); err != nil {
		errors = append(errors, ValidationError{
			Field:   "tiers",
			Value:   len(c.Tiers),
			Message: err.Error(),
		})
	}

	return errors
}
