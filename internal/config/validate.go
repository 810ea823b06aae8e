package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

var validModes = []string{"auto", "plain", "styled", "pretty", "json", "ndjson", "yaml", "tui"}

// CheckConfigValidity reports every problem in the loaded configuration as
// one joined error, or nil.
func CheckConfigValidity(v *viper.Viper) error {
	var errs []error

	mode := strings.ToLower(strings.TrimSpace(v.GetString("output.mode")))
	if !contains(validModes, mode) {
		errs = append(errs, fmt.Errorf("output.mode must be one of %s, got %q", strings.Join(validModes, "|"), mode))
	}
	if v.GetInt("output.width") < 0 {
		errs = append(errs, errors.New("output.width must not be negative"))
	}
	if strings.TrimSpace(v.GetString("output.glamour_style")) == "" {
		errs = append(errs, errors.New("output.glamour_style is required"))
	}

	if _, err := zapcore.ParseLevel(v.GetString("log.level")); err != nil {
		errs = append(errs, fmt.Errorf("log.level is invalid: %w", err))
	}

	for _, k := range v.GetStringSlice("highlight.keywords") {
		if strings.TrimSpace(k) == "" {
			errs = append(errs, errors.New("highlight.keywords must not contain empty entries"))
			break
		}
	}

	if strings.TrimSpace(v.GetString("agent.model")) == "" {
		errs = append(errs, errors.New("agent.model is required"))
	}
	if v.GetDuration("agent.timeout") <= 0 {
		errs = append(errs, errors.New("agent.timeout must be a positive duration"))
	}
	if v.GetInt("profile.year") < 0 {
		errs = append(errs, errors.New("profile.year must not be negative"))
	}

	if strings.TrimSpace(v.GetString("server.addr")) == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if v.GetInt64("server.max_body_bytes") <= 0 {
		errs = append(errs, errors.New("server.max_body_bytes must be positive"))
	}

	return errors.Join(errs...)
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
