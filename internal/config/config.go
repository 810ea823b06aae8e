package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// applyDefaults seeds Viper with defaults defined in GetConfigOptions.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env.
// The provided Viper instance is mutated with defaults, file contents, and env.
func Load(ctx context.Context, v *viper.Viper) error {
	// If SetConfigFile was provided upstream it takes precedence; these
	// paths are fallbacks.
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "blockfmt"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "blockfmt"))
		}
		v.AddConfigPath(".")
	}

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine; a broken one is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return err
		}
	}

	// Environment variables: BLOCKFMT_* (highest among these sources)
	v.SetEnvPrefix("blockfmt")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if strings.TrimSpace(v.GetString("agent.api_key")) == "" {
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			v.Set("agent.api_key", key)
		}
	}

	// Allow comma-separated env override for list options
	for _, key := range []string{"highlight.keywords", "profile.skills"} {
		normalizeCSV(v, key)
	}
	return nil
}

// normalizeCSV turns a comma-separated string value into a string slice.
func normalizeCSV(v *viper.Viper, key string) {
	raw, ok := v.Get(key).(string)
	if !ok {
		return
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	v.Set(key, out)
}

// DefaultConfigPath resolves the standard config.toml location.
func DefaultConfigPath() string {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		home, _ := os.UserHomeDir()
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, "blockfmt", "config.toml")
}

type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the default configuration options and their meanings.
// This is the single source of truth for default values and generator output.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: "highlight.keywords", Default: []string{"LPA", "Growth", "Salary"}, Comment: "Case-sensitive substrings that turn a prose line into a highlight callout"},

		{Key: "output.mode", Default: "auto", Comment: "Output mode: auto|plain|styled|pretty|json|ndjson|yaml|tui"},
		{Key: "output.width", Default: 0, Comment: "Wrap width for styled/pretty output; 0 detects the terminal"},
		{Key: "output.glamour_style", Default: "dracula", Comment: "Glamour style for pretty output (dark, light, dracula, notty, ...)"},
		{Key: "output.json_indent", Default: false, Comment: "Indent JSON output"},
		{Key: "output.pager", Default: true, Comment: "Pipe plain/styled output through $PAGER on a terminal"},

		{Key: "log.level", Default: "warn", Comment: "Log level: debug|info|warn|error"},

		{Key: "agent.model", Default: "gemini-1.5-flash", Comment: "Generative model used by ask/motivate"},
		{Key: "agent.api_key", Default: "", Comment: "API key for the generative model (falls back to GEMINI_API_KEY)"},
		{Key: "agent.timeout", Default: "60s", Comment: "Per-request timeout for the generative model"},

		{Key: "profile.name", Default: "", Comment: "Student name included in agent prompts"},
		{Key: "profile.branch", Default: "", Comment: "Student branch of study"},
		{Key: "profile.year", Default: 0, Comment: "Student year of study"},
		{Key: "profile.skills", Default: []string{}, Comment: "Student skills included in agent prompts"},

		{Key: "server.addr", Default: "127.0.0.1:8787", Comment: "Listen address for blockfmt serve"},
		{Key: "server.token", Default: "", Comment: "Bearer token required by /v1 routes; empty disables auth"},
		{Key: "server.max_body_bytes", Default: 1 << 20, Comment: "Maximum request body size in bytes"},
	}
}

// Settings is the typed view of a loaded configuration.
type Settings struct {
	Keywords     []string
	Mode         string
	Width        int
	GlamourStyle string
	JSONIndent   bool
	Pager        bool
	LogLevel     string
	Agent        AgentSettings
	Profile      ProfileSettings
	Server       ServerSettings
}

type AgentSettings struct {
	Model   string
	APIKey  string
	Timeout time.Duration
}

type ProfileSettings struct {
	Name   string
	Branch string
	Year   int
	Skills []string
}

type ServerSettings struct {
	Addr         string
	Token        string
	MaxBodyBytes int64
}

// FromViper reads Settings out of a loaded Viper instance.
func FromViper(v *viper.Viper) Settings {
	return Settings{
		Keywords:     v.GetStringSlice("highlight.keywords"),
		Mode:         strings.ToLower(strings.TrimSpace(v.GetString("output.mode"))),
		Width:        v.GetInt("output.width"),
		GlamourStyle: v.GetString("output.glamour_style"),
		JSONIndent:   v.GetBool("output.json_indent"),
		Pager:        v.GetBool("output.pager"),
		LogLevel:     v.GetString("log.level"),
		Agent: AgentSettings{
			Model:   v.GetString("agent.model"),
			APIKey:  v.GetString("agent.api_key"),
			Timeout: v.GetDuration("agent.timeout"),
		},
		Profile: ProfileSettings{
			Name:   v.GetString("profile.name"),
			Branch: v.GetString("profile.branch"),
			Year:   v.GetInt("profile.year"),
			Skills: v.GetStringSlice("profile.skills"),
		},
		Server: ServerSettings{
			Addr:         v.GetString("server.addr"),
			Token:        v.GetString("server.token"),
			MaxBodyBytes: v.GetInt64("server.max_body_bytes"),
		},
	}
}
