package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "HANDCHECK_"

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// ProjectDir is used to locate .handcheck.toml and .env. Defaults to CWD when empty.
	ProjectDir string
	// ConfigPath overrides the project config path if provided.
	ConfigPath string
	// EnvFile overrides the dotenv file path. Missing files are ignored.
	EnvFile string
	// SkipUserConfig ignores ~/.handcheck/config.toml.
	SkipUserConfig bool
	// FlagOverrides are highest-priority overrides from CLI flags (dot-notated keys).
	FlagOverrides map[string]any
}

// Load returns the effective configuration after applying precedence:
// defaults < user < project < env (.env first, then the process env) < flags.
func Load(opts LoadOptions) (Config, error) {
	v := viper.New()
	setDefaults(v)

	projectDir := opts.ProjectDir
	if projectDir == "" {
		if cwd, err := os.Getwd(); err == nil {
			projectDir = cwd
		}
	}

	if !opts.SkipUserConfig {
		if err := mergeConfigFile(v, userConfigPath()); err != nil {
			return Config{}, err
		}
	}

	if err := mergeConfigFile(v, projectConfigPath(projectDir, opts.ConfigPath)); err != nil {
		return Config{}, err
	}

	if err := loadDotEnv(envFilePath(projectDir, opts.EnvFile)); err != nil {
		return Config{}, err
	}

	if err := applyEnvOverrides(v); err != nil {
		return Config{}, err
	}

	applyFlagOverrides(v, opts.FlagOverrides)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// setDefaults seeds viper with built-in defaults.
func setDefaults(v *viper.Viper) {
	def := DefaultConfig()

	v.SetDefault("general.reports_dir", def.General.ReportsDir)
	v.SetDefault("general.log_level", def.General.LogLevel)
	v.SetDefault("general.operator", def.General.Operator)
	v.SetDefault("general.non_interactive", def.General.NonInteractive)
	v.SetDefault("general.app_name", def.General.AppName)
	v.SetDefault("general.app_url", def.General.AppURL)
	v.SetDefault("general.http_timeout", def.General.HTTPTimeoutSecs)

	v.SetDefault("oauth.callback_timeout", def.OAuth.CallbackTimeoutSecs)
	v.SetDefault("oauth.open_browser", def.OAuth.OpenBrowser)

	for name, provider := range def.OAuth.Providers {
		setProviderDefaults(v, "oauth.providers."+name, provider)
	}

	v.SetDefault("email.transport", def.Email.Transport)
	v.SetDefault("email.from", def.Email.From)
	v.SetDefault("email.templates_dir", def.Email.TemplatesDir)
	v.SetDefault("email.smtp.host", def.Email.SMTP.Host)
	v.SetDefault("email.smtp.port", def.Email.SMTP.Port)
	v.SetDefault("email.smtp.username", def.Email.SMTP.Username)
	v.SetDefault("email.smtp.password", def.Email.SMTP.Password)
	v.SetDefault("email.smtp.tls", def.Email.SMTP.TLS)
	v.SetDefault("email.api.endpoint", def.Email.API.Endpoint)
	v.SetDefault("email.api.key", def.Email.API.Key)
}

func setProviderDefaults(v *viper.Viper, prefix string, provider ProviderConfig) {
	v.SetDefault(prefix+".client_id", provider.ClientID)
	v.SetDefault(prefix+".client_secret", provider.ClientSecret)
	v.SetDefault(prefix+".auth_url", provider.AuthURL)
	v.SetDefault(prefix+".token_url", provider.TokenURL)
	v.SetDefault(prefix+".userinfo_url", provider.UserInfoURL)
	v.SetDefault(prefix+".redirect_url", provider.RedirectURL)
	v.SetDefault(prefix+".scopes", provider.Scopes)
	v.SetDefault(prefix+".expected_app_name", provider.ExpectedAppName)
}

// mergeConfigFile merges the TOML config file if it exists.
func mergeConfigFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("stat config %s: %w", path, err)
	}

	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", path)
	}

	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if err := v.MergeInConfig(); err != nil {
		return fmt.Errorf("merge config %s: %w", path, err)
	}

	return nil
}

// loadDotEnv exports variables from a dotenv file without clobbering the
// existing process environment.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("load env file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides reads HANDCHECK_* env vars and applies them.
func applyEnvOverrides(v *viper.Viper) error {
	for _, binding := range envBindings {
		val := os.Getenv(binding.Env)
		if val == "" {
			continue
		}

		parsed, err := parseValueByKind(val, binding.Kind)
		if err != nil {
			return fmt.Errorf("env %s: %w", binding.Env, err)
		}

		v.Set(binding.Key, parsed)
	}

	for name := range v.GetStringMap("oauth.providers") {
		for _, field := range providerEnvFields {
			env := EnvPrefix + "OAUTH_" + envName(name) + "_" + strings.ToUpper(field.Name)

			val := os.Getenv(env)
			if val == "" {
				continue
			}

			parsed, err := parseValueByKind(val, field.Kind)
			if err != nil {
				return fmt.Errorf("env %s: %w", env, err)
			}

			v.Set("oauth.providers."+name+"."+field.Name, parsed)
		}
	}

	return nil
}

// applyFlagOverrides applies CLI overrides as highest-precedence values.
func applyFlagOverrides(v *viper.Viper, overrides map[string]any) {
	for k, val := range overrides {
		v.Set(k, val)
	}
}

// ConfigPaths returns the user and project config file paths.
func ConfigPaths(projectDir, configOverride string) (string, string) {
	return userConfigPath(), projectConfigPath(projectDir, configOverride)
}

func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".handcheck", "config.toml")
}

func projectConfigPath(projectDir, override string) string {
	if override != "" {
		return override
	}

	if projectDir == "" {
		return ".handcheck.toml"
	}

	return filepath.Join(projectDir, ".handcheck.toml")
}

func envFilePath(projectDir, override string) string {
	if override != "" {
		return override
	}

	if projectDir == "" {
		return ".env"
	}

	return filepath.Join(projectDir, ".env")
}

// envName maps a provider name onto the env var alphabet.
func envName(name string) string {
	return strings.ToUpper(strings.NewReplacer("-", "_", ".", "_").Replace(name))
}

// WriteDefault writes the built-in configuration to path as a starting
// point. It refuses to overwrite an existing file.
func WriteDefault(path string) error {
	if path == "" {
		return fmt.Errorf("config path is empty")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("create config %s: %w", path, err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	enc.Indent = "  "

	if err := enc.Encode(DefaultConfig()); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	return nil
}

// DecodeFile reads a TOML config file without applying defaults or env.
func DecodeFile(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}

	return cfg, nil
}

type valueKind int

const (
	kindString valueKind = iota
	kindBool
	kindInt
	kindStringSlice
)

// providerEnvFields are read as HANDCHECK_OAUTH_<PROVIDER>_<FIELD>.
var providerEnvFields = []struct {
	Name string
	Kind valueKind
}{
	{"client_id", kindString},
	{"client_secret", kindString},
	{"redirect_url", kindString},
	{"scopes", kindStringSlice},
}

var envBindings = []struct {
	Env  string
	Key  string
	Kind valueKind
}{
	{"HANDCHECK_REPORTS_DIR", "general.reports_dir", kindString},
	{"HANDCHECK_LOG_LEVEL", "general.log_level", kindString},
	{"HANDCHECK_OPERATOR", "general.operator", kindString},
	{"HANDCHECK_NON_INTERACTIVE", "general.non_interactive", kindBool},
	{"HANDCHECK_APP_NAME", "general.app_name", kindString},
	{"HANDCHECK_APP_URL", "general.app_url", kindString},
	{"HANDCHECK_HTTP_TIMEOUT", "general.http_timeout", kindInt},

	{"HANDCHECK_OAUTH_CALLBACK_TIMEOUT", "oauth.callback_timeout", kindInt},
	{"HANDCHECK_OAUTH_OPEN_BROWSER", "oauth.open_browser", kindBool},

	{"HANDCHECK_EMAIL_TRANSPORT", "email.transport", kindString},
	{"HANDCHECK_EMAIL_FROM", "email.from", kindString},
	{"HANDCHECK_EMAIL_TEMPLATES_DIR", "email.templates_dir", kindString},
	{"HANDCHECK_SMTP_HOST", "email.smtp.host", kindString},
	{"HANDCHECK_SMTP_PORT", "email.smtp.port", kindInt},
	{"HANDCHECK_SMTP_USERNAME", "email.smtp.username", kindString},
	{"HANDCHECK_SMTP_PASSWORD", "email.smtp.password", kindString},
	{"HANDCHECK_SMTP_TLS", "email.smtp.tls", kindString},
	{"HANDCHECK_EMAIL_API_ENDPOINT", "email.api.endpoint", kindString},
	{"HANDCHECK_EMAIL_API_KEY", "email.api.key", kindString},
}

func parseValueByKind(raw string, kind valueKind) (any, error) {
	switch kind {
	case kindString:
		return raw, nil
	case kindBool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("expected boolean: %w", err)
		}

		return v, nil
	case kindInt:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("expected integer: %w", err)
		}

		return v, nil
	case kindStringSlice:
		parts := strings.Split(raw, ",")

		result := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				result = append(result, p)
			}
		}

		return result, nil
	default:
		return nil, fmt.Errorf("unsupported value kind")
	}
}
