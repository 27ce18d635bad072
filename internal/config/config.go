package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func Init(root *cobra.Command) {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = godotenv.Load(".env")
	if root != nil {
		bindFlags(root.PersistentFlags())
	}
	setDefaults()
}

// bindFlags registers flags under their snake_case config key so that
// --max-diff-lines and MAX_DIFF_LINES resolve to the same setting.
func bindFlags(flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		_ = viper.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
}

func setDefaults() {
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyTemplatesDir, defaultTemplatesDir())
	viper.SetDefault(KeySeedTemplates, true)
	viper.SetDefault(KeyMaxDiffLines, 500)
	viper.SetDefault(KeyMaxResponseTokens, 25000)
	viper.SetDefault(KeyGitBinary, "git")
	viper.SetDefault(KeyGitTimeout, "")
	viper.SetDefault(KeyTransport, "stdio")
	viper.SetDefault(KeyHost, "0.0.0.0")
	viper.SetDefault(KeyPort, 8000)
	viper.SetDefault(KeyEndpointPath, "/mcp")
}

func defaultTemplatesDir() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return "templates"
	}
	return filepath.Join(dir, "pr-agent", "templates")
}

func LogLevel() string       { return viper.GetString(KeyLogLevel) }
func TemplatesDir() string   { return viper.GetString(KeyTemplatesDir) }
func SeedTemplates() bool    { return viper.GetBool(KeySeedTemplates) }
func MaxDiffLines() int      { return viper.GetInt(KeyMaxDiffLines) }
func MaxResponseTokens() int { return viper.GetInt(KeyMaxResponseTokens) }
func GitBinary() string      { return viper.GetString(KeyGitBinary) }
func Transport() string      { return strings.ToLower(viper.GetString(KeyTransport)) }
func Host() string           { return viper.GetString(KeyHost) }
func Port() int              { return viper.GetInt(KeyPort) }
func EndpointPath() string   { return viper.GetString(KeyEndpointPath) }

// GitTimeout returns the per-command git timeout. Empty or invalid values
// disable the timeout.
func GitTimeout() time.Duration {
	raw := strings.TrimSpace(viper.GetString(KeyGitTimeout))
	if raw == "" {
		return 0
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return 0
	}
	return d
}
