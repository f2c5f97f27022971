package config

const (
	defaultConfigPath = "~/.config/levain/config.toml"
	projectConfigName = "levain.toml"
	defaultStorePath  = "recipes.json"
	defaultLogFormat  = "console"
	defaultLogLevel   = "warn"

	// StorePathEnv overrides store.path when the config leaves it unset.
	StorePathEnv = "LEVAIN_STORE"
)

// DefaultFlourHints lists the substrings that mark an ingredient as flour.
func DefaultFlourHints() []string { return []string{"flour"} }

// DefaultLiquidHints lists the substrings that mark an ingredient as liquid.
func DefaultLiquidHints() []string { return []string{"water", "milk"} }

// Default returns a Config populated with repository defaults. Store.Path is
// left empty so normalize can apply the environment fallback.
func Default() Config {
	return Config{
		Classifier: Classifier{
			FlourHints:  DefaultFlourHints(),
			LiquidHints: DefaultLiquidHints(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
