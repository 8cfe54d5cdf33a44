package sliceutils

type (
	matchConfig struct {
		ignoreCase    bool
		legacyFolding bool
	}

	MatchOption func(mc *matchConfig)
)

// IgnoreCase makes the comparison case-insensitive by lower-casing both sides.
func IgnoreCase() MatchOption {
	return func(mc *matchConfig) {
		mc.ignoreCase = true
	}
}

// LegacyCaseFolding restores the old ContainsRune behaviour where only the needle
// gets lower-cased and the haystack is searched as is. It is meant for callers
// migrating code that depends on that result and has no effect without IgnoreCase.
func LegacyCaseFolding() MatchOption {
	return func(mc *matchConfig) {
		mc.legacyFolding = true
	}
}

func newMatchConfig(opts []MatchOption) matchConfig {
	var cfg matchConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
