package config

// Config is the root configuration of the lexis CLI.
type Config struct {
	Storage   StorageConfig   `yaml:"storage"`
	Languages LanguagesConfig `yaml:"languages"`
	Practice  PracticeConfig  `yaml:"practice"`
	Search    SearchConfig    `yaml:"search"`
	Explain   ExplainConfig   `yaml:"explain"`
	Log       LogConfig       `yaml:"log"`
}

// StorageConfig holds the three snapshot paths.
type StorageConfig struct {
	Words     string `yaml:"words"     env:"LEXIS_WORDS"     env-default:"words.db"`
	Sentences string `yaml:"sentences" env:"LEXIS_SENTENCES" env-default:"sentences.db"`
	Groups    string `yaml:"groups"    env:"LEXIS_GROUPS"    env-default:"groups.db"`
}

// LanguagesConfig holds the display names used in prompts and output.
type LanguagesConfig struct {
	Source    string `yaml:"source"    env:"LEXIS_LANG_SOURCE"    env-default:"french"`
	Primary   string `yaml:"primary"   env:"LEXIS_LANG_PRIMARY"   env-default:"swedish"`
	Secondary string `yaml:"secondary" env:"LEXIS_LANG_SECONDARY" env-default:"english"`
}

type PracticeConfig struct {
	RepeatProbability float64 `yaml:"repeat_probability" env:"LEXIS_REPEAT_PROBABILITY" env-default:"0.3"`
}

type SearchConfig struct {
	Results int `yaml:"results" env:"LEXIS_SEARCH_RESULTS" env-default:"10"`
}

// ExplainConfig selects the segmenter ("latin" or "kagome") and sizes the match cache.
type ExplainConfig struct {
	Segmenter string `yaml:"segmenter"  env:"LEXIS_SEGMENTER"  env-default:"latin"`
	CacheSize int    `yaml:"cache_size" env:"LEXIS_CACHE_SIZE" env-default:"4096"`
}

// LogConfig holds logging settings. Format is "text" or "json".
type LogConfig struct {
	Level  string `yaml:"level"  env:"LEXIS_LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"LEXIS_LOG_FORMAT" env-default:"text"`
}
