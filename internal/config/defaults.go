package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Storage.DatabasePath == "" {
		cfg.Storage.DatabasePath = "./data/catalog.db"
	}
	if cfg.Search.MaxScoringCandidates == 0 {
		cfg.Search.MaxScoringCandidates = 200
	}
	if cfg.Search.ExpandedTermsPreview == 0 {
		cfg.Search.ExpandedTermsPreview = 20
	}
	cfg.Ranking.ApplyDefaults()
}
