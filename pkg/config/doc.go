// Package config loads typed configuration from the environment.
//
// Load parses `env` struct tags with github.com/caarlos0/env/v11 after
// reading ./.env (if present) with github.com/joho/godotenv. Each struct type
// is parsed once per process and served from a cache afterwards; a failed
// parse is not cached.
//
//	type Config struct {
//		Extensions []string `env:"UAPARSE_EXTENSIONS" envSeparator:","`
//		CacheSize  int      `env:"UAPARSE_CACHE_SIZE" envDefault:"1024"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// LoadEnv reads additional .env files, later ones winning. ResetCache and
// ForceReloadConfig exist for tests that change the environment.
//
// Errors wrap ErrParsingConfig, ErrNilPointer or ErrLoadingEnvFile.
package config
