package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Supported values for Config.DatabaseType
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

const (
	defaultPort      = 3318
	defaultSQLiteURL = "file:ippon.db"
	defaultEnvFile   = ".env"
)

// DefaultJudgeNames seeds the judge table when JUDGE_NAMES is unset.
var DefaultJudgeNames = []string{"Judge 1", "Judge 2", "Judge 3", "Judge 4", "Judge 5"}

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	JudgeNames   []string
	CORSOrigins  []string
	EnvFile      string
}

// ParseFlags reads flags, then the .env file, then environment variables.
// Flags win over the environment; the .env file never overrides variables
// already set in the process environment.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var judgeNames, corsOrigins string

	fs := flag.NewFlagSet("ippon-board", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&judgeNames, "judges", "", "Comma-separated judge names, in judge number order")
	fs.StringVar(&corsOrigins, "cors", "", "Comma-separated allowed CORS origins (default: any)")
	fs.StringVar(&cfg.EnvFile, "env", defaultEnvFile, "Path to a .env file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := loadEnvFile(cfg.EnvFile); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = defaultPort
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	switch cfg.DatabaseType {
	case DatabaseSQLite, DatabasePostgres:
	default:
		return Config{}, fmt.Errorf("unsupported database type %q (use sqlite or postgres)", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType != DatabaseSQLite {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = defaultSQLiteURL
	}

	if judgeNames == "" {
		judgeNames = os.Getenv("JUDGE_NAMES")
	}
	cfg.JudgeNames = splitList(judgeNames)
	if len(cfg.JudgeNames) == 0 {
		cfg.JudgeNames = append([]string(nil), DefaultJudgeNames...)
	}
	if len(cfg.JudgeNames) != len(DefaultJudgeNames) {
		return Config{}, fmt.Errorf("expected %d judge names, got %d", len(DefaultJudgeNames), len(cfg.JudgeNames))
	}

	if corsOrigins == "" {
		corsOrigins = os.Getenv("CORS_ORIGINS")
	}
	cfg.CORSOrigins = splitList(corsOrigins)

	return cfg, nil
}

// A missing file is not an error; the environment alone is enough in production.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
