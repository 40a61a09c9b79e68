package bootstrap

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ServerPort        string        `mapstructure:"SERVER_PORT"`
	EngineGrpcPort    string        `mapstructure:"ENGINE_GRPC_PORT"`
	EngineGrpcAddr    string        `mapstructure:"ENGINE_GRPC_ADDR"`
	RedisUrl          string        `mapstructure:"REDIS_URL"`
	RedisPassword     string        `mapstructure:"REDIS_PASSWORD"`
	GameTTL           time.Duration `mapstructure:"GAME_TTL"`
	IsLocalCors       bool          `mapstructure:"LOCAL_CORS"`
	BoardSize         int           `mapstructure:"BOARD_SIZE"`
	DepthEasy         int           `mapstructure:"DEPTH_EASY"`
	DepthMedium       int           `mapstructure:"DEPTH_MEDIUM"`
	DepthHard         int           `mapstructure:"DEPTH_HARD"`
	ThreatBlockWeight float64       `mapstructure:"THREAT_BLOCK_WEIGHT"`
	CandidateLimit    int           `mapstructure:"CANDIDATE_LIMIT"`
	CandidateRadius   int           `mapstructure:"CANDIDATE_RADIUS"`
	KafkaBrokers      string        `mapstructure:"KAFKA_BROKERS"`
	KafkaTopic        string        `mapstructure:"KAFKA_TOPIC"`
}

var defaults = map[string]any{
	"SERVER_PORT":         "8080",
	"ENGINE_GRPC_PORT":    "8082",
	"ENGINE_GRPC_ADDR":    "",
	"REDIS_URL":           "localhost:6379",
	"REDIS_PASSWORD":      "",
	"GAME_TTL":            "2h",
	"LOCAL_CORS":          false,
	"BOARD_SIZE":          15,
	"DEPTH_EASY":          2,
	"DEPTH_MEDIUM":        3,
	"DEPTH_HARD":          4,
	"THREAT_BLOCK_WEIGHT": 1.2,
	"CANDIDATE_LIMIT":     10,
	"CANDIDATE_RADIUS":    2,
	"KAFKA_BROKERS":       "",
	"KAFKA_TOPIC":         "omok-events",
}

// Setup reads cfgPath (a .env file) on top of the defaults. Environment
// variables override both. A missing file is not an error.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	v.SetConfigFile(cfgPath)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
