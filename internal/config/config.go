package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Import ImportConfig `mapstructure:"import"`
	Log    LogConfig    `mapstructure:"log"`
	S3     S3Config     `mapstructure:"s3"`
}

// ImportConfig selects where the CSV files are read from.
type ImportConfig struct {
	Source  string        `mapstructure:"source"` // "local" or "s3"
	DataDir string        `mapstructure:"data_dir"`
	Prefix  string        `mapstructure:"prefix"` // key prefix inside the bucket
	Timeout time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// LoadConfig reads configuration from path/config.yaml and the environment.
// A missing file is not an error; defaults and env vars are used instead.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// import.data_dir -> IMPORT_DATA_DIR
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	v.SetDefault("import.source", "local")
	v.SetDefault("import.data_dir", "data")
	v.SetDefault("import.prefix", "")
	v.SetDefault("import.timeout", "30s")
	v.SetDefault("log.level", "info")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.access_key_id", "")
	v.SetDefault("s3.secret_access_key", "")
	v.SetDefault("s3.bucket_name", "")
	v.SetDefault("s3.use_ssl", true)

	err = v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		err = nil
	} else if err != nil {
		return
	}

	err = v.Unmarshal(&config)
	return
}
