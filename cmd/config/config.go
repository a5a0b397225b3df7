package config

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var (
	Port           string
	GinMode        string
	JWTSecret      string
	TokenTTLHours  int
	GoogleClientID string
	StoreDriver    string
	SQLitePath     string
	AWSRegion      string
	S3Bucket       string
	CORSOrigins    []string
)

// Load reads config.yaml if present and applies VIDEOSHARE_* environment
// overrides. Every key has a default, so running with no config file works.
func Load() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("cmd/config/")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("videoshare")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("server.port", "4000")
	viper.SetDefault("server.mode", "debug")
	// Insecure default, matching the upstream demo. Override in any real
	// deployment.
	viper.SetDefault("auth.jwt_secret", "dev_secret_change_me")
	viper.SetDefault("auth.token_ttl_hours", 168)
	viper.SetDefault("auth.google_client_id", "")
	viper.SetDefault("store.driver", "memory")
	viper.SetDefault("store.sqlite_path", "videoshare.db")
	viper.SetDefault("aws.region", "")
	viper.SetDefault("aws.s3_bucket", "")
	viper.SetDefault("cors.origins", []string{"*"})

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			logrus.Fatalf("Error reading config file, %s", err)
		}
	}

	Port = viper.GetString("server.port")
	GinMode = viper.GetString("server.mode")
	JWTSecret = viper.GetString("auth.jwt_secret")
	TokenTTLHours = viper.GetInt("auth.token_ttl_hours")
	GoogleClientID = viper.GetString("auth.google_client_id")
	StoreDriver = viper.GetString("store.driver")
	SQLitePath = viper.GetString("store.sqlite_path")
	AWSRegion = viper.GetString("aws.region")
	S3Bucket = viper.GetString("aws.s3_bucket")
	CORSOrigins = viper.GetStringSlice("cors.origins")
}
