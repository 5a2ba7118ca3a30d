package configuration

import (
	"fmt"
	"os"
	"strconv"

	"youtube-lite/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App         App         `json:"app"`
	Database    Database    `json:"database"`
	RedisClient RedisClient `json:"redisClient"`
	Google      Google      `json:"google"`
	Storage     Storage     `json:"storage"`
	Pubsub      Pubsub      `json:"pubsub"`
	Simulation  Simulation  `json:"simulation"`
}

type App struct {
	Port      int    `json:"port"`
	SecretKey string `json:"secretKey"`
}

type Database struct {
	Mongo Db `json:"mongo"`
	// MySql backs the legacy read path only.
	MySql Db `json:"mysql"`
}

type Db struct {
	Name     string `json:"name"`
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
}

type RedisClient struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Google holds the identity-provider OAuth client.
type Google struct {
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
	RedirectURI  string `json:"redirectURI"`
}

// Storage points at the object-storage/CDN upload endpoint.
type Storage struct {
	BaseURL   string `json:"baseURL"`
	Bucket    string `json:"bucket"`
	APIKey    string `json:"apiKey"`
	ChunkSize int64  `json:"chunkSize"`
}

type Pubsub struct {
	ProjectID string `json:"projectID"`
	Topic     string `json:"topic"`
}

// Simulation gates the fake growth ticker (off unless enabled).
type Simulation struct {
	Enabled          bool   `json:"enabled"`
	ViewIntervalSec  int    `json:"viewIntervalSec"`
	SubIntervalSec   int    `json:"subIntervalSec"`
	TargetChannelUID string `json:"targetChannelUID"`
}

var C Config

func init() {
	LoadConfig()
	initDatabase(&C)
	initApp(&C)
}

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
	logger.GetLogger().WithField("config", name).Info("Config set up successfully")
}

func getConfig() string {
	name := "config"
	if env := os.Getenv("ENV"); env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initDatabase(C *Config) {
	if C.Database.Mongo.Host == "" {
		C.Database.Mongo.Host = os.Getenv("MONGO_HOST")
	}
	if C.Database.Mongo.Port == "" {
		C.Database.Mongo.Port = os.Getenv("MONGO_PORT")
	}
	if C.Database.Mongo.User == "" {
		C.Database.Mongo.User = os.Getenv("MONGO_USER")
	}
	if C.Database.Mongo.Password == "" {
		C.Database.Mongo.Password = os.Getenv("MONGO_PASSWORD")
	}
	if C.Database.Mongo.Name == "" {
		if v := os.Getenv("MONGO_DB_NAME"); v != "" {
			C.Database.Mongo.Name = v
		} else {
			C.Database.Mongo.Name = "youtube_lite"
		}
	}

	if C.Database.MySql.Host == "" {
		C.Database.MySql.Host = os.Getenv("MYSQL_HOST")
	}
	if C.Database.MySql.Port == "" {
		if v := os.Getenv("MYSQL_PORT"); v != "" {
			C.Database.MySql.Port = v
		} else {
			C.Database.MySql.Port = "3306"
		}
	}
	if C.Database.MySql.User == "" {
		C.Database.MySql.User = os.Getenv("MYSQL_USER")
	}
	if C.Database.MySql.Password == "" {
		C.Database.MySql.Password = os.Getenv("MYSQL_PASSWORD")
	}
	if C.Database.MySql.Name == "" {
		if v := os.Getenv("MYSQL_DB_NAME"); v != "" {
			C.Database.MySql.Name = v
		} else {
			C.Database.MySql.Name = "youtube_lite_legacy"
		}
	}
}

func initApp(C *Config) {
	// SECRET_KEY from environment overrides the config file when provided.
	if v := os.Getenv("SECRET_KEY"); v != "" {
		C.App.SecretKey = v
	}
	// Port resolution order (env overrides config): APP_PORT -> PORT -> config -> default 10001
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if C.App.Port == 0 {
		C.App.Port = 10001
	}

	if C.Google.ClientID == "" {
		C.Google.ClientID = os.Getenv("GOOGLE_CLIENT_ID")
	}
	if C.Google.ClientSecret == "" {
		C.Google.ClientSecret = os.Getenv("GOOGLE_CLIENT_SECRET")
	}
	if C.Google.RedirectURI == "" {
		C.Google.RedirectURI = os.Getenv("GOOGLE_REDIRECT_URI")
	}

	if C.Storage.BaseURL == "" {
		C.Storage.BaseURL = os.Getenv("STORAGE_BASE_URL")
	}
	if C.Storage.Bucket == "" {
		C.Storage.Bucket = os.Getenv("STORAGE_BUCKET")
	}
	if C.Storage.APIKey == "" {
		C.Storage.APIKey = os.Getenv("STORAGE_API_KEY")
	}
	if C.Storage.ChunkSize == 0 {
		C.Storage.ChunkSize = 8 << 20
	}

	if C.Pubsub.ProjectID == "" {
		C.Pubsub.ProjectID = os.Getenv("PUBSUB_PROJECT_ID")
	}
	if C.Pubsub.Topic == "" {
		C.Pubsub.Topic = "engagement-events"
	}

	if C.App.SecretKey == "" {
		logger.GetLogger().Warn("App.SecretKey not set; JWT authentication will fail. Provide SECRET_KEY via environment.")
	}
}

// Validate reports the missing settings the service cannot run without.
// A non-empty result puts the router into the blocking config-error state.
func (c *Config) Validate() []string {
	var missing []string
	if c.Database.Mongo.Host == "" {
		missing = append(missing, "database.mongo.host")
	}
	if c.App.SecretKey == "" {
		missing = append(missing, "app.secretKey")
	}
	return missing
}
