package config

import (
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	viper "github.com/spf13/viper"
)

/*
把init跟read分開
init : 需要設置viper watch 與 onConfigChange
read : 一般讀取  需要使用讀寫鎖
*/
var config_singleton *ConfigSingleTon
var muonce sync.Once

type ConfigSingleTon struct {
	Config *Config
	mu     sync.RWMutex
}

type Config struct {
	ApiBaseUrl         string `mapstructure:"API_BASE_URL"`
	HttpTimeoutSeconds int    `mapstructure:"HTTP_TIMEOUT_SECONDS"`
	CredentialFile     string `mapstructure:"CREDENTIAL_FILE"`
	ReviewPageSize     int    `mapstructure:"REVIEW_PAGE_SIZE"`
	LogLevel           string `mapstructure:"LOG_LEVEL"`
}

// HttpTimeout HTTP client逾時設定
// 未設定時交給預設值
func (cf *Config) HttpTimeout() time.Duration {
	return time.Duration(cf.HttpTimeoutSeconds) * time.Second
}

func GetConfig() *Config {
	initConfig()
	config_singleton.mu.RLock()
	defer config_singleton.mu.RUnlock()
	return config_singleton.Config
}

func initConfig() {
	if config_singleton == nil {
		muonce.Do(func() {
			config_singleton = &ConfigSingleTon{}
			if cf, err := loadConfig(); err == nil {
				config_singleton.Config = cf
			} else {
				log.Fatal("error read storefront config")
			}
			viper.WatchConfig()
			viper.OnConfigChange(func(e fsnotify.Event) {
				if cf, err := loadConfig(); err == nil {
					config_singleton.mu.Lock()
					config_singleton.Config = cf
					config_singleton.mu.Unlock()
				} else {
					log.Panic("failed to reload config file")
				}
			})
		})
	}
}

/*
單純回傳錯誤  由外部決定要不要Fatal, 畢竟有可能有替代方案
.env不存在時使用預設值與環境變數
*/
func loadConfig() (cf *Config, err error) {
	cf = &Config{}
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	setDefaults()

	if readErr := viper.ReadInConfig(); readErr != nil && !os.IsNotExist(readErr) {
		if _, ok := readErr.(viper.ConfigFileNotFoundError); !ok {
			return nil, readErr
		}
	}

	err = viper.Unmarshal(cf)
	if err != nil {
		return
	}
	return
}

func setDefaults() {
	viper.SetDefault("API_BASE_URL", "http://localhost:5000/api")
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", 30)
	viper.SetDefault("CREDENTIAL_FILE", defaultCredentialFile())
	viper.SetDefault("REVIEW_PAGE_SIZE", 5)
	viper.SetDefault("LOG_LEVEL", "info")
}

func defaultCredentialFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".storefront/credentials.json"
	}
	return filepath.Join(home, ".storefront", "credentials.json")
}
