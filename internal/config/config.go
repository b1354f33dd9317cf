// Package config loads this service's settings with viper, mirroring
// common/config/app_config.go's mapstructure-tagged structs and
// fsnotify-driven hot reload.
package config

import (
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// LogConf controls internal/logging's level and output.
type LogConf struct {
	Level string `mapstructure:"level"`
}

// HTTPConf configures cmd/scoreserver's gin server.
type HTTPConf struct {
	Port int `mapstructure:"port"`
}

// MetricsConf configures internal/metrics's statsviz endpoint.
type MetricsConf struct {
	Port int `mapstructure:"port"`
}

// JwtConf configures internal/auth's token issuance/verification.
type JwtConf struct {
	Secret        string `mapstructure:"secret"`
	ExpireMinutes int    `mapstructure:"expireMinutes"`
}

// RedisConf configures internal/store's idempotency cache.
type RedisConf struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// MongoConf configures internal/store's ruleset/history persistence.
type MongoConf struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

// NatsConf configures internal/events's publisher.
type NatsConf struct {
	URL     string `mapstructure:"url"`
	Subject string `mapstructure:"subject"`
}

// RuleSetConf mirrors mahjong.RuleSet. It is loaded into Config.Rules but
// is not applied to requests: a request that omits its rules is scored
// with mahjong.DefaultRuleSet.
type RuleSetConf struct {
	AkaAri           bool `mapstructure:"akaAri"`
	KuitanAri        bool `mapstructure:"kuitanAri"`
	DoubleYakumanAri bool `mapstructure:"doubleYakumanAri"`
	KazoeYakumanAri  bool `mapstructure:"kazoeYakumanAri"`
	RenpuFu          int  `mapstructure:"renpuFu"`
}

// Config is the root configuration document for both cmd/scoreserver and
// cmd/scorecli.
type Config struct {
	Log     LogConf     `mapstructure:"log"`
	HTTP    HTTPConf    `mapstructure:"http"`
	Metrics MetricsConf `mapstructure:"metrics"`
	Jwt     JwtConf     `mapstructure:"jwt"`
	Redis   RedisConf   `mapstructure:"redis"`
	Mongo   MongoConf   `mapstructure:"mongo"`
	Nats    NatsConf    `mapstructure:"nats"`
	Rules   RuleSetConf `mapstructure:"rules"`
}

// Default returns the configuration used when no config file is supplied,
// e.g. by scorecli serve or scoreserver run without --configFile.
func Default() Config {
	return Config{
		Log:     LogConf{Level: "info"},
		HTTP:    HTTPConf{Port: 8080},
		Metrics: MetricsConf{Port: 8090},
		Jwt:     JwtConf{ExpireMinutes: 60},
		Rules: RuleSetConf{
			AkaAri:           true,
			KuitanAri:        true,
			DoubleYakumanAri: true,
			KazoeYakumanAri:  true,
			RenpuFu:          4,
		},
	}
}

// Load reads configFile into a Config, with environment variables (dots
// replaced by underscores) overriding file values.
func Load(configFile string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := Default()
	if err := v.ReadInConfig(); err != nil {
		return cfg, err
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Watch reloads configFile on change and invokes onChange with the new
// Config. Parse failures are reported through onErr and leave the
// previous configuration in place, mirroring InitFixedConfig's
// watch-and-reload pattern.
func Watch(configFile string, onChange func(Config), onErr func(error)) {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.WatchConfig()
	v.OnConfigChange(func(in fsnotify.Event) {
		cfg := Default()
		if err := v.ReadInConfig(); err != nil {
			onErr(err)
			return
		}
		if err := v.Unmarshal(&cfg); err != nil {
			onErr(err)
			return
		}
		onChange(cfg)
	})
}
