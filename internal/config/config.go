package config

import (
	"fmt"

	"github.com/labelmint/labelmint/pkg/mysql"
	"github.com/labelmint/labelmint/pkg/razorpay"
	"github.com/spf13/viper"
)

type Config struct {
	API      API             `mapstructure:"api"`
	Database mysql.Config    `mapstructure:"database"`
	Razorpay razorpay.Config `mapstructure:"razorpay"`
	Pricing  Pricing         `mapstructure:"pricing"`
}

type API struct {
	Port     string `mapstructure:"port"`
	SiteName string `mapstructure:"site_name"`
}

type Pricing struct {
	// PricePerCredit is in whole currency units; the gateway is charged in
	// minor units (x100).
	PricePerCredit int64  `mapstructure:"price_per_credit"`
	Currency       string `mapstructure:"currency"`
}

func Load() (cfg *Config, err error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	viper.SetDefault("pricing.price_per_credit", 50)
	viper.SetDefault("pricing.currency", "INR")

	err = viper.ReadInConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
