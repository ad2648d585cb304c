package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Shop     ShopConfig
	Pricing  PricingConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// ShopConfig holds the storefront details shown on the welcome screen.
type ShopConfig struct {
	Name       string
	Greeting   string
	Address    string
	Hours      string
	Phone      string
	PartnerURL string `mapstructure:"partner_url"`
}

// PricingConfig holds money settings.
type PricingConfig struct {
	TaxRate float64 `mapstructure:"tax_rate"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// COFFEEHOUSE_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "coffeehouse", "orders.db"))
	v.SetDefault("shop.name", "Coffeffe Coffee House")
	v.SetDefault("shop.greeting", "Welcome to Coffeffe Coffee House! Where coffee drinkers drink coffee.")
	v.SetDefault("shop.address", "444 O Street Eagle, Ne. 68347")
	v.SetDefault("shop.hours", "Monday - Saturday 6am - 6pm")
	v.SetDefault("shop.phone", "(402)555-5555")
	v.SetDefault("shop.partner_url", "https://lulubeechocolates.com/")
	v.SetDefault("pricing.tax_rate", 0.07)
	v.SetDefault("ui.currency_symbol", "$")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("COFFEEHOUSE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "coffeehouse"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("COFFEEHOUSE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed.
func Save(cfg Config) error {
	path := os.Getenv("COFFEEHOUSE_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "coffeehouse", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("shop.name", cfg.Shop.Name)
	v.Set("shop.greeting", cfg.Shop.Greeting)
	v.Set("shop.address", cfg.Shop.Address)
	v.Set("shop.hours", cfg.Shop.Hours)
	v.Set("shop.phone", cfg.Shop.Phone)
	v.Set("shop.partner_url", cfg.Shop.PartnerURL)
	v.Set("pricing.tax_rate", cfg.Pricing.TaxRate)
	v.Set("ui.currency_symbol", cfg.UI.CurrencySymbol)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
