// Package config loads the report-forge settings file: the tenant identity,
// the table styling, the page chrome and the document store credentials.
package config

import (
	"fmt"

	"github.com/de-tools/report-forge/pkg/models/domain"
	"github.com/spf13/viper"
)

type Config struct {
	Tenant string       `mapstructure:"tenant"`
	Scheme SchemeConfig `mapstructure:"scheme"`
	Chrome ChromeConfig `mapstructure:"chrome"`
	Store  StoreConfig  `mapstructure:"store"`
}

// SchemeConfig holds the four table colors as hex strings; all four must
// resolve to valid colors before rendering begins.
type SchemeConfig struct {
	HeaderBackground string `mapstructure:"header_background"`
	HeaderText       string `mapstructure:"header_text"`
	OddRow           string `mapstructure:"odd_row"`
	EvenRow          string `mapstructure:"even_row"`
}

type ChromeConfig struct {
	Header1  string `mapstructure:"header1"`
	Header2  string `mapstructure:"header2"`
	Footer   string `mapstructure:"footer"`
	LogoPath string `mapstructure:"logo_path"`
}

// StoreConfig carries the document store credentials. Secrets usually come
// from the environment rather than the file.
type StoreConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	TenantID     string `mapstructure:"tenant_id"`
	Tenant       string `mapstructure:"tenant"`
	SiteName     string `mapstructure:"site_name"`
	Library      string `mapstructure:"library"`
	Subfolder    string `mapstructure:"subfolder"`
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse report config: %w", err)
	}
	return &cfg, nil
}

// Domain resolves the configured hex values into a color scheme.
func (s SchemeConfig) Domain() (domain.ColorScheme, error) {
	var scheme domain.ColorScheme
	var err error

	if scheme.HeaderBackground, err = domain.ParseHexColor(s.HeaderBackground); err != nil {
		return domain.ColorScheme{}, fmt.Errorf("header_background: %w", err)
	}
	if scheme.HeaderText, err = domain.ParseHexColor(s.HeaderText); err != nil {
		return domain.ColorScheme{}, fmt.Errorf("header_text: %w", err)
	}
	if scheme.OddRow, err = domain.ParseHexColor(s.OddRow); err != nil {
		return domain.ColorScheme{}, fmt.Errorf("odd_row: %w", err)
	}
	if scheme.EvenRow, err = domain.ParseHexColor(s.EvenRow); err != nil {
		return domain.ColorScheme{}, fmt.Errorf("even_row: %w", err)
	}
	return scheme, nil
}

// Domain maps the chrome settings onto the renderer's model.
func (c ChromeConfig) Domain() domain.PageChrome {
	return domain.PageChrome{
		Header1:  c.Header1,
		Header2:  c.Header2,
		Footer:   c.Footer,
		LogoPath: c.LogoPath,
	}
}
