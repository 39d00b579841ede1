package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "STOREFRONT_CONFIG_FILE"

type tlsFiles struct {
	CA   string `mapstructure:"ca"`
	Cert string `mapstructure:"cert"`
	Key  string `mapstructure:"key"`
}

// Enabled reports whether any file is set.
func (t tlsFiles) Enabled() bool {
	return t.CA != "" || t.Cert != "" || t.Key != ""
}

type broker struct {
	SeedBrokers        []string `mapstructure:"seed_brokers"`
	SchemaRegistryURLs []string `mapstructure:"schema_registry_urls"`
	ActivityTopic      string   `mapstructure:"activity_topic"`
	TLS                tlsFiles `mapstructure:"tls"`
}

// Enabled reports whether the activity stream is configured.
func (b broker) Enabled() bool {
	return len(b.SeedBrokers) != 0
}

type site struct {
	Name            string          `mapstructure:"name"`
	WhatsAppPhone   string          `mapstructure:"whatsapp_phone"`
	DefaultLanguage domain.Language `mapstructure:"default_language"`
	CatalogFile     string          `mapstructure:"catalog_file"`
}

type Config struct {
	LogLevel       slog.Level `mapstructure:"log_level"`
	HTTPServerAddr string     `mapstructure:"http_server_addr"`
	SQLDB          string     `mapstructure:"sql_db"`
	Site           site       `mapstructure:"site"`
	Broker         broker     `mapstructure:"broker"`
}

func Load() Config {
	cfg, err := LoadFile(getConfigFilepath())
	if err != nil {
		die(err)
	}
	return cfg
}

// LoadFile reads and validates the config file at path. Keys missing from
// the file keep their defaults.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, err
	}

	var cfg Config
	err := v.UnmarshalExact(&cfg, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("http_server_addr", ":8080")
	v.SetDefault("sql_db", "")
	v.SetDefault("site.name", "WinterDZ")
	v.SetDefault("site.whatsapp_phone", "213671389113")
	v.SetDefault("site.default_language", string(domain.LangFR))
	v.SetDefault("site.catalog_file", "")
	v.SetDefault("broker.seed_brokers", []string{})
	v.SetDefault("broker.schema_registry_urls", []string{})
	v.SetDefault("broker.activity_topic", "storefront-activity")
	v.SetDefault("broker.tls.ca", "")
	v.SetDefault("broker.tls.cert", "")
	v.SetDefault("broker.tls.key", "")
}

// Validate reports every inconsistent setting at once.
func (c Config) Validate() error {
	var errs []error

	if c.HTTPServerAddr == "" {
		errs = append(errs, errors.New("http_server_addr: required"))
	}

	if _, err := domain.ParseLanguage(string(c.Site.DefaultLanguage)); err != nil {
		errs = append(errs, fmt.Errorf("site.default_language: %w", err))
	}

	if c.Site.WhatsAppPhone == "" {
		errs = append(errs, errors.New("site.whatsapp_phone: required"))
	} else if _, err := service.NewWhatsApp(c.Site.WhatsAppPhone); err != nil {
		errs = append(errs, fmt.Errorf("site.whatsapp_phone: %w", err))
	}

	if c.Broker.Enabled() {
		if len(c.Broker.SchemaRegistryURLs) == 0 {
			errs = append(errs, errors.New("broker.schema_registry_urls: required with seed brokers"))
		}
		if c.Broker.ActivityTopic == "" {
			errs = append(errs, errors.New("broker.activity_topic: required with seed brokers"))
		}
	}

	t := c.Broker.TLS
	if t.Enabled() && (t.CA == "" || t.Cert == "" || t.Key == "") {
		errs = append(errs, errors.New("broker.tls: ca, cert and key go together"))
	}

	return errors.Join(errs...)
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "/config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	template := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q
	SQLDB=%q

	Site:
	Name=%q
	WhatsAppPhone=%q
	DefaultLanguage=%q
	CatalogFile=%q

	BrokerConfig:
	SeedBrokers=%q
	SchemaRegistryURLs=%q
	ActivityTopic=%q
	TLS=%t

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(template, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		redactDSN(c.SQLDB),
		c.Site.Name,
		c.Site.WhatsAppPhone,
		c.Site.DefaultLanguage,
		c.Site.CatalogFile,
		c.Broker.SeedBrokers,
		c.Broker.SchemaRegistryURLs,
		c.Broker.ActivityTopic,
		c.Broker.TLS.Enabled(),
	)
}

// redactDSN hides the password of a database URL.
func redactDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil {
		return dsn
	}
	return u.Redacted()
}
