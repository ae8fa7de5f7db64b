package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"github.com/investrobot/ordertracker/pkg/util"
)

const DefaultSchedule = "@every 1m"

type BrokerConfig struct {
	Endpoint string `yaml:"endpoint,omitempty"`
	Sandbox  bool   `yaml:"sandbox,omitempty"`

	// RateLimit is the allowed requests per second, 0 keeps the api client default
	RateLimit float64 `yaml:"rateLimit,omitempty"`

	// Token is usually given by the INVEST_TOKEN env var
	Token string `yaml:"token,omitempty"`

	// Currency of the paper account in dry run mode
	Currency string `yaml:"currency,omitempty"`
}

type MetricsConfig struct {
	Bind string `yaml:"bind"`
}

type SlackConfig struct {
	Channel string `yaml:"channel"`
	Token   string `yaml:"token,omitempty"`

	// RateLimit of the posted messages, like "3+1/1s"
	RateLimit string `yaml:"rateLimit,omitempty"`
}

type Config struct {
	Instrument string `yaml:"instrument"`
	AccountID  string `yaml:"accountId"`

	Broker BrokerConfig `yaml:"broker"`

	// Schedule is the cron spec of the run loop
	Schedule string `yaml:"schedule,omitempty"`

	// CancelStale cancels the tracked orders on every tick of the run loop
	CancelStale bool `yaml:"cancelStale,omitempty"`

	// Timeout bounds one tick of the run loop
	Timeout time.Duration `yaml:"timeout,omitempty"`

	DryRun bool `yaml:"dryRun,omitempty"`

	Metrics *MetricsConfig `yaml:"metrics,omitempty"`
	Slack   *SlackConfig   `yaml:"slack,omitempty"`
}

func Load(configFile string) (*Config, error) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	config, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config file %s", configFile)
	}

	return config, nil
}

func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	config.Defaults()
	return &config, nil
}

func (c *Config) Defaults() {
	if c.Schedule == "" {
		c.Schedule = DefaultSchedule
	}

	if c.Broker.Currency == "" {
		c.Broker.Currency = "rub"
	}

	if c.Timeout == 0 {
		c.Timeout = 30 * time.Second
	}
}

func (c *Config) Validate() error {
	if c.Instrument == "" {
		return errors.New("instrument is required")
	}

	if !c.DryRun {
		if c.AccountID == "" {
			return errors.New("accountId is required")
		}

		if c.Broker.Token == "" {
			return errors.New("broker token is required, set INVEST_TOKEN or --token")
		}
	}

	if _, err := cron.ParseStandard(c.Schedule); err != nil {
		return errors.Wrapf(err, "invalid schedule %q", c.Schedule)
	}

	if c.Slack != nil {
		if c.Slack.Channel == "" {
			return errors.New("slack channel is required when slack is configured")
		}

		if c.Slack.RateLimit != "" {
			if _, err := util.ParseRateLimitSyntax(c.Slack.RateLimit); err != nil {
				return errors.Wrap(err, "slack")
			}
		}
	}

	return nil
}
