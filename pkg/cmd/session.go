package cmd

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/investrobot/ordertracker/pkg/config"
	"github.com/investrobot/ordertracker/pkg/exchange"
	"github.com/investrobot/ordertracker/pkg/metrics"
	"github.com/investrobot/ordertracker/pkg/tracker"
	"github.com/investrobot/ordertracker/pkg/types"
)

// loadConfig reads the --config file when given and applies the flag and env overrides.
func loadConfig() (*config.Config, error) {
	var cfg = &config.Config{}

	if configFile := viper.GetString("config"); len(configFile) > 0 {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg.Defaults()
	}

	mergeConfig(cfg, viper.GetViper())

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// mergeConfig overrides the config file values with the values set by flags or env vars.
func mergeConfig(cfg *config.Config, v *viper.Viper) {
	if s := v.GetString("instrument"); len(s) > 0 {
		cfg.Instrument = s
	}

	if s := v.GetString("account-id"); len(s) > 0 {
		cfg.AccountID = s
	}

	if s := v.GetString("token"); len(s) > 0 {
		cfg.Broker.Token = s
	}

	if s := v.GetString("endpoint"); len(s) > 0 {
		cfg.Broker.Endpoint = s
	}

	if v.GetBool("sandbox") {
		cfg.Broker.Sandbox = true
	}

	if r := v.GetFloat64("rate-limit"); r > 0 {
		cfg.Broker.RateLimit = r
	}

	if v.GetBool("dry-run") {
		cfg.DryRun = true
	}

	if s := v.GetString("slack-channel"); len(s) > 0 {
		if cfg.Slack == nil {
			cfg.Slack = &config.SlackConfig{}
		}
		cfg.Slack.Channel = s
	}

	if s := v.GetString("slack-token"); len(s) > 0 && cfg.Slack != nil {
		cfg.Slack.Token = s
	}
}

func newOrderService(cfg *config.Config) (types.OrderService, error) {
	service, err := exchange.NewFromConfig(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "broker setup")
	}

	return service, nil
}

// newTracker creates the tracker with the log and the metrics sinks and the extra sinks given.
func newTracker(cfg *config.Config, service types.OrderService, sinks ...tracker.EventSink) (*tracker.OrderTracker, error) {
	var sink = tracker.MultiSink{
		tracker.NewLogSink(log.WithField("instrument", cfg.Instrument)),
		metrics.Sink{},
	}
	sink = append(sink, sinks...)

	return tracker.New(cfg.Instrument, service, tracker.WithEventSink(sink))
}

func setupTracker(sinks ...tracker.EventSink) (*config.Config, *tracker.OrderTracker, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	service, err := newOrderService(cfg)
	if err != nil {
		return nil, nil, err
	}

	t, err := newTracker(cfg, service, sinks...)
	if err != nil {
		return nil, nil, err
	}

	return cfg, t, nil
}
