package exchange

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/investrobot/ordertracker/pkg/config"
	"github.com/investrobot/ordertracker/pkg/exchange/invest"
	"github.com/investrobot/ordertracker/pkg/exchange/invest/investapi"
	"github.com/investrobot/ordertracker/pkg/exchange/paper"
	"github.com/investrobot/ordertracker/pkg/types"
)

type BrokerName string

const (
	BrokerInvest BrokerName = "invest"
	BrokerPaper  BrokerName = "paper"
)

// BrokerOptions carries the settings a broker constructor may need
type BrokerOptions struct {
	AccountID string
	Broker    config.BrokerConfig
}

// BrokerConstructor is a function type to create an order service with the given options
type BrokerConstructor func(options BrokerOptions) (types.OrderService, error)

var brokerFactories = map[BrokerName]BrokerConstructor{
	BrokerInvest: func(options BrokerOptions) (types.OrderService, error) {
		client, err := newInvestClient(options.Broker)
		if err != nil {
			return nil, err
		}

		return invest.New(client, options.AccountID)
	},
	BrokerPaper: func(options BrokerOptions) (types.OrderService, error) {
		log.Warnf("dry run mode, orders are placed on the paper broker")
		return paper.New(options.Broker.Currency), nil
	},
}

// newInvestClient applies the broker config to a new api client. A zero rate
// limit keeps investapi.DefaultLimit.
func newInvestClient(conf config.BrokerConfig) (*investapi.RestClient, error) {
	endpoint := conf.Endpoint
	if endpoint == "" && conf.Sandbox {
		endpoint = investapi.SandboxBaseURL
	}

	client, err := investapi.NewClient(endpoint)
	if err != nil {
		return nil, err
	}

	client.Auth(conf.Token)
	client.SetSandbox(conf.Sandbox)

	if conf.RateLimit > 0 {
		client.SetRateLimit(conf.RateLimit)
	}

	if conf.Sandbox {
		log.Infof("using the sandbox service")
	}

	return client, nil
}

func RegisterBroker(name BrokerName, constructor BrokerConstructor) {
	brokerFactories[name] = constructor
}

func New(n BrokerName, options BrokerOptions) (types.OrderService, error) {
	constructor, existing := brokerFactories[n]
	if !existing {
		return nil, fmt.Errorf("unsupported broker: %v", n)
	}

	return constructor(options)
}

// NewFromConfig picks the paper broker in dry run mode and the invest api otherwise.
func NewFromConfig(cfg *config.Config) (types.OrderService, error) {
	name := BrokerInvest
	if cfg.DryRun {
		name = BrokerPaper
	}

	return New(name, BrokerOptions{
		AccountID: cfg.AccountID,
		Broker:    cfg.Broker,
	})
}
