package cmdutil

import "github.com/spf13/pflag"

// PersistentFlags defines the flags for the broker connection
func PersistentFlags(flags *pflag.FlagSet) {
	flags.String("token", "", "invest api token, INVEST_TOKEN")
	flags.String("account-id", "", "broker account id, INVEST_ACCOUNT_ID")
	flags.String("endpoint", "", "invest rest gateway endpoint")
	flags.Bool("sandbox", false, "use the sandbox service")
	flags.Float64("rate-limit", 0, "broker requests per second")
	flags.Bool("dry-run", false, "trade against the in-memory paper broker")
	flags.String("instrument", "", "the tracked instrument figi, like BBG004730N88")
}
