package testutil

import (
	"os"
	"regexp"
	"testing"
)

var secretPattern = regexp.MustCompile(`\b(\w{4})[\w.-]+`)

func maskSecret(s string) string {
	return secretPattern.ReplaceAllString(s, "$1******")
}

// IntegrationTestConfigured reports whether the broker integration tests
// are enabled, they need {prefix}_TOKEN, {prefix}_ACCOUNT_ID and TEST_{prefix}=1.
func IntegrationTestConfigured(t *testing.T, prefix string) (token, accountID string, ok bool) {
	var hasToken, hasAccount bool
	token, hasToken = os.LookupEnv(prefix + "_TOKEN")
	accountID, hasAccount = os.LookupEnv(prefix + "_ACCOUNT_ID")
	ok = hasToken && hasAccount && os.Getenv("TEST_"+prefix) == "1"
	if ok {
		t.Logf(prefix+" api integration test enabled, token = %s, account = %s", maskSecret(token), accountID)
	}

	return token, accountID, ok
}
