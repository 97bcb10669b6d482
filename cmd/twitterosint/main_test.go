package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twitterosint/pkg/osint"
	"twitterosint/pkg/twitter"
	"twitterosint/pkg/twitter/twittertest"
)

// executeCommand runs the root command with fresh flag state
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	_, err := rootCmd.ExecuteC()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{
		"TWITTER_OSINT_BEARER_TOKEN", "TWITTER_OSINT_API_URL", "TWITTER_OSINT_TIMEOUT",
		"TWITTER_OSINT_RETRY_ATTEMPTS", "TWITTER_OSINT_FIRST_FOLLOWERS", "TWITTER_OSINT_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestRunCreation(t *testing.T) {
	isolateEnv(t)
	srv := twittertest.NewServer(t, &twittertest.Account{
		User: twitter.User{ID: 12, IDStr: "12", ScreenName: "jack", Name: "jack", CreatedAt: "Tue Mar 21 20:50:14 +0000 2006"},
	})
	srv.Token = "secret"

	out, err := executeCommand(t, "run", "creation", "--screen-name", "jack",
		"--api-url", srv.APIURL(), "--bearer-token", "secret", "--log-level", "disabled")
	require.NoError(t, err)
	assert.Equal(t, "Tue Mar 21 20:50:14 +0000 2006\n", out)
	assert.Equal(t, 1, srv.TotalRequests())
}

func TestRunFirstFollowersZeroCount(t *testing.T) {
	isolateEnv(t)
	t.Setenv("TWITTER_OSINT_FIRST_FOLLOWERS", "7")
	srv := twittertest.NewServer(t, &twittertest.Account{
		User:      twitter.User{ID: 12, ScreenName: "jack", Name: "jack", CreatedAt: "Tue Mar 21 20:50:14 +0000 2006"},
		Followers: []int64{10, 20},
	})

	out, err := executeCommand(t, "run", "first_followers", "--user-id", "12", "--count", "0",
		"--api-url", srv.APIURL(), "--bearer-token", "secret", "--log-level", "disabled")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, 0, srv.TotalRequests())
}

func TestRunUnsupportedActionMakesNoRequests(t *testing.T) {
	isolateEnv(t)
	srv := twittertest.NewServer(t)

	_, err := executeCommand(t, "run", "bogus", "--user-id", "12",
		"--api-url", srv.APIURL(), "--bearer-token", "secret", "--log-level", "disabled")
	assert.ErrorIs(t, err, osint.ErrUnsupportedAction)
	assert.Equal(t, 0, srv.TotalRequests())
}

func TestRunRequiresOneIdentifier(t *testing.T) {
	isolateEnv(t)

	_, err := executeCommand(t, "run", "creation")
	assert.Error(t, err)

	_, err = executeCommand(t, "run", "creation", "--user-id", "12", "--screen-name", "jack")
	assert.Error(t, err)
}

func TestActionsListsEveryAction(t *testing.T) {
	out, err := executeCommand(t, "actions", "--no-color")
	require.NoError(t, err)
	for _, a := range osint.All() {
		assert.Contains(t, out, a.String())
	}
}
