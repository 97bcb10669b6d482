package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"twitterosint/pkg/auth"
	"twitterosint/pkg/config"
	"twitterosint/pkg/osint"
	"twitterosint/pkg/retry"
	"twitterosint/pkg/twitter"
)

var (
	// Run command flags
	userID     int64
	screenName string
	count      int
	profile    string
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <action>",
	Short: "Run an action against an account",
	Long: `Run an action against the account given by --user-id or --screen-name.

Use 'twitterosint actions' to list the available actions.`,
	Example: `  # Accounts that follow @jack and are followed back
  twitterosint run intersection --screen-name jack

  # Earliest ten followers with estimated follow dates
  twitterosint run first_followers --user-id 12 --count 10

  # Account creation time
  twitterosint run creation --screen-name jack`,
	Args: cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(osint.All()))
		for _, a := range osint.All() {
			names = append(names, a.String())
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: runAction,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Int64Var(&userID, "user-id", 0, "numeric ID of the target account")
	runCmd.Flags().StringVar(&screenName, "screen-name", "", "screen name of the target account")
	runCmd.Flags().IntVar(&count, "count", 0, "number of followers reported by first_followers")
	runCmd.Flags().StringVar(&profile, "profile", auth.DefaultProfile, "stored token profile to use")

	runCmd.MarkFlagsMutuallyExclusive("user-id", "screen-name")
	runCmd.MarkFlagsOneRequired("user-id", "screen-name")
}

func runAction(cmd *cobra.Command, args []string) error {
	action, err := osint.ParseAction(args[0])
	if err != nil {
		return err
	}

	id := twitter.ByUserID(userID)
	if cmd.Flags().Changed("screen-name") {
		id = twitter.ByScreenName(screenName)
	}
	if err := id.Validate(); err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := setupLogging(cfg)
	if err != nil {
		return err
	}

	token, err := resolveToken(cfg, profile)
	if err != nil {
		return err
	}
	cfg.Twitter.BearerToken = token

	client := twitter.NewClient(cfg.Twitter, retry.FromConfig(cfg.Retry, log), log)
	orchestrator := osint.NewOrchestrator(client, client, log, osint.WithFirstFollowers(cfg.OSINT.FirstFollowers))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out, err := orchestrator.Perform(ctx, action, id)
	if err != nil {
		log.WithError(err).ErrorWithFields("action failed", map[string]interface{}{
			"action":  action.String(),
			"account": id.String(),
		})
		return err
	}

	if out != "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	return nil
}

// resolveToken prefers a configured token and falls back to the credential store
func resolveToken(cfg *config.Config, profile string) (string, error) {
	if cfg.Twitter.BearerToken != "" {
		return cfg.Twitter.BearerToken, nil
	}

	manager, err := auth.NewManager()
	if err != nil {
		return "", fmt.Errorf("failed to initialize credential manager: %w", err)
	}
	cred, err := manager.Retrieve(profile)
	if err != nil {
		if errors.Is(err, auth.ErrCredentialsNotFound) {
			return "", fmt.Errorf("no bearer token for profile %q: run 'twitterosint auth login' or set %s", profile, auth.TokenEnvVar)
		}
		return "", err
	}
	return cred.BearerToken, nil
}
