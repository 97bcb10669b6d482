package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"twitterosint/pkg/auth"
	"twitterosint/pkg/ui"
)

// authCmd represents the auth command
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage stored bearer tokens",
	Long: `Manage Twitter API bearer tokens stored on this machine.

Tokens are stored using:
  - System keychain (when available)
  - Encrypted file with PBKDF2 key derivation
  - The TWITTER_OSINT_BEARER_TOKEN environment variable (read only)

Never share your token or config files!`,
}

// loginCmd represents the auth login command
var loginCmd = &cobra.Command{
	Use:   "login [profile]",
	Short: "Store a bearer token securely",
	Example: `  # Store the default token
  twitterosint auth login

  # Store a token under a named profile
  twitterosint auth login research`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogin,
}

// logoutCmd represents the auth logout command
var logoutCmd = &cobra.Command{
	Use:   "logout [profile]",
	Short: "Remove a stored bearer token",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLogout,
}

// statusCmd represents the auth status command
var statusCmd = &cobra.Command{
	Use:   "status [profile]",
	Short: "Show the stored bearer token of a profile",
	Long:  `Show the stored bearer token of a profile with most of it masked.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStatus,
}

// listCmd represents the auth list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored profiles",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(statusCmd)
	authCmd.AddCommand(listCmd)
}

func profileArg(args []string) string {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return strings.TrimSpace(args[0])
	}
	return auth.DefaultProfile
}

func runLogin(cmd *cobra.Command, args []string) error {
	ui.SetNoColor(noColor)

	manager, err := auth.NewManager()
	if err != nil {
		return fmt.Errorf("failed to initialize credential manager: %w", err)
	}

	name := profileArg(args)
	auth.WriteTokenGuide(os.Stderr)

	fmt.Fprintf(os.Stderr, "Bearer token for profile '%s' (hidden): ", name)
	token, err := readPassword()
	if err != nil {
		return fmt.Errorf("failed to read token: %w", err)
	}

	if err := manager.Store(&auth.Credential{Profile: name, BearerToken: token}); err != nil {
		return err
	}

	ui.PrintSuccess(fmt.Sprintf("Token stored for profile '%s'", name))
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	ui.SetNoColor(noColor)

	manager, err := auth.NewManager()
	if err != nil {
		return fmt.Errorf("failed to initialize credential manager: %w", err)
	}

	name := profileArg(args)
	if err := manager.Delete(name); err != nil {
		return err
	}

	ui.PrintSuccess(fmt.Sprintf("Token removed for profile '%s'", name))
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	ui.SetNoColor(noColor)

	manager, err := auth.NewManager()
	if err != nil {
		return fmt.Errorf("failed to initialize credential manager: %w", err)
	}

	name := profileArg(args)
	cred, err := manager.Retrieve(name)
	if err != nil {
		if errors.Is(err, auth.ErrCredentialsNotFound) {
			ui.PrintWarning("No token stored", name)
			return nil
		}
		return err
	}

	ui.PrintInfo("Profile", cred.Profile)
	ui.PrintInfo("Token", auth.Mask(cred.BearerToken))
	if !cred.LastModified.IsZero() {
		ui.PrintInfo("Updated", cred.LastModified.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	ui.SetNoColor(noColor)

	manager, err := auth.NewManager()
	if err != nil {
		return fmt.Errorf("failed to initialize credential manager: %w", err)
	}

	creds, err := manager.List()
	if err != nil {
		return err
	}
	if len(creds) == 0 {
		ui.PrintWarning("No stored tokens", "run 'twitterosint auth login'")
		return nil
	}

	rows := make([][]string, 0, len(creds))
	for _, c := range creds {
		rows = append(rows, []string{c.Profile, auth.Mask(c.BearerToken)})
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.RenderTable([]string{"Profile", "Token"}, rows))
	return nil
}

// readPassword reads a secret from stdin without echoing
func readPassword() (string, error) {
	if term.IsTerminal(int(syscall.Stdin)) {
		password, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
		if err == nil {
			return string(password), nil
		}
	}

	// Fallback for piped input
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil && input == "" {
		return "", err
	}
	return strings.TrimSpace(input), nil
}
