package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jfmyers9/sharkfin/internal/config"
	"github.com/jfmyers9/sharkfin/pkg/grooveshark"
	"github.com/spf13/cobra"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Store Grooveshark API credentials",
	Long: `Store Grooveshark API credentials in the config file.

This command will:
1. Prompt for your application key and shared secret
2. Optionally prompt for a login name
3. Check the key against the service with pingService
4. Save everything except passwords to ~/.config/sharkfin/config.yaml

Passwords are never written to disk. Provide one through
SHARKFIN_GROOVESHARK_PASSWORD or a .env file when a command needs to log in.`,
	RunE: runConfigure,
}

func init() {
	rootCmd.AddCommand(configureCmd)
}

func runConfigure(cmd *cobra.Command, args []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println("Grooveshark Configuration")
	fmt.Println("=========================")
	fmt.Println()

	// Check if we already have credentials
	if cfg.Grooveshark.APIKey != "" && cfg.Grooveshark.APISecret != "" {
		fmt.Printf("Found existing API credentials.\n")
		fmt.Printf("API Key: %s\n", cfg.Grooveshark.APIKey)
		fmt.Print("\nUse existing credentials? [Y/n]: ")
		if !confirm(reader) {
			cfg.Grooveshark.APIKey = ""
			cfg.Grooveshark.APISecret = ""
		}
	}

	if cfg.Grooveshark.APIKey == "" {
		cfg.Grooveshark.APIKey, err = prompt(reader, "Enter your application key: ")
		if err != nil {
			return fmt.Errorf("failed to read application key: %w", err)
		}
	}

	if cfg.Grooveshark.APISecret == "" {
		cfg.Grooveshark.APISecret, err = prompt(reader, "Enter your shared secret: ")
		if err != nil {
			return fmt.Errorf("failed to read shared secret: %w", err)
		}
	}

	if cfg.Grooveshark.APIKey == "" || cfg.Grooveshark.APISecret == "" {
		return fmt.Errorf("application key and secret are required")
	}

	login, err := prompt(reader, fmt.Sprintf("Login name (optional) [%s]: ", cfg.Grooveshark.Login))
	if err != nil {
		return fmt.Errorf("failed to read login: %w", err)
	}
	if login != "" {
		cfg.Grooveshark.Login = login
	}

	// Check the key before saving it
	client, err := grooveshark.NewClient(grooveshark.Config{
		APIKey:    cfg.Grooveshark.APIKey,
		APISecret: cfg.Grooveshark.APISecret,
		BaseURL:   cfg.Endpoint,
		Timeout:   cfg.Timeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	fmt.Println("\nChecking credentials...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx); err != nil {
		fmt.Printf("Warning: pingService failed: %v\n", err)
		fmt.Print("Save anyway? [Y/n]: ")
		if !confirm(reader) {
			return fmt.Errorf("configuration not saved")
		}
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("\n✓ Configuration saved to %s/config.yaml\n", config.GetConfigDir())
	return nil
}

// prompt prints label and returns the trimmed answer
func prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Print(label)
	answer, err := reader.ReadString('\n')
	if err != nil && answer == "" {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// confirm reads a yes/no answer, treating empty input as yes
func confirm(reader *bufio.Reader) bool {
	response, err := reader.ReadString('\n')
	if err != nil {
		response = "y"
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "" || response == "y" || response == "yes"
}
