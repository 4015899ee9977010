package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mdcrypt/internal/app"
	"mdcrypt/internal/config"
	"mdcrypt/internal/mdcrypt"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp reads the config and creates a CryptApp. The caller must defer app.Close().
func newApp() (*app.CryptApp, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	a, err := app.NewCryptApp(cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}

	return a, nil
}

// target returns the folder argument, defaulting to the current directory.
func target(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}

var rootCmd = &cobra.Command{
	Use:   "mdcrypt",
	Short: "Batch encrypt and decrypt markdown folders",
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init VAULT_ROOT",
	Short: "Initialize configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg := config.NewConfig(args[0], defaults.BaseDir)

		if err := config.Init(defaults.ConfigPath, cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults.ConfigPath)
		fmt.Printf("Vault root: %s\n", cfg.VaultRoot)
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg, err := config.ReadFromFile(defaults.ConfigPath)
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		fmt.Printf("Configuration from %s:\n\n", defaults.ConfigPath)
		fmt.Printf("Vault root:  %s\n", cfg.VaultRoot)
		fmt.Printf("Log dir:     %s\n", cfg.LogDir)
		fmt.Printf("Cipher:      %s\n", cfg.Cipher.Type)
		fmt.Printf("Cache level: %s\n", cfg.Cache.Level)
		return nil
	},
}

// encrypt command
var encryptCmd = &cobra.Command{
	Use:   "encrypt [FOLDER]",
	Short: "Encrypt all markdown files in a folder",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		_, err = a.EncryptFolder(target(args))
		if errors.Is(err, mdcrypt.ErrPromptCancelled) {
			// Cancellation aborts silently with nothing touched.
			return nil
		}
		return err
	},
}

// decrypt command
var decryptCmd = &cobra.Command{
	Use:   "decrypt [FOLDER]",
	Short: "Decrypt all encrypted files in a folder",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		_, err = a.DecryptFolder(target(args))
		if errors.Is(err, mdcrypt.ErrPromptCancelled) {
			return nil
		}
		return err
	},
}

// status command
var statusCmd = &cobra.Command{
	Use:   "status [FOLDER]",
	Short: "Count eligible files in a folder",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		markdown, encrypted, err := a.FolderStatus(target(args))
		if err != nil {
			return err
		}

		fmt.Printf("%d markdown file(s), %d encrypted file(s)\n", markdown, encrypted)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(decryptCmd)
	rootCmd.AddCommand(statusCmd)
}
