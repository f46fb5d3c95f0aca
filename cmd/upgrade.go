package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

const releaseSlug = "frisbo/frisbo-go"

// upgradeCmd represents the upgrade command
var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade frisbo to the latest release",
	Long:  `Check GitHub for a newer release and replace the running binary with it.`,
	// The upgrade needs no config or API client
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE:              runSelfUpgrade,
}

func init() {
	rootCmd.AddCommand(upgradeCmd)
}

func runSelfUpgrade(cmd *cobra.Command, args []string) error {
	if _, err := semver.ParseTolerant(version); err != nil {
		return fmt.Errorf("cannot upgrade a development build (version %q)", version)
	}

	ctx := context.Background()
	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(releaseSlug))
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s", releaseSlug)
	}

	if latest.LessOrEqual(version) {
		fmt.Printf("frisbo %s is already the latest version.\n", version)
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("could not locate executable: %w", err)
	}

	fmt.Printf("Updating %s -> %s...\n", version, latest.Version())
	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("failed to update: %w", err)
	}

	fmt.Printf("Successfully updated to frisbo %s.\n", latest.Version())
	return nil
}
