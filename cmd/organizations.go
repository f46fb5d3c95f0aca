package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/frisbo/frisbo-go/frisbo"
)

// organizationsCmd represents the organizations command
var organizationsCmd = &cobra.Command{
	Use:     "organizations",
	Aliases: []string{"orgs"},
	Short:   "Inspect organizations",
}

var organizationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all organizations the session has access to",
	RunE:  runOrganizationsList,
}

var organizationsOverviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show one organization's warehouses, channels and users",
	RunE:  runOrganizationsOverview,
}

func init() {
	organizationsCmd.AddCommand(organizationsListCmd)
	organizationsCmd.AddCommand(organizationsOverviewCmd)
	rootCmd.AddCommand(organizationsCmd)
}

func runOrganizationsList(cmd *cobra.Command, args []string) error {
	count := 0
	for org, err := range client.Organizations.List(context.Background()) {
		if err != nil {
			return err
		}
		count++
		state := "inactive"
		if org.IsActive {
			state = "active"
		}
		fmt.Printf("* %s (ID %d, %s)\n", org.Name, org.OrganizationID, state)
	}

	fmt.Printf("\n%d organizations\n", count)
	return nil
}

func runOrganizationsOverview(cmd *cobra.Command, args []string) error {
	orgID, err := resolveOrganization()
	if err != nil {
		return err
	}

	org, err := client.Organizations.Get(context.Background(), orgID)
	if err != nil {
		return err
	}

	// The three listings are independent; fetch them concurrently.
	g, ctx := errgroup.WithContext(context.Background())
	var warehouses []frisbo.Warehouse
	var channels []frisbo.Channel
	var users []frisbo.User

	g.Go(func() error {
		var err error
		warehouses, err = client.Organizations.ListWarehouses(ctx, orgID)
		return err
	})
	g.Go(func() error {
		var err error
		channels, err = client.Organizations.ListChannels(ctx, orgID)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = client.Organizations.ListUsers(ctx, orgID)
		return err
	})

	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("%s (ID %d)\n", org.Name, org.OrganizationID)
	if org.Description != "" {
		fmt.Printf("%s\n", org.Description)
	}

	fmt.Printf("\nWarehouses (%d):\n", len(warehouses))
	for _, warehouse := range warehouses {
		fmt.Printf("  * %s (ID %d)\n", warehouse.Name, warehouse.ID)
	}

	fmt.Printf("\nChannels (%d):\n", len(channels))
	for _, channel := range channels {
		fmt.Printf("  * %s", channel.Name)
		if channel.Type != "" {
			fmt.Printf(" [%s]", channel.Type)
		}
		fmt.Printf(" (ID %d)\n", channel.ID)
	}

	fmt.Printf("\nUsers (%d):\n", len(users))
	for _, user := range users {
		fmt.Printf("  * %s <%s>\n", user.Name, user.Email)
	}

	return nil
}
