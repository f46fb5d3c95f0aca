package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// inboundCmd represents the inbound command
var inboundCmd = &cobra.Command{
	Use:   "inbound",
	Short: "Manage inbound inventory requests",
}

var inboundListCmd = &cobra.Command{
	Use:   "list",
	Short: "List inbound requests",
	RunE:  runInboundList,
}

func init() {
	inboundCmd.AddCommand(inboundListCmd)
	inboundCmd.AddCommand(inboundActionCmd("approve", "Approve an inbound request",
		func(ctx context.Context, orgID, requestID int) (json.RawMessage, error) {
			return client.Inbound.Approve(ctx, orgID, requestID)
		}))
	inboundCmd.AddCommand(inboundActionCmd("send-to-wms", "Forward an inbound request to the warehouse",
		func(ctx context.Context, orgID, requestID int) (json.RawMessage, error) {
			return client.Inbound.SendToWms(ctx, orgID, requestID)
		}))
	inboundCmd.AddCommand(inboundActionCmd("complete", "Mark an inbound request's counting as complete",
		func(ctx context.Context, orgID, requestID int) (json.RawMessage, error) {
			return client.Inbound.Complete(ctx, orgID, requestID)
		}))
	inboundCmd.AddCommand(inboundActionCmd("confirm", "Confirm an inbound request's counted quantities",
		func(ctx context.Context, orgID, requestID int) (json.RawMessage, error) {
			return client.Inbound.Confirm(ctx, orgID, requestID)
		}))
	inboundCmd.AddCommand(inboundActionCmd("reprocess", "Re-run a failed inbound request",
		func(ctx context.Context, orgID, requestID int) (json.RawMessage, error) {
			return client.Inbound.Reprocess(ctx, orgID, requestID)
		}))
	rootCmd.AddCommand(inboundCmd)
}

func runInboundList(cmd *cobra.Command, args []string) error {
	orgID, err := resolveOrganization()
	if err != nil {
		return err
	}

	count := 0
	for raw, err := range client.Inbound.List(context.Background(), orgID, nil) {
		if err != nil {
			return err
		}

		var request map[string]any
		if err := json.Unmarshal(raw, &request); err != nil {
			return fmt.Errorf("failed to decode inbound request: %w", err)
		}

		count++
		fmt.Print("*")
		if id, ok := request["inventory_request_id"].(float64); ok {
			fmt.Printf(" #%d", int(id))
		}
		if status, ok := request["status"].(string); ok {
			fmt.Printf(" [%s]", status)
		}
		if warehouse, ok := request["warehouse_id"].(float64); ok {
			fmt.Printf(" warehouse %d", int(warehouse))
		}
		fmt.Println()
	}

	fmt.Printf("\n%d inbound requests\n", count)
	return nil
}

// inboundActionCmd builds one inbound workflow subcommand.
func inboundActionCmd(use, short string, action func(ctx context.Context, orgID, requestID int) (json.RawMessage, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <request-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orgID, err := resolveOrganization()
			if err != nil {
				return err
			}

			requestID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid request ID %q", args[0])
			}

			if _, err := action(context.Background(), orgID, requestID); err != nil {
				return err
			}

			fmt.Printf("Inbound request %d: %s done.\n", requestID, use)
			return nil
		},
	}
}
