package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/spf13/cobra"
)

var (
	filterExpr string
	orderLimit int
	shipAWB    string
)

// ordersCmd represents the orders command
var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Manage orders",
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders matching the filter criteria",
	Long: `List the organization's orders. The --filter flag takes an expression
evaluated against each order document, e.g.:

  frisbo orders list --filter 'status == "Delivered"'
  frisbo orders list --filter 'shipping_customer.email endsWith "@example.com"'`,
	RunE: runOrdersList,
}

var ordersGetCmd = &cobra.Command{
	Use:   "get <order-id>",
	Short: "Show one order",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrdersGet,
}

var ordersCancelCmd = &cobra.Command{
	Use:   "cancel <order-id>",
	Short: "Cancel an order",
	Args:  cobra.ExactArgs(1),
	RunE:  orderActionRunner(func(ctx context.Context, orgID, orderID int) (json.RawMessage, error) {
		return client.Orders.Cancel(ctx, orgID, orderID)
	}, "cancelled"),
}

var ordersReprocessCmd = &cobra.Command{
	Use:   "reprocess <order-id>",
	Short: "Reprocess an order stuck in an error state",
	Args:  cobra.ExactArgs(1),
	RunE:  orderActionRunner(func(ctx context.Context, orgID, orderID int) (json.RawMessage, error) {
		return client.Orders.Reprocess(ctx, orgID, orderID)
	}, "reprocessed"),
}

var ordersShipCmd = &cobra.Command{
	Use:   "ship <order-id>",
	Short: "Mark an order as shipped",
	Args:  cobra.ExactArgs(1),
	RunE:  orderActionRunner(func(ctx context.Context, orgID, orderID int) (json.RawMessage, error) {
		return client.Orders.Ship(ctx, orgID, orderID, shipAWB)
	}, "shipped"),
}

func init() {
	ordersListCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	ordersListCmd.Flags().IntVar(&orderLimit, "limit", 0, "stop after N matching orders (0 = no limit)")
	ordersShipCmd.Flags().StringVar(&shipAWB, "awb", "", "air waybill number")

	ordersCmd.AddCommand(ordersListCmd)
	ordersCmd.AddCommand(ordersGetCmd)
	ordersCmd.AddCommand(ordersCancelCmd)
	ordersCmd.AddCommand(ordersReprocessCmd)
	ordersCmd.AddCommand(ordersShipCmd)
	rootCmd.AddCommand(ordersCmd)
}

func runOrdersList(cmd *cobra.Command, args []string) error {
	orgID, err := resolveOrganization()
	if err != nil {
		return err
	}

	program, err := compileFilter(filterExpr)
	if err != nil {
		return err
	}

	logger.Info().Int("organization_id", orgID).Str("filter", filterExpr).Msg("Listing orders")

	ctx := context.Background()
	matched := 0
	for raw, err := range client.Orders.List(ctx, orgID, nil) {
		if err != nil {
			return err
		}

		var order map[string]any
		if err := json.Unmarshal(raw, &order); err != nil {
			return fmt.Errorf("failed to decode order: %w", err)
		}

		if program != nil {
			output, err := expr.Run(program, order)
			if err != nil {
				return fmt.Errorf("filter failed: %w", err)
			}
			if keep, ok := output.(bool); !ok || !keep {
				continue
			}
		}

		matched++
		printOrder(order)

		if orderLimit > 0 && matched >= orderLimit {
			break
		}
	}

	fmt.Printf("\n%d orders\n", matched)
	return nil
}

func runOrdersGet(cmd *cobra.Command, args []string) error {
	orgID, err := resolveOrganization()
	if err != nil {
		return err
	}

	orderID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid order ID %q", args[0])
	}

	raw, err := client.Orders.Get(context.Background(), orgID, orderID)
	if err != nil {
		return err
	}

	var pretty map[string]any
	if err := json.Unmarshal(raw, &pretty); err != nil {
		return fmt.Errorf("failed to decode order: %w", err)
	}
	out, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// orderActionRunner builds a RunE that resolves the organization, parses the
// order ID argument and triggers one order action.
func orderActionRunner(action func(ctx context.Context, orgID, orderID int) (json.RawMessage, error), past string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		orgID, err := resolveOrganization()
		if err != nil {
			return err
		}

		orderID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid order ID %q", args[0])
		}

		if _, err := action(context.Background(), orgID, orderID); err != nil {
			return err
		}

		fmt.Printf("Order %d %s.\n", orderID, past)
		return nil
	}
}

// compileFilter compiles an expr filter, or returns nil for an empty one.
func compileFilter(expression string) (*vm.Program, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, nil
	}

	program, err := expr.Compile(expression,
		expr.Env(map[string]any{}),
		expr.AllowUndefinedVariables(), // order fields vary by channel
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return program, nil
}

func printOrder(order map[string]any) {
	ref, _ := order["order_reference"].(string)
	status, _ := order["status"].(string)
	if status == "" {
		status, _ = order["fulfillment_status"].(string)
	}

	fmt.Printf("* %s", ref)
	if id, ok := order["order_id"].(float64); ok {
		fmt.Printf(" (id %d)", int(id))
	}
	if status != "" {
		fmt.Printf(" [%s]", status)
	}
	fmt.Println()
}
