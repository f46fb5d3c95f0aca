package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"github.com/frisbo/frisbo-go/frisbo"
)

var (
	skuFilter string
	levelFile string
)

// productsCmd represents the products command
var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage products and inventory",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the organization's products",
	RunE:  runProductsList,
}

var productsInventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "List inventory records",
	RunE:  runProductsInventory,
}

var productsSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push stock levels from a JSON file",
	Long: `Push stock levels for a batch of SKUs. The --file argument points to a
JSON array of levels:

  [{"sku": "PROD-001", "quantity": 100}, {"sku": "PROD-002", "quantity": 50}]`,
	RunE: runProductsSync,
}

func init() {
	productsListCmd.Flags().StringVar(&skuFilter, "sku", "", "filter products by SKU")
	productsSyncCmd.Flags().StringVar(&levelFile, "file", "", "JSON file with stock levels (required)")
	productsSyncCmd.MarkFlagRequired("file")

	productsCmd.AddCommand(productsListCmd)
	productsCmd.AddCommand(productsInventoryCmd)
	productsCmd.AddCommand(productsSyncCmd)
	rootCmd.AddCommand(productsCmd)
}

func runProductsList(cmd *cobra.Command, args []string) error {
	orgID, err := resolveOrganization()
	if err != nil {
		return err
	}

	query := url.Values{}
	if skuFilter != "" {
		query.Set("sku", skuFilter)
	}

	count := 0
	for product, err := range client.Products.List(context.Background(), orgID, query) {
		if err != nil {
			return err
		}
		count++
		fmt.Printf("* %s (SKU %s", product.Name, product.SKU)
		if product.EAN != "" {
			fmt.Printf(", EAN %s", product.EAN)
		}
		fmt.Printf(", VAT %d%%)\n", product.VAT)
	}

	fmt.Printf("\n%d products\n", count)
	return nil
}

func runProductsInventory(cmd *cobra.Command, args []string) error {
	orgID, err := resolveOrganization()
	if err != nil {
		return err
	}

	count := 0
	for raw, err := range client.Products.ListInventory(context.Background(), orgID, nil) {
		if err != nil {
			return err
		}
		count++
		fmt.Println(string(raw))
	}

	fmt.Printf("\n%d inventory records\n", count)
	return nil
}

func runProductsSync(cmd *cobra.Command, args []string) error {
	orgID, err := resolveOrganization()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(levelFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", levelFile, err)
	}

	var levels []frisbo.InventoryLevel
	if err := json.Unmarshal(data, &levels); err != nil {
		return fmt.Errorf("failed to parse %s: %w", levelFile, err)
	}
	if len(levels) == 0 {
		return fmt.Errorf("%s contains no stock levels", levelFile)
	}

	logger.Info().Int("organization_id", orgID).Int("levels", len(levels)).Msg("Syncing inventory")

	if _, err := client.Products.SyncInventory(context.Background(), orgID, levels, nil); err != nil {
		return err
	}

	fmt.Printf("Synced %d stock levels.\n", len(levels))
	return nil
}
