package main

import (
	"fmt"

	"github.com/jonathan/ihp-exam/internal/catalog"
	"github.com/spf13/cobra"
)

var customerCmd = &cobra.Command{
	Use:   "customer",
	Short: "Set the customer type and name of a variant",
	Long: "Sets the customer type and/or name. Changing the type replaces a blank or default " +
		"name with the new type's default name; a custom name is kept.",
	RunE: runCustomer,
}

var (
	customerVariant string
	customerType    string
	customerName    string
)

func init() {
	customerCmd.Flags().StringVarP(&customerVariant, "variant", "v", "", "Variant: fagprove or kompetanse (required)")
	customerCmd.Flags().StringVarP(&customerType, "type", "t", "", "Customer type tag, e.g. cafe or museum")
	customerCmd.Flags().StringVarP(&customerName, "name", "n", "", "Customer name")

	if err := customerCmd.MarkFlagRequired("variant"); err != nil {
		panic(fmt.Sprintf("failed to mark variant flag as required: %v", err))
	}

	rootCmd.AddCommand(customerCmd)
}

func runCustomer(cmd *cobra.Command, _ []string) error {
	v, err := lookupVariant(customerVariant)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("type") && !cmd.Flags().Changed("name") {
		return fmt.Errorf("nothing to set: use --type and/or --name")
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	// Name first so a type change in the same call sees the new name.
	if cmd.Flags().Changed("name") {
		if err := a.session.SetCustomerName(ctx, v, customerName); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("type") {
		t, ok := catalog.ParseCustomerType(customerType)
		if !ok {
			return fmt.Errorf("unknown customer type %q", customerType)
		}
		if err := a.session.SetCustomerType(ctx, v, t); err != nil {
			return err
		}
	}

	r := a.session.Record(v)
	fmt.Fprintf(cmd.OutOrStdout(), "Kunde: %s (%s)\n", r.CustomerName, r.CustomerType.Label())
	return nil
}
