package main

import (
	"github.com/jonathan/ihp-exam/internal/catalog"
	"github.com/jonathan/ihp-exam/internal/observability"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the header and answers",
	Long:  "Prints the candidate header and a summary of the answers of one variant, or of both when --variant is omitted.",
	RunE:  runShow,
}

var showVariant string

func init() {
	showCmd.Flags().StringVarP(&showVariant, "variant", "v", "", "Variant: fagprove or kompetanse")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, _ []string) error {
	variants := catalog.Variants()
	if showVariant != "" {
		v, err := lookupVariant(showVariant)
		if err != nil {
			return err
		}
		variants = []*catalog.Variant{v}
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	p := observability.NewPrinter(cmd.OutOrStdout())
	p.PrintHeader(a.session.Header())
	for _, v := range variants {
		p.PrintRecord(v, a.session.Record(v))
	}
	return nil
}
