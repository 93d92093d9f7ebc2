package main

import (
	"fmt"

	"github.com/jonathan/ihp-exam/internal/observability"
	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the questions of a variant",
	RunE:  runQuestions,
}

var questionsVariant string

func init() {
	questionsCmd.Flags().StringVarP(&questionsVariant, "variant", "v", "", "Variant: fagprove or kompetanse (required)")

	if err := questionsCmd.MarkFlagRequired("variant"); err != nil {
		panic(fmt.Sprintf("failed to mark variant flag as required: %v", err))
	}

	rootCmd.AddCommand(questionsCmd)
}

func runQuestions(cmd *cobra.Command, _ []string) error {
	v, err := lookupVariant(questionsVariant)
	if err != nil {
		return err
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintQuestions(v)
	return nil
}
