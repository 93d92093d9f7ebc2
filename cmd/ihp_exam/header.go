package main

import (
	"fmt"

	"github.com/jonathan/ihp-exam/internal/observability"
	"github.com/spf13/cobra"
)

var headerCmd = &cobra.Command{
	Use:   "header",
	Short: "Set the candidate name and date",
	Long:  "Sets the candidate name and/or exam date shared by both variants. The date must be YYYY-MM-DD or empty.",
	RunE:  runHeader,
}

var (
	headerName string
	headerDate string
)

func init() {
	headerCmd.Flags().StringVar(&headerName, "name", "", "Candidate name")
	headerCmd.Flags().StringVar(&headerDate, "date", "", "Exam date (YYYY-MM-DD)")

	rootCmd.AddCommand(headerCmd)
}

func runHeader(cmd *cobra.Command, _ []string) error {
	if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("date") {
		return fmt.Errorf("nothing to set: use --name and/or --date")
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	h := a.session.Header()
	if cmd.Flags().Changed("name") {
		h.CandidateName = headerName
	}
	if cmd.Flags().Changed("date") {
		h.Date = headerDate
	}
	if err := a.session.SetHeader(cmd.Context(), h); err != nil {
		return err
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintHeader(a.session.Header())
	return nil
}
