package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonathan/ihp-exam/internal/tui"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Fill in the form interactively",
	Long:  "Opens the three-tab form in the terminal. Every saved field is written to the store immediately.",
	RunE:  runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	e, err := newExporter(a)
	if err != nil {
		return err
	}

	m := tui.New(cmd.Context(), a.session, e)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("form failed: %w", err)
	}
	return nil
}
