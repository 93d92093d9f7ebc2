package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ihp-exam/internal/exam"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the defaults of a variant",
	Long:  "Clears every answer and AI note of a variant and restores the default customer. Asks for confirmation unless --yes is given.",
	RunE:  runReset,
}

var (
	resetVariant string
	resetYes     bool
)

func init() {
	resetCmd.Flags().StringVarP(&resetVariant, "variant", "v", "", "Variant: fagprove or kompetanse (required)")
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Do not ask for confirmation")

	if err := resetCmd.MarkFlagRequired("variant"); err != nil {
		panic(fmt.Sprintf("failed to mark variant flag as required: %v", err))
	}

	rootCmd.AddCommand(resetCmd)
}

// promptConfirmer asks on out and reads a y/N answer from in.
type promptConfirmer struct {
	in  io.Reader
	out io.Writer
}

func (p promptConfirmer) Confirm(prompt string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/N] ", prompt)
	line, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "j", "ja":
		return true, nil
	}
	return false, nil
}

func runReset(cmd *cobra.Command, _ []string) error {
	v, err := lookupVariant(resetVariant)
	if err != nil {
		return err
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	var c exam.Confirmer = promptConfirmer{in: cmd.InOrStdin(), out: cmd.OutOrStdout()}
	if resetYes {
		c = exam.ConfirmFunc(func(string) (bool, error) { return true, nil })
	}

	ok, err := a.session.Reset(cmd.Context(), v, c)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "Avbrutt.")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s er nullstilt.\n", v.ID.Label())
	return nil
}
