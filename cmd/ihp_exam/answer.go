package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var answerCmd = &cobra.Command{
	Use:   "answer",
	Short: "Set the answer to one question",
	Long:  "Sets the answer text and/or the AI tool note of one question. Use --file - to read the answer from stdin.",
	RunE:  runAnswer,
}

var (
	answerVariant string
	answerKey     string
	answerText    string
	answerFile    string
	answerAI      string
)

func init() {
	answerCmd.Flags().StringVarP(&answerVariant, "variant", "v", "", "Variant: fagprove or kompetanse (required)")
	answerCmd.Flags().StringVarP(&answerKey, "key", "k", "", "Question key, see 'questions' (required)")
	answerCmd.Flags().StringVar(&answerText, "text", "", "Answer text")
	answerCmd.Flags().StringVarP(&answerFile, "file", "f", "", "Read the answer from a file, or - for stdin")
	answerCmd.Flags().StringVar(&answerAI, "ai", "", "Which AI tool was used for this answer (fagprove only)")

	if err := answerCmd.MarkFlagRequired("variant"); err != nil {
		panic(fmt.Sprintf("failed to mark variant flag as required: %v", err))
	}
	if err := answerCmd.MarkFlagRequired("key"); err != nil {
		panic(fmt.Sprintf("failed to mark key flag as required: %v", err))
	}
	answerCmd.MarkFlagsMutuallyExclusive("text", "file")

	rootCmd.AddCommand(answerCmd)
}

func runAnswer(cmd *cobra.Command, _ []string) error {
	v, err := lookupVariant(answerVariant)
	if err != nil {
		return err
	}

	setText := cmd.Flags().Changed("text") || cmd.Flags().Changed("file")
	setAI := cmd.Flags().Changed("ai")
	if !setText && !setAI {
		return fmt.Errorf("nothing to set: use --text, --file or --ai")
	}
	// Reject bad input before anything is saved.
	if setAI && !v.AIDisclosure {
		return fmt.Errorf("--ai is not available for %s", v.ID)
	}
	if _, ok := v.Question(answerKey); !ok {
		return fmt.Errorf("unknown question key %q for %s", answerKey, v.ID)
	}

	text := answerText
	if cmd.Flags().Changed("file") {
		text, err = readAnswerFile(cmd, answerFile)
		if err != nil {
			return err
		}
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	if setText {
		if err := a.session.SetAnswer(ctx, v, answerKey, text); err != nil {
			return err
		}
	}
	if setAI {
		if err := a.session.SetAIDisclosure(ctx, v, answerKey, answerAI); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Lagret %s/%s\n", v.ID, answerKey)
	return nil
}

func readAnswerFile(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read answer from stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read answer file: %w", err)
	}
	return string(data), nil
}
