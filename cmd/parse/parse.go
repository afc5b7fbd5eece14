// Package parse handles the statement parsing command.
package parse

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"rsoni/hisab/cmd/root"
	"rsoni/hisab/internal/logging"
	"rsoni/hisab/internal/parsererror"
	"rsoni/hisab/internal/pdfparser"

	commonio "rsoni/hisab/internal/common"
)

var (
	inputFile  string
	outputFile string
	password   string
)

// Cmd represents the parse command.
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a statement PDF into a review CSV",
	Long: `Parse extracts candidate transactions from a bank or credit-card
statement PDF and writes them to a CSV file for review. Edit or delete rows
in the CSV, then run 'hisab commit' to store the batch.`,
	RunE: parseFunc,
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input statement PDF (required)")
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "review.csv", "Output review CSV file")
	Cmd.Flags().StringVarP(&password, "password", "p", "", "Password for encrypted PDFs")
	_ = Cmd.MarkFlagRequired("input")
}

func parseFunc(cmd *cobra.Command, args []string) error {
	root.Log.Info("Parse command called",
		logging.Field{Key: logging.FieldFile, Value: inputFile})

	if err := pdfparser.ValidateFormat(inputFile, password); err != nil {
		root.Log.WithError(err).Error("PDF pre-flight validation failed")
		return passwordHint(err)
	}

	parser := pdfparser.NewParser(root.NewCategorizer(), root.Cfg.Parser.RowTolerance)

	transactions, err := parser.Parse(inputFile, password)
	if err != nil {
		return passwordHint(err)
	}

	if err := commonio.WriteReviewCSV(transactions, outputFile); err != nil {
		return err
	}

	fmt.Printf("Extracted %d candidate transactions to %s\n", len(transactions), outputFile)
	fmt.Println("Review the file, then run 'hisab commit -i " + outputFile + "' to store the batch.")
	return nil
}

// passwordHint appends a retry hint when the document needs a password.
func passwordHint(err error) error {
	var pwErr *parsererror.PasswordRequiredError
	if errors.As(err, &pwErr) {
		return fmt.Errorf("%w\nRe-run with --password to unlock the document", pwErr)
	}
	return err
}
