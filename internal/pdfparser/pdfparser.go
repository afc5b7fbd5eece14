// Package pdfparser turns a bank or credit-card statement PDF into a list of
// candidate transactions. The pipeline is loader, row reconstruction, field
// extraction, categorization; pages are processed independently and
// concatenated in page order.
package pdfparser

import (
	"errors"

	"rsoni/hisab/internal/categorizer"
	"rsoni/hisab/internal/extractor"
	"rsoni/hisab/internal/lineutils"
	"rsoni/hisab/internal/logging"
	"rsoni/hisab/internal/models"
	"rsoni/hisab/internal/parsererror"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

var log = logging.GetLogger()

// SetLogger allows setting a configured logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// Parser runs the extraction pipeline over one statement document. One
// Parser serves one parse call at a time.
type Parser struct {
	source       FragmentSource
	categorizer  *categorizer.Categorizer
	rowTolerance float64
}

// NewParser creates a Parser with the real PDF engine.
func NewParser(cat *categorizer.Categorizer, rowTolerance float64) *Parser {
	return NewParserWithSource(NewRealFragmentSource(), cat, rowTolerance)
}

// NewParserWithSource creates a Parser using the provided fragment source.
func NewParserWithSource(source FragmentSource, cat *categorizer.Categorizer, rowTolerance float64) *Parser {
	if rowTolerance <= 0 {
		rowTolerance = lineutils.DefaultRowTolerance
	}
	return &Parser{
		source:       source,
		categorizer:  cat,
		rowTolerance: rowTolerance,
	}
}

// Parse extracts candidate transactions from the given statement document.
// An encrypted document with a missing or wrong password fails with
// parsererror.PasswordRequiredError; the caller re-prompts and retries with
// a credential. The result is a review list, not persisted here.
func (p *Parser) Parse(pdfPath, password string) ([]models.Transaction, error) {
	log.Info("Parsing statement PDF",
		logging.Field{Key: logging.FieldFile, Value: pdfPath})

	pages, err := p.source.ExtractFragments(pdfPath, password)
	if err != nil {
		return nil, err
	}

	var transactions []models.Transaction
	for i, fragments := range pages {
		rows := lineutils.RowTexts(fragments, p.rowTolerance)
		pageTxs := extractor.Extract(rows)

		log.Debug("Extracted page transactions",
			logging.Field{Key: logging.FieldPage, Value: i + 1},
			logging.Field{Key: logging.FieldCount, Value: len(pageTxs)})

		transactions = append(transactions, pageTxs...)
	}

	if p.categorizer != nil {
		transactions = p.categorizer.Apply(transactions)
	}

	log.Info("Statement parsed",
		logging.Field{Key: logging.FieldFile, Value: pdfPath},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})

	return transactions, nil
}

// ValidateFormat checks that the file is a structurally valid PDF before the
// pipeline runs, using the supplied password for encrypted documents. A
// missing or wrong password surfaces as parsererror.PasswordRequiredError so
// the caller can re-prompt; any other failure is an InvalidFormatError and
// aborts before the extraction engine touches the file.
func ValidateFormat(pdfPath, password string) error {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if password != "" {
		conf.UserPW = password
	}

	err := api.ValidateFile(pdfPath, conf)
	if err == nil {
		return nil
	}
	if errors.Is(err, pdfcpu.ErrWrongPassword) || errors.Is(err, pdfcpu.ErrUnknownEncryption) {
		return &parsererror.PasswordRequiredError{FilePath: pdfPath}
	}
	return &parsererror.InvalidFormatError{
		FilePath:       pdfPath,
		ExpectedFormat: "PDF",
		Msg:            err.Error(),
	}
}
