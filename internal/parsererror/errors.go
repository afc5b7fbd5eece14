// Package parsererror defines the typed errors surfaced by the statement
// parsing pipeline. Callers use errors.As to distinguish the recoverable
// password case from hard failures.
package parsererror

import "fmt"

// PasswordRequiredError signals that the document is encrypted and either no
// password or an incorrect password was supplied. The caller should re-prompt
// and retry with a credential.
type PasswordRequiredError struct {
	FilePath string
}

func (e *PasswordRequiredError) Error() string {
	return fmt.Sprintf("document '%s' is password protected: supply a valid password and retry", e.FilePath)
}

// InvalidFormatError represents an error where the input file does not
// conform to the expected format for a specific parser.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// ParseError represents an error during parsing.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// DataExtractionError represents an error where specific required data could
// not be extracted from a file, even if the file format itself is valid.
type DataExtractionError struct {
	FilePath  string
	FieldName string
	Reason    string
}

func (e *DataExtractionError) Error() string {
	return fmt.Sprintf("data extraction failed in file '%s' for field '%s': %s",
		e.FilePath, e.FieldName, e.Reason)
}
