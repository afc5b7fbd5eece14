package pdfparser

import (
	"errors"
	"os"

	"github.com/ledongthuc/pdf"

	"rsoni/hisab/internal/logging"
	"rsoni/hisab/internal/models"
	"rsoni/hisab/internal/parsererror"
)

// FragmentSource defines the interface for extracting positioned text
// fragments from a PDF file. It allows dependency injection and makes the
// parser testable without real documents.
type FragmentSource interface {
	// ExtractFragments returns the raw positioned text fragments of each
	// page, in page order. A fragment list per page may be in any order;
	// reading order is reconstructed later.
	ExtractFragments(pdfPath, password string) ([][]models.TextFragment, error)
}

// RealFragmentSource implements FragmentSource using the statically linked
// PDF text extraction engine. One instance serves one load-and-parse call at
// a time; it is not safe for concurrent parses of the same document.
type RealFragmentSource struct{}

// NewRealFragmentSource creates a new RealFragmentSource instance.
func NewRealFragmentSource() *RealFragmentSource {
	return &RealFragmentSource{}
}

// ExtractFragments opens the document, decrypting it with the supplied
// password when needed, and collects every page's text fragments. An
// encrypted document with a missing or wrong password fails with
// parsererror.PasswordRequiredError so the caller can re-prompt and retry.
func (s *RealFragmentSource) ExtractFragments(pdfPath, password string) ([][]models.TextFragment, error) {
	f, err := os.Open(pdfPath)
	if err != nil {
		return nil, &parsererror.ParseError{
			Parser: "PDF",
			Field:  "file",
			Value:  pdfPath,
			Err:    err,
		}
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close PDF file",
				logging.Field{Key: logging.FieldFile, Value: pdfPath})
		}
	}()

	fi, err := f.Stat()
	if err != nil {
		return nil, &parsererror.ParseError{
			Parser: "PDF",
			Field:  "file",
			Value:  pdfPath,
			Err:    err,
		}
	}

	reader, err := pdf.NewReaderEncrypted(f, fi.Size(), passwordFunc(password))
	if err != nil {
		if errors.Is(err, pdf.ErrInvalidPassword) {
			return nil, &parsererror.PasswordRequiredError{FilePath: pdfPath}
		}
		return nil, &parsererror.InvalidFormatError{
			FilePath:       pdfPath,
			ExpectedFormat: "PDF",
			Msg:            "file is not a valid PDF",
		}
	}

	pages := make([][]models.TextFragment, 0, reader.NumPage())
	for pageIndex := 1; pageIndex <= reader.NumPage(); pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			pages = append(pages, nil)
			continue
		}

		content := page.Content()
		fragments := make([]models.TextFragment, 0, len(content.Text))
		for _, text := range content.Text {
			fragments = append(fragments, models.TextFragment{
				Text: text.S,
				X:    text.X,
				Y:    text.Y,
				Page: pageIndex,
			})
		}
		pages = append(pages, fragments)
	}

	return pages, nil
}

// passwordFunc yields the supplied password once. Returning "" afterwards
// stops the reader from prompting forever; the reader then fails with
// ErrInvalidPassword, which we surface as PasswordRequiredError.
func passwordFunc(password string) func() string {
	attempted := false
	return func() string {
		if attempted {
			return ""
		}
		attempted = true
		return password
	}
}

// MockFragmentSource implements FragmentSource for testing purposes.
type MockFragmentSource struct {
	MockPages [][]models.TextFragment
	MockErr   error
}

// NewMockFragmentSource creates a new MockFragmentSource with the given data.
func NewMockFragmentSource(pages [][]models.TextFragment, err error) *MockFragmentSource {
	return &MockFragmentSource{MockPages: pages, MockErr: err}
}

// ExtractFragments returns the predefined pages or error.
func (s *MockFragmentSource) ExtractFragments(pdfPath, password string) ([][]models.TextFragment, error) {
	if s.MockErr != nil {
		return nil, s.MockErr
	}
	return s.MockPages, nil
}
