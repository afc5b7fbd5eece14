package models

// TextFragment is one positioned run of text as reported by the PDF text
// extraction engine. Coordinates use the PDF convention: the origin is the
// bottom-left corner of the page, so larger Y means higher on the page.
type TextFragment struct {
	Text string
	X    float64
	Y    float64
	Page int
}
