package domain

// Alignment selects the horizontal placement of a printed line.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
)

// Section is one element of a receipt. The closed set of implementations is
// Header, Line and Footer; the dispatcher type-switches over them.
type Section interface {
	section()
}

// Header is the fixed institutional block at the top of every receipt: the
// logo image followed by the title line, both centered at normal size.
type Header struct {
	LogoPath string
	Title    string
}

// Line is a single line of receipt text. An empty Text prints a blank line.
type Line struct {
	Text    string
	Align   Alignment
	Doubled bool // double height and width
}

// Footer is the cut margin at the bottom of a receipt: two blank lines.
type Footer struct{}

func (Header) section() {}
func (Line) section()   {}
func (Footer) section() {}

// Document is an ordered receipt built fresh for one job and consumed exactly
// once by the dispatcher. Nothing is persisted.
type Document struct {
	Kind     string // "sublimation" or "3d-print"; used for logging
	Sections []Section
}
