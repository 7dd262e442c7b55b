package domain

// Sink is the receipt printer as the dispatcher sees it. Open establishes the
// physical connection and Close releases it; the remaining primitives emit
// one receipt element each. No call is valid before Open. Failures indicate a
// hardware or connectivity fault and are not retried.
type Sink interface {
	Open() error
	Close() error
	SetStyle(align Alignment, doubled bool) error
	Text(s string) error
	Image(path string) error
	Cut() error
}

// Dispatcher prints one finished document per call. Dispatch blocks until
// the receipt is out of the printer or the job has failed.
type Dispatcher interface {
	Dispatch(doc Document) error
}

// Option is one selectable menu entry: the label shown to the operator and
// the key reported when it is chosen.
type Option struct {
	Label string
	Key   string
}

// Operator is the interactive front-end the workflow drives: a menu, free
// text prompts, and an error notice. Implementations block until the operator
// responds; an error means the operator is gone and the session should end.
type Operator interface {
	SelectOption(title, prompt string, options []Option) (string, error)
	PromptText(title, prompt string) (string, error)
	Notify(title, message string) error
}
