package site

import "github.com/okian/spithack/internal/domain/wizard"

// inputView feeds the "input" partial.
type inputView struct {
	Type  string
	Name  string
	Label string
	Value string
	Error string
}

func input(typ, name, label, value, err string) inputView {
	return inputView{Type: typ, Name: name, Label: label, Value: value, Error: err}
}

// choiceView feeds the "choice" partial.
type choiceView struct {
	Name    string
	Label   string
	Options []wizard.Option
	Value   string
	Error   string
}

func choice(name, label string, opts []wizard.Option, value, err string) choiceView {
	return choiceView{Name: name, Label: label, Options: opts, Value: value, Error: err}
}

// personalView feeds the "personal" partial. Prefix namespaces the input
// names and ErrPrefix the error keys.
type personalView struct {
	Prefix    string
	ErrPrefix string
	Personal  wizard.Personal
	Errors    map[string]string
}

func personal(prefix, errPrefix string, p wizard.Personal, errs map[string]string) personalView {
	return personalView{Prefix: prefix, ErrPrefix: errPrefix, Personal: p, Errors: errs}
}

// Error returns the message for field within the block.
func (p personalView) Error(field string) string {
	return p.Errors[p.ErrPrefix+field]
}
