package recurrence

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/avld/libewscal/internal/xml"
)

// Recurrence is a fully specified rule: exactly one pattern plus exactly one
// range. The two are independent axes; the wire schema keeps them as sibling
// elements inside the Recurrence container.
type Recurrence struct {
	Pattern Pattern
	Range   Range
}

// New creates a validated recurrence rule.
func New(pattern Pattern, rng Range) (Recurrence, error) {
	rec := Recurrence{Pattern: pattern, Range: rng}
	if err := rec.Validate(); err != nil {
		return Recurrence{}, err
	}
	return rec, nil
}

// Validate checks that both halves are present and valid.
func (r Recurrence) Validate() error {
	if r.Pattern == nil {
		return &DomainError{Field: "Pattern", Value: nil, Allowed: "one of the six recurrence patterns"}
	}
	if r.Range == nil {
		return &DomainError{Field: "Range", Value: nil, Allowed: "one of NoEnd, EndDate, Numbered"}
	}
	if err := r.Pattern.Validate(); err != nil {
		return err
	}
	return r.Range.Validate()
}

// Encode renders the Recurrence container with the pattern element and the
// range element as siblings, pattern first.
func (r Recurrence) Encode() *etree.Element {
	elem := xml.CreateTypesElement("Recurrence")
	elem.AddChild(r.Pattern.Encode())
	elem.AddChild(r.Range.Encode())
	return elem
}

// Document wraps the encoded recurrence in a standalone document with the EWS
// namespace declarations, mostly useful for debugging and tests.
func (r Recurrence) Document() *etree.Document {
	doc := etree.NewDocument()
	doc.AddChild(r.Encode())
	xml.AddNamespaces(doc)
	return doc
}

func (r Recurrence) String() string {
	return fmt.Sprintf("Pattern: %s, Range: %s", r.Pattern, r.Range)
}
