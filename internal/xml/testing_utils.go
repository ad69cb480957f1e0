package xml

import (
	"regexp"
	"strings"

	"github.com/beevik/etree"
)

// NormalizeXML removes whitespace differences and the XML declaration so
// documents can be compared as strings in tests.
func NormalizeXML(s string) string {
	// First remove the XML declaration
	s = regexp.MustCompile(`<\?xml[^>]*\?>`).ReplaceAllString(s, "")

	// Remove all whitespace between elements
	s = regexp.MustCompile(`>\s+<`).ReplaceAllString(s, "><")

	// Remove all leading and trailing whitespace in text nodes
	s = regexp.MustCompile(`>\s+([^<>\s]+)\s+<`).ReplaceAllString(s, ">$1<")

	// Collapse remaining whitespace runs
	s = regexp.MustCompile(`\s+`).ReplaceAllString(s, " ")
	s = regexp.MustCompile(`\s+/>`).ReplaceAllString(s, "/>")
	s = regexp.MustCompile(`<\s+`).ReplaceAllString(s, "<")
	s = regexp.MustCompile(`\s+>`).ReplaceAllString(s, ">")

	return strings.TrimSpace(s)
}

// ElementString converts an etree.Element to a string for test comparisons.
func ElementString(elem *etree.Element) string {
	doc := etree.NewDocument()
	doc.AddChild(elem.Copy())
	s, _ := doc.WriteToString()

	// Remove XML declaration
	s = regexp.MustCompile(`<\?xml[^>]*\?>`).ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
