package xml

import "github.com/beevik/etree"

// Namespace definitions for EWS
const (
	// Types is the EWS types namespace, conventionally prefixed "t"
	Types = "http://schemas.microsoft.com/exchange/services/2006/types"
	// Messages is the EWS messages namespace, conventionally prefixed "m"
	Messages = "http://schemas.microsoft.com/exchange/services/2006/messages"
)

// AddNamespaces adds the standard EWS namespace declarations to the XML document
func AddNamespaces(doc *etree.Document) {
	root := doc.Root()
	if root == nil {
		return
	}
	root.CreateAttr("xmlns:t", Types)
	root.CreateAttr("xmlns:m", Messages)
}

// CreateTypesElement creates an element in the EWS types namespace ("t" prefix).
func CreateTypesElement(name string) *etree.Element {
	elem := etree.NewElement(name)
	elem.Space = "t"
	return elem
}

// AddTextElement appends a "t"-prefixed child with the given text content and
// returns it. Child order on the wire is insertion order, so callers append
// children in the order the schema dictates.
func AddTextElement(parent *etree.Element, name, text string) *etree.Element {
	elem := CreateTypesElement(name)
	elem.SetText(text)
	parent.AddChild(elem)
	return elem
}
