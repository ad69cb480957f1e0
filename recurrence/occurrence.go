package recurrence

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/avld/libewscal/ewstime"
	"github.com/avld/libewscal/internal/xml"
)

// OccurrenceRole names the slot an edited occurrence occupies in its parent
// item. The role decides the wire tag; the record itself is the same shape in
// every slot.
type OccurrenceRole int

const (
	// RoleModified is a generic modified occurrence in the ModifiedOccurrences list.
	RoleModified OccurrenceRole = iota
	// RoleFirst is the first occurrence of the series.
	RoleFirst
	// RoleLast is the last occurrence of the series.
	RoleLast
)

var occurrenceRoleNames = [...]string{"Occurrence", "FirstOccurrence", "LastOccurrence"}

// ElementName is the wire tag an edit with this role serializes under.
func (r OccurrenceRole) ElementName() string {
	if r < RoleModified || r > RoleLast {
		return occurrenceRoleNames[RoleModified]
	}
	return occurrenceRoleNames[r]
}

// ItemRef is an opaque reference to a calendar item: a server-assigned id plus
// its change key. The zero value means "no reference".
type ItemRef struct {
	ID        string
	ChangeKey string
}

// IsZero reports whether the reference is empty.
func (ref ItemRef) IsZero() bool {
	return ref.ID == "" && ref.ChangeKey == ""
}

// OccurrenceEdit records a single occurrence whose time was moved. All three
// instants are zoned; OriginalStart is the time the occurrence would have had
// absent the edit.
type OccurrenceEdit struct {
	Item          ItemRef
	Start         ewstime.DateTime
	End           ewstime.DateTime
	OriginalStart ewstime.DateTime
}

// Encode renders the edit under the wire tag for the given role. The item
// reference is emitted as an ItemId child when present, then Start, End and
// OriginalStart in schema order.
func (o OccurrenceEdit) Encode(role OccurrenceRole) *etree.Element {
	elem := xml.CreateTypesElement(role.ElementName())
	if !o.Item.IsZero() {
		item := xml.CreateTypesElement("ItemId")
		item.CreateAttr("Id", o.Item.ID)
		if o.Item.ChangeKey != "" {
			item.CreateAttr("ChangeKey", o.Item.ChangeKey)
		}
		elem.AddChild(item)
	}
	xml.AddTextElement(elem, "Start", o.Start.String())
	xml.AddTextElement(elem, "End", o.End.String())
	xml.AddTextElement(elem, "OriginalStart", o.OriginalStart.String())
	return elem
}

func (o OccurrenceEdit) String() string {
	return fmt.Sprintf("Occurrence moved from %s to %s - %s", o.OriginalStart, o.Start, o.End)
}

// OccurrenceDeletion records an occurrence removed from the series, by the
// civil date it originally fell on.
type OccurrenceDeletion struct {
	OriginalStart ewstime.Date
}

// Encode renders the deletion as a DeletedOccurrence element with a single
// Start child.
func (d OccurrenceDeletion) Encode() *etree.Element {
	elem := xml.CreateTypesElement("DeletedOccurrence")
	xml.AddTextElement(elem, "Start", d.OriginalStart.String())
	return elem
}

func (d OccurrenceDeletion) String() string {
	return fmt.Sprintf("Occurrence on %s deleted", d.OriginalStart)
}

// EncodeModifiedOccurrences renders a ModifiedOccurrences container holding
// the given edits as generic Occurrence children, in the order given. Returns
// nil for an empty list; EWS omits empty containers.
func EncodeModifiedOccurrences(edits []OccurrenceEdit) *etree.Element {
	if len(edits) == 0 {
		return nil
	}
	elem := xml.CreateTypesElement("ModifiedOccurrences")
	for _, edit := range edits {
		elem.AddChild(edit.Encode(RoleModified))
	}
	return elem
}

// EncodeDeletedOccurrences renders a DeletedOccurrences container holding the
// given deletions in the order given. Returns nil for an empty list.
func EncodeDeletedOccurrences(deletions []OccurrenceDeletion) *etree.Element {
	if len(deletions) == 0 {
		return nil
	}
	elem := xml.CreateTypesElement("DeletedOccurrences")
	for _, del := range deletions {
		elem.AddChild(del.Encode())
	}
	return elem
}
