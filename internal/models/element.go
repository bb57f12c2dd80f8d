package models

import "strings"

// Attr is a single XML attribute. Attribute order is kept as read.
type Attr struct {
	Name  string
	Value string
}

// Element is a mutable, order-preserving XML element as it appears inside an
// MSBuild project file. Only local names are stored; MSBuild documents use a
// single default namespace that the writer drops.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []*Element
	Text     string
}

// NewElement creates an empty element.
func NewElement(name string) *Element {
	return &Element{Name: name}
}

// NewTextElement creates an element with text content, e.g. a property.
func NewTextElement(name, text string) *Element {
	return &Element{Name: name, Text: text}
}

// Attr returns the value of the named attribute or "".
func (e *Element) Attr(name string) string {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// HasAttr reports whether the named attribute is present.
func (e *Element) HasAttr(name string) bool {
	for _, a := range e.Attrs {
		if a.Name == name {
			return true
		}
	}
	return false
}

// SetAttr sets or appends an attribute and returns e for chaining.
func (e *Element) SetAttr(name, value string) *Element {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return e
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
	return e
}

// RemoveAttr deletes the named attribute if present.
func (e *Element) RemoveAttr(name string) {
	kept := e.Attrs[:0]
	for _, a := range e.Attrs {
		if a.Name != name {
			kept = append(kept, a)
		}
	}
	e.Attrs = kept
}

// Condition returns the MSBuild Condition attribute, trimmed.
func (e *Element) Condition() string {
	return strings.TrimSpace(e.Attr("Condition"))
}

// Add appends children and returns e for chaining.
func (e *Element) Add(children ...*Element) *Element {
	e.Children = append(e.Children, children...)
	return e
}

// Child returns the first direct child with the given name.
func (e *Element) Child(name string) *Element {
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildValue returns the trimmed text of the first child with the given name.
func (e *Element) ChildValue(name string) string {
	if c := e.Child(name); c != nil {
		return strings.TrimSpace(c.Text)
	}
	return ""
}

// ChildrenNamed returns all direct children with the given name in order.
func (e *Element) ChildrenNamed(name string) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// RemoveChildren drops every direct child for which match returns true and
// returns how many were removed. Remaining children keep their order.
func (e *Element) RemoveChildren(match func(*Element) bool) int {
	kept := e.Children[:0]
	removed := 0
	for _, c := range e.Children {
		if match(c) {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	for i := len(kept); i < len(e.Children); i++ {
		e.Children[i] = nil
	}
	e.Children = kept
	return removed
}

// Value returns the trimmed text content.
func (e *Element) Value() string {
	return strings.TrimSpace(e.Text)
}

// Clone returns a deep copy.
func (e *Element) Clone() *Element {
	if e == nil {
		return nil
	}
	c := &Element{
		Name:  e.Name,
		Attrs: append([]Attr(nil), e.Attrs...),
		Text:  e.Text,
	}
	for _, child := range e.Children {
		c.Children = append(c.Children, child.Clone())
	}
	return c
}

// Equal reports structural equality, ignoring nothing.
func (e *Element) Equal(other *Element) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.Name != other.Name || e.Text != other.Text || len(e.Attrs) != len(other.Attrs) || len(e.Children) != len(other.Children) {
		return false
	}
	for i := range e.Attrs {
		if e.Attrs[i] != other.Attrs[i] {
			return false
		}
	}
	for i := range e.Children {
		if !e.Children[i].Equal(other.Children[i]) {
			return false
		}
	}
	return true
}
