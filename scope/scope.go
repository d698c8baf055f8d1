package scope

import (
	"fmt"
	"strconv"
)

// DefaultNamespace is the namespace used if clients do not provide one.
const DefaultNamespace = "kremling"

// AttrName returns the attribute name for a namespace of run-time scoped CSS,
// e.g. "data-kremling" for namespace "kremling".
// An empty namespace selects DefaultNamespace.
func AttrName(namespace string) string {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return "data-" + namespace
}

// ID is a scope identifier: an attribute name/value pair.
type ID struct {
	Attr  string // attribute name, e.g. "data-kremling"
	Value string // attribute value, e.g. "0"
}

// Counted creates a scope identifier with a counter value.
func Counted(attr string, n int) ID {
	return ID{Attr: attr, Value: strconv.Itoa(n)}
}

// IsZero is true for an unset identifier.
func (id ID) IsZero() bool {
	return id.Attr == ""
}

// Selector renders id as an attribute selector, e.g.
//
//     [data-kremling="0"]
//
func (id ID) Selector() string {
	return fmt.Sprintf("[%s=%q]", id.Attr, id.Value)
}

// Descriptor returns the attributes to put onto a scoped element.
func (id ID) Descriptor() map[string]string {
	if id.IsZero() {
		return map[string]string{}
	}
	return map[string]string{id.Attr: id.Value}
}

func (id ID) String() string {
	return id.Attr + "=" + id.Value
}

// --- Counter ---------------------------------------------------------------

// Counter allocates values for scope identifiers. The zero value is ready
// to use and starts at 0.
type Counter struct {
	next int
}

// Next returns the next unused value.
func (c *Counter) Next() int {
	n := c.next
	c.next++
	return n
}

// Peek returns the value the next call to Next will return.
func (c *Counter) Peek() int {
	return c.next
}

// Reset starts allocation over at 0. This is meant for test isolation only;
// identifiers handed out earlier will be handed out again.
func (c *Counter) Reset() {
	c.next = 0
}
