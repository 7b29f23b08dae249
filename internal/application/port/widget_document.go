package port

import "github.com/bnema/xiboic/internal/domain/entity"

// WidgetDocument is the subset of the widget's DOM the interaction locks need.
// Implementations operate on a single document and are not safe for
// concurrent mutation.
type WidgetDocument interface {
	// Attribute returns the attribute value and whether it is present.
	// A missing element reports ("", false).
	Attribute(el entity.DocumentElement, name string) (string, bool)

	// SetAttribute sets an attribute, returning entity.ErrElementNotFound
	// when the element does not exist.
	SetAttribute(el entity.DocumentElement, name, value string) error

	// RemoveAttribute deletes an attribute. Missing elements or attributes are ignored.
	RemoveAttribute(el entity.DocumentElement, name string)

	// HasStyle reports whether a style element carrying marker exists.
	HasStyle(marker string) bool

	// AppendStyle adds a <style> element identified by marker to the head.
	AppendStyle(marker, css string) error

	// RemoveStyles removes every style element carrying marker and
	// returns how many were removed. Unmarked styles are never touched.
	RemoveStyles(marker string) int
}
