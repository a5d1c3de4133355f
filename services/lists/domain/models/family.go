package models

import "fmt"

// Family identifies one of the three parallel list hierarchies. Shopping,
// wish, and inventory lists share identical structure and synchronization
// rules, so a single List/Item implementation is parameterized by Family
// instead of three copied code paths.
type Family string

const (
	FamilyShopping  Family = "shopping"
	FamilyWish      Family = "wish"
	FamilyInventory Family = "inventory"
)

// AggregateListTitle is the reserved title carried by every aggregate list.
// Regular lists may not use it.
const AggregateListTitle = "All Items"

// ParseFamily converts a URL path segment or stored value into a Family.
func ParseFamily(s string) (Family, error) {
	switch Family(s) {
	case FamilyShopping, FamilyWish, FamilyInventory:
		return Family(s), nil
	}
	return "", fmt.Errorf("unknown list family %q", s)
}

// String returns the underlying string value.
func (f Family) String() string {
	return string(f)
}
