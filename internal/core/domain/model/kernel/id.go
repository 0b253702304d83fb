package kernel

import (
	"fmt"

	"clinic/internal/pkg/errs"
)

// ID is a value object that identifies an entity in the clinic domain.
// An ID is either new (the entity has not been persisted yet) or existing
// (the storage layer assigned a positive numeric identifier).
//
// The zero value of ID is a new ID. Existing IDs are always positive and are
// created only through ExistingID, so an ID never carries zero or a negative number.
//
// Example usage:
//
//	// Entity built by a use case, not yet stored
//	p := patient.NewPatient("Maria", "00011122233")
//	p.ID().IsExisting() // false
//
//	// Entity restored from storage
//	id, err := kernel.ExistingID(42)
//	if err != nil {
//	    // handle invalid id
//	}
type ID struct {
	value    int32
	existing bool
}

// NewID returns an ID for an entity that has not been persisted yet.
func NewID() ID {
	return ID{}
}

// ExistingID returns an ID for a persisted entity.
// It fails with a ValueIsInvalidError when value is zero or negative.
//
// Example:
//
//	id, err := kernel.ExistingID(0)
//	errors.Is(err, errs.ErrValueIsInvalid) // true
func ExistingID(value int32) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsInvalidErrorWithCause(
			"id is invalid",
			fmt.Errorf("%d is not greater than 0", value),
		)
	}
	return ID{value: value, existing: true}, nil
}

// IsExisting reports whether the ID belongs to a persisted entity.
func (id ID) IsExisting() bool {
	return id.existing
}

// Value returns the numeric identifier and true for an existing ID,
// or zero and false for a new one.
//
// Example:
//
//	if v, ok := appointment.ID().Value(); ok {
//	    dto.ID = v
//	}
func (id ID) Value() (int32, bool) {
	return id.value, id.existing
}

// Int32Ptr returns the identifier as an optional integer: nil for a new ID.
// Persistence adapters use it to let the database assign primary keys.
func (id ID) Int32Ptr() *int32 {
	if !id.existing {
		return nil
	}
	v := id.value
	return &v
}

// IsEqual compares two IDs. Two new IDs are never equal, since they do not
// identify anything yet.
func (id ID) IsEqual(other ID) bool {
	return id.existing && other.existing && id.value == other.value
}

// String returns the decimal identifier or "new" for an ID that has not been persisted.
func (id ID) String() string {
	if !id.existing {
		return "new"
	}
	return fmt.Sprintf("%d", id.value)
}
