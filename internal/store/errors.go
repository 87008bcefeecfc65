package store

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrTransient         = errors.New("network error")
	ErrConflict          = errors.New("conflict")
	ErrIncidentLocked    = errors.New("incident is locked")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrNotBillable       = errors.New("incident type is not billable")
	ErrInvalidParent     = errors.New("invalid parent asset")
	ErrInvalidAssignment = errors.New("invalid assignment target type")
)

// NotFoundError возвращается при обращении к несуществующей записи.
// errors.Is(err, ErrNotFound) == true.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func notFound(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}
