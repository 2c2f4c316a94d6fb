package s3props

import "errors"

var (
	// ErrInvalidArgument is returned by constructors given a missing or blank argument.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrStorageNotFound indicates the bucket or the object key does not exist.
	ErrStorageNotFound = errors.New("storage object not found")
	// ErrStorage wraps any other service or transport failure while fetching.
	ErrStorage = errors.New("storage error")
	// ErrParse indicates the fetched object is not valid properties text.
	ErrParse = errors.New("properties parse error")
	// ErrUnresolvablePlaceholder is returned when no source defines a placeholder.
	ErrUnresolvablePlaceholder = errors.New("unresolvable placeholder")
	// ErrCircularPlaceholder is returned when placeholders reference each other in a loop.
	ErrCircularPlaceholder = errors.New("circular placeholder reference")
)
