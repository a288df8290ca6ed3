package publisher

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by a generation run. Match them with errors.Is.
var (
	// ErrStoreUnavailable: the metadata store could not be reached or queried.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrOutputUnavailable: the output directory could not be created or accessed.
	ErrOutputUnavailable = errors.New("output unavailable")
	// ErrEncodingFailed: a page URL could not be turned into a QR symbol.
	ErrEncodingFailed = errors.New("encoding failed")
	// ErrWriteFailed: a generated image could not be persisted.
	ErrWriteFailed = errors.New("write failed")
)

// PageError reports a failure for a single page. Kind is one of
// ErrEncodingFailed or ErrWriteFailed.
type PageError struct {
	PageIndex int64
	Filename  string
	Kind      error
	Err       error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("page %d (%s): %v: %v", e.PageIndex, e.Filename, e.Kind, e.Err)
}

func (e *PageError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// StoreUnavailable wraps err so that errors.Is(err, ErrStoreUnavailable) holds.
func StoreUnavailable(err error) error {
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
