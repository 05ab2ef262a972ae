package hivemount

import "errors"

var (
	// ErrHiveNotFound indicates the hive file does not exist on disk.
	ErrHiveNotFound = errors.New("hivemount: hive file not found")

	// ErrMountFailed indicates the hive could not be loaded under the
	// requested alias. Nothing was mounted; no cleanup occurs.
	ErrMountFailed = errors.New("hivemount: mount failed")

	// ErrWriteFailed indicates one of the value writes failed after a
	// successful mount. Writes committed before the failure are preserved
	// and the hive is still unmounted.
	ErrWriteFailed = errors.New("hivemount: write failed")

	// ErrUnmountFailed indicates the hive could not be unloaded. Reported as
	// a warning only; it never overrides the write-phase outcome.
	ErrUnmountFailed = errors.New("hivemount: unmount failed")
)
