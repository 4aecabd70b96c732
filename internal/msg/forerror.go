package msg

import (
	"errors"
	"os"
	"syscall"
)

// ForError picks the template matching an error returned by a failed save.
// The error has already happened in the caller; this only chooses which
// words to say about it. Unrecognized errors fall back to the locked-file
// message, since a file held open elsewhere is the usual reason a save
// fails without a clearer cause.
func ForError(path string, err error) string {
	return Format(KindForError(err), path)
}

// KindForError is ForError's template selection without the rendering, for
// callers that want to log or report the classification itself.
func KindForError(err error) Kind {
	switch {
	case errors.Is(err, os.ErrPermission):
		return KindPermission
	case errors.Is(err, syscall.EROFS):
		return KindReadOnly
	case errors.Is(err, syscall.ENOSPC):
		return KindDiskFull
	case errors.Is(err, os.ErrNotExist):
		return KindMissingDirectory
	default:
		return KindLocked
	}
}
