// Package msg holds the user-facing message templates for save failures.
//
// Every formatter here is a pure function from a file path to message text:
// no validation, no I/O, no failure mode. The path appears in the output
// exactly as given, empty strings included. Detecting the underlying
// condition (a sharing violation, a permission error) is the caller's job;
// this package only puts it in words a user can act on.
package msg

import (
	"fmt"
	"strings"
)

// Kind identifies which save-failure template to render.
type Kind int

const (
	// KindLocked is for files held open by another program.
	KindLocked Kind = iota
	// KindPermission is for permission-denied failures.
	KindPermission
	// KindReadOnly is for files marked read-only.
	KindReadOnly
	// KindDiskFull is for out-of-space failures.
	KindDiskFull
	// KindMissingDirectory is for saves into a directory that no longer exists.
	KindMissingDirectory
)

// String returns the name used for a kind on the command line.
func (k Kind) String() string {
	switch k {
	case KindLocked:
		return "locked"
	case KindPermission:
		return "permission"
	case KindReadOnly:
		return "readonly"
	case KindDiskFull:
		return "diskfull"
	case KindMissingDirectory:
		return "missingdir"
	default:
		return "unknown"
	}
}

// Kinds lists every template kind, in declaration order.
func Kinds() []Kind {
	return []Kind{KindLocked, KindPermission, KindReadOnly, KindDiskFull, KindMissingDirectory}
}

// ParseKind maps a command-line name back to its Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if k.String() == strings.ToLower(s) {
			return k, nil
		}
	}
	return KindLocked, fmt.Errorf("unknown message kind %q (valid: locked, permission, readonly, diskfull, missingdir)", s)
}

// FileLocked returns the message shown when a save fails because the file is
// currently open in another program. The path is interpolated verbatim and
// the surrounding template never changes, so the output is deterministic for
// any input, including the empty string.
func FileLocked(path string) string {
	return fmt.Sprintf(`
File Save Error

The file could not be saved because it is currently open in another program.

Please close the file "%s" and try again.
`, path)
}

// PermissionDenied returns the message for a save rejected by file permissions.
func PermissionDenied(path string) string {
	return fmt.Sprintf(`
File Save Error

The file could not be saved because you do not have permission to write to it.

Check the permissions for "%s" and try again.
`, path)
}

// ReadOnly returns the message for a save onto a read-only file.
func ReadOnly(path string) string {
	return fmt.Sprintf(`
File Save Error

The file could not be saved because it is marked read-only.

Remove the read-only attribute from "%s" and try again.
`, path)
}

// DiskFull returns the message for a save that failed for lack of space.
func DiskFull(path string) string {
	return fmt.Sprintf(`
File Save Error

The file could not be saved because there is not enough space on the disk.

Free up some disk space and try saving "%s" again.
`, path)
}

// MissingDirectory returns the message for a save into a folder that no
// longer exists.
func MissingDirectory(path string) string {
	return fmt.Sprintf(`
File Save Error

The file could not be saved because its folder no longer exists.

Choose a new location for "%s" and try again.
`, path)
}

// Format renders the template for the given kind. Unrecognized kinds fall
// back to the locked-file template.
func Format(kind Kind, path string) string {
	switch kind {
	case KindPermission:
		return PermissionDenied(path)
	case KindReadOnly:
		return ReadOnly(path)
	case KindDiskFull:
		return DiskFull(path)
	case KindMissingDirectory:
		return MissingDirectory(path)
	default:
		return FileLocked(path)
	}
}
