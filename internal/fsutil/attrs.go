package fsutil

import (
	"os"
)

// attrReadOnly is the one attribute bit this repository format round-trips
// across platforms: Windows' FILE_ATTRIBUTE_READONLY, synthesized from the
// owner-write permission bit on non-Windows systems.
const attrReadOnly uint32 = 0x1

// SetAttributes applies mask to path. Per §9's Windows attribute quirk, the
// read-only bit must already be cleared before SetTimes or a file copy can
// touch an existing file; callers restore it last via this function.
func SetAttributes(path string, mask uint32) error {
	mode := os.FileMode(0o666)
	if mask&attrReadOnly != 0 {
		mode = 0o444
	}
	if err := os.Chmod(path, mode); err != nil {
		return ioError("set attributes", path, err)
	}
	return nil
}

// ClearReadOnly clears the read-only bit so that SetTimes and file copies
// can write to an existing path, restoring full owner permissions (0o777
// on non-Windows, matching §9's "Non-Windows restore clears to 0o777").
func ClearReadOnly(path string) error {
	if err := os.Chmod(path, 0o777); err != nil {
		return ioError("clear read-only", path, err)
	}
	return nil
}
