//go:build windows

package storage

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"
)

// GetDiskSpace returns disk space information for the volume holding path,
// or its nearest existing parent.
func GetDiskSpace(path string) (*DiskSpaceInfo, error) {
	path = existingAncestor(path)

	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, fmt.Errorf("convert path %s: %w", path, err)
	}

	var freeAvailable, total, totalFree uint64
	if err := windows.GetDiskFreeSpaceEx(pathPtr, &freeAvailable, &total, &totalFree); err != nil {
		return nil, fmt.Errorf("GetDiskFreeSpaceEx %s: %w", path, err)
	}

	return newDiskSpaceInfo(path, total, freeAvailable), nil
}

// isDiskFullError reports whether err is ERROR_DISK_FULL or ERROR_HANDLE_DISK_FULL.
func isDiskFullError(err error) bool {
	return errors.Is(err, windows.ERROR_DISK_FULL) || errors.Is(err, windows.ERROR_HANDLE_DISK_FULL)
}
