//go:build !windows

package storage

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// GetDiskSpace returns disk space information for the filesystem holding
// path, or its nearest existing parent.
func GetDiskSpace(path string) (*DiskSpaceInfo, error) {
	path = existingAncestor(path)

	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return nil, fmt.Errorf("statfs %s: %w", path, err)
	}

	blockSize := uint64(stat.Bsize)
	return newDiskSpaceInfo(path, uint64(stat.Blocks)*blockSize, uint64(stat.Bavail)*blockSize), nil
}

// isDiskFullError reports whether err is ENOSPC or a quota overrun.
func isDiskFullError(err error) bool {
	return errors.Is(err, unix.ENOSPC) || errors.Is(err, unix.EDQUOT)
}
