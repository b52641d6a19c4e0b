//go:build unix

package filelock

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// errLockBusy reports that another descriptor holds the lock
var errLockBusy = errors.New("lock busy")

// removeWhileLocked is true on unix: unlinking an open file is allowed, and
// doing it before unlock means no waiter can win the lock on the old inode
// and see it still linked.
const removeWhileLocked = true

// tryLockFile attempts a non-blocking exclusive flock (Unix implementation)
func tryLockFile(file *os.File) error {
	err := unix.Flock(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB)
	if errors.Is(err, unix.EWOULDBLOCK) || errors.Is(err, unix.EINTR) {
		return errLockBusy
	}
	return err
}

// unlockFile releases the lock on the file (Unix implementation)
func unlockFile(file *os.File) error {
	return unix.Flock(int(file.Fd()), unix.LOCK_UN)
}
