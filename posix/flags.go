package posix

import "golang.org/x/sys/unix"

// Open flags, composing access mode, creation and descriptor behavior.
// These mirror the O_* constants of open(2).
const (
	ReadOnly    = unix.O_RDONLY
	WriteOnly   = unix.O_WRONLY
	ReadWrite   = unix.O_RDWR
	NonBlocking = unix.O_NONBLOCK
	Append      = unix.O_APPEND
	Create      = unix.O_CREAT
	Truncate    = unix.O_TRUNC
	Exclusive   = unix.O_EXCL
	NoSymlink   = unix.O_NOFOLLOW
	CloseOnExec = unix.O_CLOEXEC
)

// Permission bits for created files, mirroring the S_I* constants of
// chmod(2).
const (
	UserRead     = unix.S_IRUSR
	UserWrite    = unix.S_IWUSR
	UserExecute  = unix.S_IXUSR
	GroupRead    = unix.S_IRGRP
	GroupWrite   = unix.S_IWGRP
	GroupExecute = unix.S_IXGRP
	OtherRead    = unix.S_IROTH
	OtherWrite   = unix.S_IWOTH
	OtherExecute = unix.S_IXOTH
	SetUserID    = unix.S_ISUID
	SetGroupID   = unix.S_ISGID
	Sticky       = unix.S_ISVTX
)

// Composite permission bits.
const (
	UserReadWrite  = UserRead | UserWrite
	GroupReadWrite = GroupRead | GroupWrite
	OtherReadWrite = OtherRead | OtherWrite

	UserAll  = UserRead | UserWrite | UserExecute
	GroupAll = GroupRead | GroupWrite | GroupExecute
	OtherAll = OtherRead | OtherWrite | OtherExecute
)
