package util

import (
	"io"
	"os"
	"os/user"
	"strings"
)

// ExpandHome replaces a leading ~ with the current user's home directory.
func ExpandHome(name string) string {
	if !strings.HasPrefix(name, "~") {
		return name
	}

	u, err := user.Current()
	if err != nil {
		Debugf("Cannot get home dir %#v", err)
		return name
	}

	return strings.Replace(name, "~", u.HomeDir, 1)
}

func FileExists(name string) bool {
	if name == "" {
		return false
	}

	_, err := os.Lstat(ExpandHome(name))
	return err == nil
}

// IsRegularFile reports whether name exists and is a plain file. Symbolic
// links are not followed.
func IsRegularFile(name string) bool {
	info, err := os.Lstat(name)
	if err != nil {
		return false
	}

	return info.Mode().IsRegular()
}

// IsSymlink reports whether name is a symbolic link.
func IsSymlink(name string) bool {
	info, err := os.Lstat(name)
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeSymlink != 0
}

// CopyFile copies src to dst, failing if dst already exists. Permission bits
// and the modification time of src are carried over.
func CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}

	_, err = io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(dst, info.Mode().Perm())
	}
	if err == nil {
		err = os.Chtimes(dst, info.ModTime(), info.ModTime())
	}

	if err != nil {
		os.Remove(dst)
	}

	return err
}
