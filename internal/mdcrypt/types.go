package mdcrypt

import (
	"path"
	"strings"
)

// FileNode identifies a stored document by its vault-relative path.
// Paths are slash-separated regardless of platform; the extension is
// always derived from the path suffix, so renaming a file implicitly
// changes its extension.
type FileNode struct {
	Path string
}

// Extension returns the file's extension without the leading dot,
// or "" if the path has none.
func (f *FileNode) Extension() string {
	ext := path.Ext(f.Path)
	return strings.TrimPrefix(ext, ".")
}

// Name returns the final path segment.
func (f *FileNode) Name() string {
	return path.Base(f.Path)
}

// Dir returns the directory component of the path, or "" for a
// top-level file.
func (f *FileNode) Dir() string {
	d := path.Dir(f.Path)
	if d == "." {
		return ""
	}
	return d
}

// DirectoryNode identifies a subtree of the vault by its path prefix.
// The empty path is the vault root.
type DirectoryNode struct {
	Path string
}

// Contains reports whether the file lies within this subtree.
// The root directory contains every file.
func (d *DirectoryNode) Contains(f *FileNode) bool {
	if d.Path == "" {
		return true
	}
	return strings.HasPrefix(f.Path, d.Path+"/")
}

// Name returns the final path segment of the directory, or "/" for
// the vault root. Used for prompt titles.
func (d *DirectoryNode) Name() string {
	if d.Path == "" {
		return "/"
	}
	return path.Base(d.Path)
}

// PasswordAndHint carries the secret for a batch together with the
// user-visible hint stored alongside the ciphertext. An empty Password
// means the password is not yet known and must be prompted for.
type PasswordAndHint struct {
	Password string
	Hint     string
}

// IsEmpty reports whether no password is known yet.
func (p PasswordAndHint) IsEmpty() bool {
	return p.Password == ""
}

// Intent is the direction of a batch operation.
type Intent int

const (
	Encrypting Intent = iota
	Decrypting
)

func (i Intent) String() string {
	if i == Encrypting {
		return "encrypt"
	}
	return "decrypt"
}

// PastVerb returns "encrypted" or "decrypted" for summary messages.
func (i Intent) PastVerb() string {
	if i == Encrypting {
		return "encrypted"
	}
	return "decrypted"
}

// FileKind names the eligible file kind for this intent, for the
// "nothing to do" message.
func (i Intent) FileKind() string {
	if i == Encrypting {
		return "markdown"
	}
	return "encrypted"
}
