package mdcrypt

// Storage provides an interface for the note vault's file operations.
// It abstracts file access to enable testing without touching the real
// filesystem.
//
// Rename and Modify are separate operations with no transaction around
// them. The transform engine performs them back-to-back; a failure
// between the two leaves a renamed-but-stale file, which is surfaced to
// the caller rather than rolled back (see Engine.TransformOne).
type Storage interface {
	// ListFiles enumerates every file in the vault. Each call
	// re-derives the listing; there is no cursor state. Order is the
	// backend's natural listing order and need not be stable across
	// calls.
	ListFiles() ([]*FileNode, error)

	// Read returns the full content of a file as text.
	Read(file *FileNode) (string, error)

	// Modify overwrites the content of an existing file.
	Modify(file *FileNode, content string) error

	// Rename moves a file to a new vault-relative path.
	Rename(file *FileNode, newPath string) error
}
