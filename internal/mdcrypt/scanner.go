package mdcrypt

import "fmt"

// Scanner enumerates vault files under a directory subtree. Each call
// re-lists the vault, so results always reflect current state; order
// follows the storage backend's listing order.
type Scanner struct {
	storage Storage
	policy  *ExtensionPolicy
}

// NewScanner creates a Scanner over the given storage using the given
// extension policy.
func NewScanner(storage Storage, policy *ExtensionPolicy) *Scanner {
	return &Scanner{storage: storage, policy: policy}
}

// FilesUnder returns every file whose path lies within the subtree
// rooted at dir. An empty result is valid, not an error.
func (s *Scanner) FilesUnder(dir *DirectoryNode) ([]*FileNode, error) {
	all, err := s.storage.ListFiles()
	if err != nil {
		return nil, fmt.Errorf("listing vault files: %w", err)
	}

	var files []*FileNode
	for _, f := range all {
		if dir.Contains(f) {
			files = append(files, f)
		}
	}
	return files, nil
}

// MarkdownFilesUnder returns the plaintext-eligible files under dir.
func (s *Scanner) MarkdownFilesUnder(dir *DirectoryNode) ([]*FileNode, error) {
	return s.filtered(dir, s.policy.IsPlaintextEligible)
}

// EncryptedFilesUnder returns the ciphertext-eligible files under dir.
func (s *Scanner) EncryptedFilesUnder(dir *DirectoryNode) ([]*FileNode, error) {
	return s.filtered(dir, s.policy.IsCiphertextEligible)
}

func (s *Scanner) filtered(dir *DirectoryNode, keep func(*FileNode) bool) ([]*FileNode, error) {
	all, err := s.FilesUnder(dir)
	if err != nil {
		return nil, err
	}

	var files []*FileNode
	for _, f := range all {
		if keep(f) {
			files = append(files, f)
		}
	}
	return files, nil
}
