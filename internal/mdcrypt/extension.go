package mdcrypt

import "strings"

// ExtensionPolicy classifies files as plaintext- or ciphertext-eligible
// by extension and computes renamed paths for transforms.
type ExtensionPolicy struct {
	// Plaintext is the plaintext document extension, e.g. "md".
	Plaintext string

	// Encrypted is the set of recognized encrypted-file extensions.
	Encrypted []string

	// DefaultEncrypted is the extension given to newly encrypted
	// files. It must be a member of Encrypted.
	DefaultEncrypted string
}

// DefaultExtensionPolicy returns the standard markdown/mdenc policy.
func DefaultExtensionPolicy() *ExtensionPolicy {
	return &ExtensionPolicy{
		Plaintext:        "md",
		Encrypted:        []string{"mdenc", "encrypted"},
		DefaultEncrypted: "mdenc",
	}
}

// IsPlaintextEligible reports whether the file is a plaintext document
// eligible for encryption.
func (p *ExtensionPolicy) IsPlaintextEligible(f *FileNode) bool {
	return f.Extension() == p.Plaintext
}

// IsCiphertextEligible reports whether the file carries a recognized
// encrypted-file extension.
func (p *ExtensionPolicy) IsCiphertextEligible(f *FileNode) bool {
	ext := f.Extension()
	for _, e := range p.Encrypted {
		if ext == e {
			return true
		}
	}
	return false
}

// RenamedPath replaces the final extension segment of the file's path,
// preserving the directory and base name. It has no side effects and
// is not cumulative: renaming a renamed path replaces the extension
// again rather than stacking.
func (p *ExtensionPolicy) RenamedPath(f *FileNode, newExtension string) string {
	base := f.Path
	if ext := f.Extension(); ext != "" {
		base = strings.TrimSuffix(base, "."+ext)
	}
	return base + "." + newExtension
}
