package views

import (
	"fmt"
	"sync"

	"mdcrypt/internal/mdcrypt"
)

// MemoryRegistry is an in-memory implementation of the ViewRegistry
// interface. It models the editor's open views for tests and for
// embedding mdcrypt into a host editor. Safe for concurrent use.
type MemoryRegistry struct {
	storage mdcrypt.Storage
	views   []mdcrypt.View
	mu      sync.Mutex
}

// NewMemoryRegistry creates an empty registry. storage is used by
// encrypted-document views to flush pending state during safe teardown.
func NewMemoryRegistry(storage mdcrypt.Storage) *MemoryRegistry {
	return &MemoryRegistry{storage: storage}
}

var _ mdcrypt.ViewRegistry = (*MemoryRegistry)(nil)

// OpenViews enumerates all currently open views.
func (r *MemoryRegistry) OpenViews() []mdcrypt.View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]mdcrypt.View(nil), r.views...)
}

// Detach closes a generic view container directly.
func (r *MemoryRegistry) Detach(v mdcrypt.View) error {
	if !r.remove(v) {
		return fmt.Errorf("view not open: %s", v.FilePath())
	}
	return nil
}

// OpenFile opens a fresh generic view for the file at path.
func (r *MemoryRegistry) OpenFile(path string) (mdcrypt.View, error) {
	v := &GenericView{path: path}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.views = append(r.views, v)
	return v, nil
}

// OpenEncrypted opens a specialized encrypted-document view for the
// file at path.
func (r *MemoryRegistry) OpenEncrypted(path string) *EncryptedDocumentView {
	v := &EncryptedDocumentView{path: path, registry: r}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.views = append(r.views, v)
	return v
}

func (r *MemoryRegistry) remove(v mdcrypt.View) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, open := range r.views {
		if open == v {
			r.views = append(r.views[:i], r.views[i+1:]...)
			return true
		}
	}
	return false
}

// GenericView is a plain view container with no teardown of its own;
// the registry detaches it directly.
type GenericView struct {
	path string
}

var _ mdcrypt.View = (*GenericView)(nil)

// FilePath returns the vault-relative path the view is bound to.
func (v *GenericView) FilePath() string { return v.path }

// EncryptedDocumentView is the specialized view for encrypted
// documents. It may hold pending in-editor state that safe teardown
// persists before the view closes.
type EncryptedDocumentView struct {
	path     string
	registry *MemoryRegistry
	pending  string
	dirty    bool
}

var (
	_ mdcrypt.View         = (*EncryptedDocumentView)(nil)
	_ mdcrypt.SafeDetacher = (*EncryptedDocumentView)(nil)
)

// FilePath returns the vault-relative path the view is bound to.
func (v *EncryptedDocumentView) FilePath() string { return v.path }

// SetPending records unsaved in-editor content that DetachSafely must
// persist before closing.
func (v *EncryptedDocumentView) SetPending(content string) {
	v.pending = content
	v.dirty = true
}

// DetachSafely flushes any pending state to storage, then closes the
// view.
func (v *EncryptedDocumentView) DetachSafely() error {
	if v.dirty {
		if err := v.registry.storage.Modify(&mdcrypt.FileNode{Path: v.path}, v.pending); err != nil {
			return fmt.Errorf("flushing pending state for %s: %w", v.path, err)
		}
		v.dirty = false
	}
	if !v.registry.remove(v) {
		return fmt.Errorf("view not open: %s", v.path)
	}
	return nil
}
