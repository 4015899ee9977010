package mdcrypt

// View is an open editor view onto a file. The registry owns view
// lifecycle; the core only inspects the bound path and asks for
// detach/open through the registry or, for views that support it,
// through SafeDetacher.
type View interface {
	// FilePath returns the vault-relative path the view is bound to.
	FilePath() string
}

// SafeDetacher is the capability of the specialized encrypted-document
// view: it tears itself down through its own path, which may persist
// pending in-editor state before closing. Generic views are detached
// directly through the registry instead.
type SafeDetacher interface {
	DetachSafely() error
}

// ViewRegistry is the editor-view collaborator.
type ViewRegistry interface {
	// OpenViews enumerates all currently open views.
	OpenViews() []View

	// Detach closes a generic view container directly.
	Detach(v View) error

	// OpenFile opens a fresh view for the file at path.
	OpenFile(path string) (View, error)
}
