package mdcrypt

import "fmt"

// Coordinator tears down editor views before a file is mutated and
// restores them against the file's new path afterwards.
type Coordinator struct {
	registry ViewRegistry
	logger   Logger
}

// NewCoordinator creates a Coordinator over the given view registry.
func NewCoordinator(registry ViewRegistry, logger Logger) *Coordinator {
	return &Coordinator{registry: registry, logger: logger}
}

// DetachIfOpen detaches every open view bound to file and reports
// whether any detach occurred. Specialized encrypted-document views are
// asked to detach through their own safe-teardown path, which may
// persist pending in-editor state first; generic views are detached
// directly through the registry.
func (c *Coordinator) DetachIfOpen(file *FileNode) (bool, error) {
	detached := false
	for _, v := range c.registry.OpenViews() {
		if v.FilePath() != file.Path {
			continue
		}

		var err error
		if sd, ok := v.(SafeDetacher); ok {
			err = sd.DetachSafely()
		} else {
			err = c.registry.Detach(v)
		}
		if err != nil {
			return detached, fmt.Errorf("detaching view on %s: %w", file.Path, err)
		}

		c.logger.Debug("view detached", "path", file.Path)
		detached = true
	}
	return detached, nil
}

// ReopenAfterDetach opens a fresh view for newPath. Only called when
// DetachIfOpen returned true for the corresponding file, and always
// called in that case even if the transform itself failed: a detached
// view must never be left permanently closed because of an unrelated
// transform error.
func (c *Coordinator) ReopenAfterDetach(newPath string) error {
	if _, err := c.registry.OpenFile(newPath); err != nil {
		return fmt.Errorf("reopening view on %s: %w", newPath, err)
	}
	c.logger.Debug("view reopened", "path", newPath)
	return nil
}
