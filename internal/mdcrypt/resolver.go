package mdcrypt

import "fmt"

// Resolver produces the single password used for a whole batch. It
// consults the session cache first and falls back to an interactive
// prompt; at the external-file trust level it never prompts at all.
type Resolver struct {
	cache    PasswordCache
	prompter PasswordPrompter
	logger   Logger
}

// NewResolver creates a Resolver.
func NewResolver(cache PasswordCache, prompter PasswordPrompter, logger Logger) *Resolver {
	return &Resolver{cache: cache, prompter: prompter, logger: logger}
}

// Resolve returns one password for a batch over dir. Returns
// ErrPromptCancelled if the user dismisses the prompt; the caller must
// then abort without touching any file.
//
// Resolve does not write to the cache: caching happens per file in the
// transform engine, so a batch where every file fails never pollutes
// the cache with an unused password.
func (r *Resolver) Resolve(dir *DirectoryNode, intent Intent) (PasswordAndHint, error) {
	// The external-file level delegates password management entirely
	// to the password file; prompting would defeat its purpose.
	if r.cache.Level() == LevelExternalFile {
		pwh, err := r.cache.Get(dir.Path)
		if err != nil {
			return PasswordAndHint{}, fmt.Errorf("reading external password file: %w", err)
		}
		return pwh, nil
	}

	cached, err := r.cache.Get(dir.Path)
	if err != nil {
		return PasswordAndHint{}, fmt.Errorf("querying password cache: %w", err)
	}
	if !cached.IsEmpty() {
		r.logger.Debug("reusing cached password", "dir", dir.Path)
		return cached, nil
	}

	// Decryption never asks the user to re-type the same password.
	title := fmt.Sprintf("%s folder: %s", titleVerb(intent), dir.Name())
	pwh, err := r.prompter.PromptPassword(title, intent == Encrypting, intent == Encrypting, cached)
	if err != nil {
		return PasswordAndHint{}, err
	}
	return pwh, nil
}

func titleVerb(intent Intent) string {
	if intent == Encrypting {
		return "Encrypt"
	}
	return "Decrypt"
}
