package testutil

import "mdcrypt/internal/mdcrypt"

// ScriptedPrompter is a PasswordPrompter that returns a fixed result
// and records how it was called.
type ScriptedPrompter struct {
	Result mdcrypt.PasswordAndHint
	Err    error

	Calls       int
	LastTitle   string
	LastConfirm bool
	LastSeed    mdcrypt.PasswordAndHint
}

var _ mdcrypt.PasswordPrompter = (*ScriptedPrompter)(nil)

// NewScriptedPrompter creates a prompter that answers every call with pwh.
func NewScriptedPrompter(pwh mdcrypt.PasswordAndHint) *ScriptedPrompter {
	return &ScriptedPrompter{Result: pwh}
}

// NewCancellingPrompter creates a prompter that cancels every call.
func NewCancellingPrompter() *ScriptedPrompter {
	return &ScriptedPrompter{Err: mdcrypt.ErrPromptCancelled}
}

func (p *ScriptedPrompter) PromptPassword(title string, encrypting bool, confirm bool, seed mdcrypt.PasswordAndHint) (mdcrypt.PasswordAndHint, error) {
	p.Calls++
	p.LastTitle = title
	p.LastConfirm = confirm
	p.LastSeed = seed
	if p.Err != nil {
		return mdcrypt.PasswordAndHint{}, p.Err
	}
	return p.Result, nil
}
