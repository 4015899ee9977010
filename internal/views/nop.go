package views

import "mdcrypt/internal/mdcrypt"

// NopRegistry is a ViewRegistry with no views, for headless CLI runs
// where no editor is attached.
type NopRegistry struct{}

// NewNopRegistry creates a NopRegistry.
func NewNopRegistry() *NopRegistry {
	return &NopRegistry{}
}

var _ mdcrypt.ViewRegistry = (*NopRegistry)(nil)

func (*NopRegistry) OpenViews() []mdcrypt.View { return nil }

func (*NopRegistry) Detach(mdcrypt.View) error { return nil }

func (*NopRegistry) OpenFile(string) (mdcrypt.View, error) { return nil, nil }
