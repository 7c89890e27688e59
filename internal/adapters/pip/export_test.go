package pip

// SetLookPath overrides executable resolution. Test hook.
func (m *Manager) SetLookPath(fn func(string) (string, error)) {
	m.lookPath = fn
}
