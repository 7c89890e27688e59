package privilege

// SetEUID overrides the effective user id lookup. Test hook.
func (g *Gate) SetEUID(fn func() int) {
	g.euid = fn
}
