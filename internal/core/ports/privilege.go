package ports

// PrivilegeGate verifies the process runs with elevated privileges.
//
//go:generate mockgen -source=privilege.go -destination=mocks/mock_privilege.go -package=mocks
type PrivilegeGate interface {
	// Check returns domain.ErrNotRoot when the effective user is not root.
	Check() error
}
