package ports

import "go.trai.ch/pydep/internal/core/domain"

// ReportStore persists provisioning reports across runs.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ReportStore interface {
	// Put records the report, replacing any earlier report for the same
	// interpreter and module.
	Put(report domain.Report) error

	// List returns all recorded reports in a stable order.
	List() []domain.Report
}
