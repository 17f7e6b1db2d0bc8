package ports

import "github.com/srazash/linkledger/internal/domain"

// ReportStore persists report artifacts and returns their assigned ID.
type ReportStore interface {
	SaveReport(artifact domain.ReportArtifact) (string, error)
}
