package memory

import (
	"sync"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/model"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
)

// NewJobRepository creates a new in-memory job queue/store.
func NewJobRepository() *JobRepository {
	return &JobRepository{
		jobs: make(map[types.ScanJobID]*model.ScanJob),
	}
}

// NewVulnRepository creates a new in-memory vulnerability store.
func NewVulnRepository() *VulnRepository {
	return &VulnRepository{
		workspaces: make(map[types.WorkspaceID]*workspaceData),
	}
}

type JobRepository struct {
	mu   sync.Mutex
	jobs map[types.ScanJobID]*model.ScanJob
}

type workspaceData struct {
	vulns     map[types.Fingerprint]*model.UnifiedVulnerability
	byID      map[types.VulnID]*model.UnifiedVulnerability
	instances map[types.InstanceKey]*model.VulnerabilityInstance
}

type VulnRepository struct {
	mu         sync.Mutex
	workspaces map[types.WorkspaceID]*workspaceData
}
