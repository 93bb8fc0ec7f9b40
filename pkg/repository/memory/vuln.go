package memory

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/model"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/repository"
)

func (r *VulnRepository) workspace(ws types.WorkspaceID) *workspaceData {
	data, exists := r.workspaces[ws]
	if !exists {
		data = &workspaceData{
			vulns:     make(map[types.Fingerprint]*model.UnifiedVulnerability),
			byID:      make(map[types.VulnID]*model.UnifiedVulnerability),
			instances: make(map[types.InstanceKey]*model.VulnerabilityInstance),
		}
		r.workspaces[ws] = data
	}
	return data
}

// UpsertVulnerability performs the conditional write under the store lock:
// the whole check-and-merge is atomic with respect to concurrent jobs.
func (r *VulnRepository) UpsertVulnerability(ctx context.Context, v *model.UnifiedVulnerability) (*model.UnifiedVulnerability, bool, error) {
	if err := v.Validate(); err != nil {
		return nil, false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	data := r.workspace(v.WorkspaceID)

	existing, exists := data.vulns[v.Fingerprint]
	if !exists {
		stored := copyVuln(v)
		data.vulns[v.Fingerprint] = stored
		data.byID[v.ID] = stored
		return copyVuln(stored), true, nil
	}

	model.MergeDetection(existing, v, time.Now())

	return copyVuln(existing), false, nil
}

func (r *VulnRepository) GetVulnerability(ctx context.Context, ws types.WorkspaceID, fp types.Fingerprint) (*model.UnifiedVulnerability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := r.workspace(ws)
	v, exists := data.vulns[fp]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "vulnerability not found",
			goerr.V("workspace", ws),
			goerr.V("fingerprint", fp),
		)
	}

	return copyVuln(v), nil
}

func (r *VulnRepository) GetVulnerabilitiesByIDs(ctx context.Context, ws types.WorkspaceID, ids []types.VulnID) ([]*model.UnifiedVulnerability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := r.workspace(ws)
	var vulns []*model.UnifiedVulnerability
	for _, id := range ids {
		if v, exists := data.byID[id]; exists {
			vulns = append(vulns, copyVuln(v))
		}
	}

	return vulns, nil
}

func (r *VulnRepository) ListOpenVulnerabilities(ctx context.Context, ws types.WorkspaceID, repoID types.RepoID, branch types.BranchName) ([]*model.UnifiedVulnerability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := r.workspace(ws)
	var vulns []*model.UnifiedVulnerability
	for _, v := range data.vulns {
		if v.RepoID == repoID && v.Branch == branch && v.Status == types.VulnStatusOpen {
			vulns = append(vulns, copyVuln(v))
		}
	}

	return vulns, nil
}

func (r *VulnRepository) BatchUpdateStatus(ctx context.Context, ws types.WorkspaceID, updates map[types.VulnID]types.VulnStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := r.workspace(ws)
	for id, status := range updates {
		if v, exists := data.byID[id]; exists {
			v.Status = status
			v.UpdatedAt = time.Now()
		}
	}

	return nil
}

func (r *VulnRepository) TouchLastSeen(ctx context.Context, ws types.WorkspaceID, ids []types.VulnID, t time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := r.workspace(ws)
	for _, id := range ids {
		if v, exists := data.byID[id]; exists {
			if t.After(v.LastSeenAt) {
				v.LastSeenAt = t
			}
			v.UpdatedAt = time.Now()
		}
	}

	return nil
}

func (r *VulnRepository) PutInstance(ctx context.Context, ws types.WorkspaceID, inst *model.VulnerabilityInstance) error {
	if err := inst.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	data := r.workspace(ws)
	// Idempotent by key: a replayed put keeps the original record.
	if _, exists := data.instances[inst.Key]; exists {
		return nil
	}
	data.instances[inst.Key] = copyInstance(inst)

	return nil
}

func (r *VulnRepository) ListInstancesByJob(ctx context.Context, ws types.WorkspaceID, jobID types.ScanJobID) ([]*model.VulnerabilityInstance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := r.workspace(ws)
	var instances []*model.VulnerabilityInstance
	for _, inst := range data.instances {
		if inst.JobID == jobID {
			instances = append(instances, copyInstance(inst))
		}
	}

	return instances, nil
}

func (r *VulnRepository) CountInstancesByJob(ctx context.Context, ws types.WorkspaceID, jobID types.ScanJobID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := r.workspace(ws)
	var count int
	for _, inst := range data.instances {
		if inst.JobID == jobID {
			count++
		}
	}

	return count, nil
}

func copyVuln(v *model.UnifiedVulnerability) *model.UnifiedVulnerability {
	if v == nil {
		return nil
	}
	cpy := *v
	return &cpy
}

func copyInstance(inst *model.VulnerabilityInstance) *model.VulnerabilityInstance {
	if inst == nil {
		return nil
	}
	cpy := *inst
	if inst.Payload != nil {
		cpy.Payload = make([]byte, len(inst.Payload))
		copy(cpy.Payload, inst.Payload)
	}
	return &cpy
}
