package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/model"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/repository"
)

func (r *VulnRepository) vulnCollection(ws types.WorkspaceID) *firestore.CollectionRef {
	return r.client.Collection(collectionWorkspace).Doc(toDocID(ws.String())).Collection(collectionVuln)
}

func (r *VulnRepository) instanceCollection(ws types.WorkspaceID) *firestore.CollectionRef {
	return r.client.Collection(collectionWorkspace).Doc(toDocID(ws.String())).Collection(collectionInstance)
}

// UpsertVulnerability runs the conditional write as a Firestore transaction:
// read the fingerprint document, create or merge, write back. Two jobs
// detecting the same issue concurrently serialize on the document.
func (r *VulnRepository) UpsertVulnerability(ctx context.Context, v *model.UnifiedVulnerability) (*model.UnifiedVulnerability, bool, error) {
	if err := v.Validate(); err != nil {
		return nil, false, err
	}

	docRef := r.vulnCollection(v.WorkspaceID).Doc(v.Fingerprint.String())

	var stored *model.UnifiedVulnerability
	var created bool

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(docRef)
		if err != nil && status.Code(err) != codes.NotFound {
			return goerr.Wrap(err, "failed to get vulnerability", goerr.V("fingerprint", v.Fingerprint))
		}

		if err != nil || !snap.Exists() {
			created = true
			stored = v
			return tx.Set(docRef, v)
		}

		var existing model.UnifiedVulnerability
		if err := snap.DataTo(&existing); err != nil {
			return goerr.Wrap(err, "failed to decode vulnerability", goerr.V("fingerprint", v.Fingerprint))
		}

		model.MergeDetection(&existing, v, time.Now())
		created = false
		stored = &existing

		return tx.Set(docRef, &existing)
	})
	if err != nil {
		return nil, false, err
	}

	return stored, created, nil
}

func (r *VulnRepository) GetVulnerability(ctx context.Context, ws types.WorkspaceID, fp types.Fingerprint) (*model.UnifiedVulnerability, error) {
	snap, err := r.vulnCollection(ws).Doc(fp.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "vulnerability not found",
				goerr.V("workspace", ws),
				goerr.V("fingerprint", fp),
			)
		}
		return nil, goerr.Wrap(err, "failed to get vulnerability", goerr.V("fingerprint", fp))
	}

	var v model.UnifiedVulnerability
	if err := snap.DataTo(&v); err != nil {
		return nil, goerr.Wrap(err, "failed to decode vulnerability", goerr.V("fingerprint", fp))
	}

	return &v, nil
}

func (r *VulnRepository) GetVulnerabilitiesByIDs(ctx context.Context, ws types.WorkspaceID, ids []types.VulnID) ([]*model.UnifiedVulnerability, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	idSet := make(map[types.VulnID]bool, len(ids))
	for _, id := range ids {
		idSet[id] = true
	}

	// Firestore "in" queries cap at 30 values; a full collection walk keeps
	// the implementation simple for larger batches.
	iter := r.vulnCollection(ws).Documents(ctx)
	defer iter.Stop()

	var vulns []*model.UnifiedVulnerability
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate vulnerabilities", goerr.V("workspace", ws))
		}

		var v model.UnifiedVulnerability
		if err := snap.DataTo(&v); err != nil {
			return nil, goerr.Wrap(err, "failed to decode vulnerability")
		}
		if idSet[v.ID] {
			vulns = append(vulns, &v)
		}
	}

	return vulns, nil
}

func (r *VulnRepository) ListOpenVulnerabilities(ctx context.Context, ws types.WorkspaceID, repoID types.RepoID, branch types.BranchName) ([]*model.UnifiedVulnerability, error) {
	query := r.vulnCollection(ws).
		Where("RepoID", "==", repoID.String()).
		Where("Branch", "==", branch.String()).
		Where("Status", "==", types.VulnStatusOpen.String())

	iter := query.Documents(ctx)
	defer iter.Stop()

	var vulns []*model.UnifiedVulnerability
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate open vulnerabilities",
				goerr.V("repoID", repoID),
				goerr.V("branch", branch),
			)
		}

		var v model.UnifiedVulnerability
		if err := snap.DataTo(&v); err != nil {
			return nil, goerr.Wrap(err, "failed to decode vulnerability")
		}
		vulns = append(vulns, &v)
	}

	return vulns, nil
}

func (r *VulnRepository) BatchUpdateStatus(ctx context.Context, ws types.WorkspaceID, updates map[types.VulnID]types.VulnStatus) error {
	if len(updates) == 0 {
		return nil
	}

	iter := r.vulnCollection(ws).Documents(ctx)
	defer iter.Stop()

	now := time.Now()
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return goerr.Wrap(err, "failed to iterate vulnerabilities", goerr.V("workspace", ws))
		}

		var v model.UnifiedVulnerability
		if err := snap.DataTo(&v); err != nil {
			return goerr.Wrap(err, "failed to decode vulnerability")
		}

		newStatus, ok := updates[v.ID]
		if !ok {
			continue
		}
		if _, err := snap.Ref.Update(ctx, []firestore.Update{
			{Path: "Status", Value: newStatus.String()},
			{Path: "UpdatedAt", Value: now},
		}); err != nil {
			return goerr.Wrap(err, "failed to update vulnerability status", goerr.V("vulnID", v.ID))
		}
	}

	return nil
}

func (r *VulnRepository) TouchLastSeen(ctx context.Context, ws types.WorkspaceID, ids []types.VulnID, t time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	vulns, err := r.GetVulnerabilitiesByIDs(ctx, ws, ids)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, v := range vulns {
		if !t.After(v.LastSeenAt) {
			continue
		}
		docRef := r.vulnCollection(ws).Doc(v.Fingerprint.String())
		if _, err := docRef.Update(ctx, []firestore.Update{
			{Path: "LastSeenAt", Value: t},
			{Path: "UpdatedAt", Value: now},
		}); err != nil {
			return goerr.Wrap(err, "failed to touch vulnerability", goerr.V("vulnID", v.ID))
		}
	}

	return nil
}

// PutInstance creates the instance document if absent. Create is conditional
// on the document ID, which makes replays no-ops.
func (r *VulnRepository) PutInstance(ctx context.Context, ws types.WorkspaceID, inst *model.VulnerabilityInstance) error {
	if err := inst.Validate(); err != nil {
		return err
	}

	docRef := r.instanceCollection(ws).Doc(inst.Key.String())
	if _, err := docRef.Create(ctx, inst); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil
		}
		return goerr.Wrap(err, "failed to put instance", goerr.V("key", inst.Key))
	}

	return nil
}

func (r *VulnRepository) ListInstancesByJob(ctx context.Context, ws types.WorkspaceID, jobID types.ScanJobID) ([]*model.VulnerabilityInstance, error) {
	query := r.instanceCollection(ws).Where("JobID", "==", jobID.String())

	iter := query.Documents(ctx)
	defer iter.Stop()

	var instances []*model.VulnerabilityInstance
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate instances", goerr.V("jobID", jobID))
		}

		var inst model.VulnerabilityInstance
		if err := snap.DataTo(&inst); err != nil {
			return nil, goerr.Wrap(err, "failed to decode instance")
		}
		instances = append(instances, &inst)
	}

	return instances, nil
}

func (r *VulnRepository) CountInstancesByJob(ctx context.Context, ws types.WorkspaceID, jobID types.ScanJobID) (int, error) {
	instances, err := r.ListInstancesByJob(ctx, ws, jobID)
	if err != nil {
		return 0, err
	}
	return len(instances), nil
}
