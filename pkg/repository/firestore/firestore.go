package firestore

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
)

const (
	collectionJob       = "scan_job"
	collectionWorkspace = "workspace"
	collectionVuln      = "vulnerability"
	collectionInstance  = "instance"
)

// New creates Firestore-backed job and vulnerability repositories sharing one
// client.
func New(ctx context.Context, projectID, databaseID string) (*JobRepository, *VulnRepository, error) {
	var client *firestore.Client
	var err error

	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}

	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	return &JobRepository{client: client}, &VulnRepository{client: client}, nil
}

type JobRepository struct {
	client *firestore.Client
}

type VulnRepository struct {
	client *firestore.Client
}

// toDocID converts an identifier to a Firestore-safe document ID. Branch
// names may contain "/" (e.g. "feature/foo") which Firestore treats as a path
// separator; ":" cannot appear in Git refs so the replacement is reversible.
func toDocID(id string) string {
	return strings.ReplaceAll(id, "/", ":")
}
