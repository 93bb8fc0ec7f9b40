package config

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/repository/firestore"
)

type Firestore struct {
	projectID  string
	databaseID string
}

func (x *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore project ID (optional, in-memory repositories are used when unset)",
			Category:    "Firestore",
			Sources:     cli.EnvVars("SENTINEL_FIRESTORE_PROJECT_ID"),
			Destination: &x.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Category:    "Firestore",
			Sources:     cli.EnvVars("SENTINEL_FIRESTORE_DATABASE_ID"),
			Value:       "(default)",
			Destination: &x.databaseID,
		},
	}
}

func (x *Firestore) Enabled() bool {
	return x.projectID != ""
}

func (x *Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("projectID", x.projectID),
		slog.Any("databaseID", x.databaseID),
	)
}

func (x *Firestore) NewRepositories(ctx context.Context) (*firestore.JobRepository, *firestore.VulnRepository, error) {
	return firestore.New(ctx, x.projectID, x.databaseID)
}
