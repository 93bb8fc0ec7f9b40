package cli

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/cli/config"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/model"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/infra"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/infra/localfs"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/repository/memory"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/usecase"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/utils/logging"
)

var ptnCommitSHA = regexp.MustCompile(`^[0-9a-f]{40}$`)

func scanCommand() *cli.Command {
	var (
		dir       string
		workspace string
		meta      model.GitHubMetadata

		bigQuery config.BigQuery
		scanners config.Scanner
	)

	return &cli.Command{
		Name:    "scan",
		Aliases: []string{"sc"},
		Usage:   "Scan a local directory once and print the scored result",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "dir",
				Aliases:     []string{"d"},
				Usage:       "Path to directory to scan",
				Value:       ".",
				Destination: &dir,
			},
			&cli.StringFlag{
				Name:        "workspace",
				Usage:       "Workspace the scan is filed under",
				Value:       "local",
				Sources:     cli.EnvVars("SENTINEL_WORKSPACE"),
				Destination: &workspace,
			},
			&cli.StringFlag{
				Name:        "github-owner",
				Usage:       "GitHub repository owner (auto-detect from git if not specified)",
				Sources:     cli.EnvVars("SENTINEL_GITHUB_OWNER"),
				Destination: &meta.Owner,
			},
			&cli.StringFlag{
				Name:        "github-repo",
				Usage:       "GitHub repository name (auto-detect from git if not specified)",
				Sources:     cli.EnvVars("SENTINEL_GITHUB_REPO"),
				Destination: &meta.RepoName,
			},
			&cli.StringFlag{
				Name:        "branch",
				Usage:       "Branch name (auto-detect from git if not specified)",
				Sources:     cli.EnvVars("SENTINEL_BRANCH"),
				Destination: &meta.Branch,
			},
			&cli.StringFlag{
				Name:        "commit",
				Usage:       "Commit SHA (auto-detect from git if not specified)",
				Sources:     cli.EnvVars("SENTINEL_COMMIT"),
				Destination: &meta.CommitID,
			},
		}, bigQuery.Flags(), scanners.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			// Git metadata is best effort: a plain directory without a git
			// checkout still scans, under a synthetic commit identifier.
			if err := AutoDetectGitMetadata(ctx, dir, &meta); err != nil {
				logging.From(ctx).Debug("git metadata not available", slog.Any("error", err))
			}
			fillScanDefaults(dir, &meta)

			return runScan(ctx, dir, types.WorkspaceID(workspace), meta, &bigQuery, &scanners)
		},
	}
}

func fillScanDefaults(dir string, meta *model.GitHubMetadata) {
	if meta.Owner == "" {
		meta.Owner = "local"
	}
	if meta.RepoName == "" {
		if abs, err := filepath.Abs(dir); err == nil {
			meta.RepoName = filepath.Base(abs)
		} else {
			meta.RepoName = filepath.Base(dir)
		}
	}
	if meta.Branch == "" {
		meta.Branch = "main"
	}
}

func runScan(ctx context.Context, dir string, workspace types.WorkspaceID, meta model.GitHubMetadata, bigQuery *config.BigQuery, scanners *config.Scanner) error {
	logging.From(ctx).Info("starting scan",
		slog.String("dir", dir),
		slog.String("owner", meta.Owner),
		slog.String("repo", meta.RepoName),
		slog.String("branch", meta.Branch),
		slog.String("commit", meta.CommitID),
		slog.Any("bigquery", bigQuery),
		slog.Any("scanner", scanners),
	)

	fetcher, err := localfs.New(dir)
	if err != nil {
		return err
	}

	scannerSet, err := scanners.NewScanners()
	if err != nil {
		return err
	}
	scannerTypes, err := scanners.Types()
	if err != nil {
		return err
	}

	infraOptions := []infra.Option{
		infra.WithSourceFetcher(fetcher),
		infra.WithScanners(scannerSet...),
		infra.WithJobRepository(memory.NewJobRepository()),
		infra.WithVulnRepository(memory.NewVulnRepository()),
	}
	if bqClient, err := bigQuery.NewClient(ctx); err != nil {
		return err
	} else if bqClient != nil {
		infraOptions = append(infraOptions, infra.WithBigQuery(bqClient))
	}

	uc := usecase.New(infra.New(infraOptions...), usecase.WithConfig(usecase.Config{
		WorkerCount: 1,
	}))

	req := &model.ScanRequest{
		WorkspaceID: workspace,
		RepoID:      types.NewRepoID(meta.Owner, meta.RepoName),
		RepoName:    meta.RepoName,
		Branch:      types.BranchName(meta.Branch),
		Scanners:    scannerTypes,
		TriggeredBy: model.TriggerCLI,
	}
	if ptnCommitSHA.MatchString(meta.CommitID) {
		req.CommitSHA = types.CommitSHA(meta.CommitID)
	}

	jobID, err := uc.SubmitScan(ctx, req)
	if err != nil {
		return err
	}

	job, err := uc.ProcessOne(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to execute scan job", goerr.V("jobID", jobID))
	}

	printScanSummary(job)

	if job.Status != types.ScanJobCompleted {
		return goerr.New("scan did not complete", goerr.V("status", job.Status), goerr.V("reason", job.Error))
	}
	return nil
}

func printScanSummary(job *model.ScanJob) {
	fmt.Printf("\nRepository: %s (%s @ %s)\n", job.RepoID, job.Branch, job.CommitSHA)
	fmt.Printf("Files: %d  Lines: %d\n\n", job.FileCount, job.LineCount)

	fmt.Printf("  %s %d\n", color.New(color.FgRed, color.Bold).Sprint("Critical:"), job.Counts.Critical)
	fmt.Printf("  %s     %d\n", color.New(color.FgRed).Sprint("High:"), job.Counts.High)
	fmt.Printf("  %s   %d\n", color.New(color.FgYellow).Sprint("Medium:"), job.Counts.Medium)
	fmt.Printf("  %s      %d\n", color.New(color.FgBlue).Sprint("Low:"), job.Counts.Low)
	fmt.Printf("  %s  %d\n\n", color.New(color.FgMagenta).Sprint("Secrets:"), job.Secrets)

	grade := color.New(color.FgGreen, color.Bold)
	switch job.Grade {
	case types.GradeC, types.GradeD:
		grade = color.New(color.FgYellow, color.Bold)
	case types.GradeF:
		grade = color.New(color.FgRed, color.Bold)
	}
	fmt.Printf("Score: %d  Grade: %s\n", job.Score, grade.Sprint(job.Grade))
}
