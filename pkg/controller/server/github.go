package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/interfaces"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/model"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/utils/logging"
)

// validateGitHubAppEvent verifies the webhook signature and converts the event
// into a scan request. A nil request means the event needs no scan.
func validateGitHubAppEvent(r *http.Request, cfg *config) (*model.ScanRequest, error) {
	ctx := r.Context()
	payload, err := github.ValidatePayload(r, []byte(cfg.ghSecret))
	if err != nil {
		return nil, goerr.Wrap(err, "validating payload")
	}

	event, err := github.ParseWebHook(github.WebHookType(r), payload)
	if err != nil {
		return nil, goerr.Wrap(err, "parsing webhook")
	}

	logging.From(ctx).Info("received GitHub App event", slog.String("type", github.WebHookType(r)))

	return githubEventToScanRequest(event, cfg.workspace, cfg.scanners), nil
}

// submitWebhookScan enqueues the scan from a background goroutine, after the
// webhook response is already on its way.
func submitWebhookScan(ctx context.Context, uc interfaces.UseCase, req *model.ScanRequest) {
	logger := logging.From(ctx).With(
		slog.Any("repoID", req.RepoID),
		slog.Any("branch", req.Branch),
		slog.Any("commit", req.CommitSHA),
	)

	jobID, err := uc.SubmitScan(ctx, req)
	if err != nil {
		logger.Error("webhook scan submission failed", slog.Any("error", err))
		return
	}
	logger.Info("webhook scan submitted", slog.Any("jobID", jobID))
}

func refToBranch(v string) string {
	if ref := strings.SplitN(v, "/", 3); len(ref) == 3 && ref[0] == "refs" && ref[1] == "heads" {
		return ref[2]
	}
	return v
}

// githubEventToScanRequest maps a webhook event to a scan request. Push events
// and non-draft pull request updates trigger scans; webhook triggers supersede
// older jobs of the same branch so the queue follows the latest commit.
func githubEventToScanRequest(event interface{}, ws types.WorkspaceID, scanners []types.ScannerType) *model.ScanRequest {
	switch ev := event.(type) {
	case *github.PushEvent:
		if ev.HeadCommit == nil || ev.HeadCommit.ID == nil {
			logging.Default().Warn("ignore push event without head commit")
			return nil
		}

		owner := ev.GetRepo().GetOwner().GetLogin()
		name := ev.GetRepo().GetName()

		return &model.ScanRequest{
			WorkspaceID: ws,
			RepoID:      types.NewRepoID(owner, name),
			RepoName:    name,
			Branch:      types.BranchName(refToBranch(ev.GetRef())),
			CommitSHA:   types.CommitSHA(ev.GetHeadCommit().GetID()),
			Scanners:    scanners,
			InstallID:   types.GitHubAppInstallID(ev.GetInstallation().GetID()),
			TriggeredBy: model.TriggerWebhook,
			Supersede:   true,
		}

	case *github.PullRequestEvent:
		if ev.GetAction() != "opened" && ev.GetAction() != "synchronize" {
			logging.Default().Debug("ignore PR event", slog.String("action", ev.GetAction()))
			return nil
		}
		if ev.GetPullRequest().GetDraft() {
			logging.Default().Debug("ignore draft PR", slog.String("action", ev.GetAction()))
			return nil
		}

		pr := ev.GetPullRequest()
		owner := ev.GetRepo().GetOwner().GetLogin()
		name := ev.GetRepo().GetName()

		return &model.ScanRequest{
			WorkspaceID: ws,
			RepoID:      types.NewRepoID(owner, name),
			RepoName:    name,
			Branch:      types.BranchName(pr.GetHead().GetRef()),
			CommitSHA:   types.CommitSHA(pr.GetHead().GetSHA()),
			Scanners:    scanners,
			InstallID:   types.GitHubAppInstallID(ev.GetInstallation().GetID()),
			TriggeredBy: model.TriggerWebhook,
			Supersede:   true,
		}

	case *github.InstallationEvent, *github.InstallationRepositoriesEvent:
		return nil // ignore

	default:
		logging.Default().Warn("unsupported event", slog.Any("event", fmt.Sprintf("%T", event)))
		return nil
	}
}
