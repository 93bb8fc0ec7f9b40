package server_test

import (
	"testing"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/gt"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/controller/server"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/model"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
)

var testScanners = []types.ScannerType{types.ScannerStatic, types.ScannerSecret}

func TestRefToBranch(t *testing.T) {
	t.Run("strips refs/heads/ prefix", func(t *testing.T) {
		gt.V(t, server.RefToBranchForTest("refs/heads/main")).Equal("main")
	})

	t.Run("handles nested branch names", func(t *testing.T) {
		gt.V(t, server.RefToBranchForTest("refs/heads/feature/my-branch")).Equal("feature/my-branch")
	})

	t.Run("returns original if not refs/heads", func(t *testing.T) {
		gt.V(t, server.RefToBranchForTest("refs/tags/v1.0.0")).Equal("refs/tags/v1.0.0")
	})

	t.Run("handles plain branch name", func(t *testing.T) {
		gt.V(t, server.RefToBranchForTest("main")).Equal("main")
	})
}

func TestGitHubEventToScanRequest(t *testing.T) {
	t.Run("push event without HeadCommit returns nil", func(t *testing.T) {
		event := &github.PushEvent{
			HeadCommit: nil,
		}
		result := server.GithubEventToScanRequestForTest(event, "ws-1", testScanners)
		gt.V(t, result).Equal(nil)
	})

	t.Run("push event with HeadCommit returns request", func(t *testing.T) {
		commitID := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
		ref := "refs/heads/main"
		owner := "org"
		repoName := "repo"
		installID := int64(456)

		event := &github.PushEvent{
			HeadCommit: &github.HeadCommit{
				ID: &commitID,
			},
			Ref: &ref,
			Repo: &github.PushEventRepository{
				Owner: &github.User{
					Login: &owner,
				},
				Name: &repoName,
			},
			Installation: &github.Installation{
				ID: &installID,
			},
		}

		result := server.GithubEventToScanRequestForTest(event, "ws-1", testScanners)
		gt.V(t, result.WorkspaceID).Equal(types.WorkspaceID("ws-1"))
		gt.V(t, result.RepoID).Equal(types.RepoID("org/repo"))
		gt.V(t, result.RepoName).Equal(repoName)
		gt.V(t, result.Branch).Equal(types.BranchName("main"))
		gt.V(t, result.CommitSHA).Equal(types.CommitSHA(commitID))
		gt.V(t, result.InstallID).Equal(types.GitHubAppInstallID(installID))
		gt.V(t, result.TriggeredBy).Equal(model.TriggerWebhook)
		gt.True(t, result.Supersede)
		gt.NoError(t, result.Validate())
	})

	t.Run("pull_request event with action other than opened/synchronize returns nil", func(t *testing.T) {
		action := "closed"
		event := &github.PullRequestEvent{
			Action: &action,
		}
		result := server.GithubEventToScanRequestForTest(event, "ws-1", testScanners)
		gt.V(t, result).Equal(nil)
	})

	t.Run("draft pull_request returns nil", func(t *testing.T) {
		action := "opened"
		draft := true
		event := &github.PullRequestEvent{
			Action: &action,
			PullRequest: &github.PullRequest{
				Draft: &draft,
			},
		}
		result := server.GithubEventToScanRequestForTest(event, "ws-1", testScanners)
		gt.V(t, result).Equal(nil)
	})

	t.Run("valid pull_request event returns request", func(t *testing.T) {
		action := "synchronize"
		draft := false
		sha := "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
		headRef := "feature/scan"
		owner := "org"
		repoName := "repo"
		installID := int64(456)

		event := &github.PullRequestEvent{
			Action: &action,
			PullRequest: &github.PullRequest{
				Draft: &draft,
				Head: &github.PullRequestBranch{
					SHA: &sha,
					Ref: &headRef,
				},
			},
			Repo: &github.Repository{
				Owner: &github.User{
					Login: &owner,
				},
				Name: &repoName,
			},
			Installation: &github.Installation{
				ID: &installID,
			},
		}

		result := server.GithubEventToScanRequestForTest(event, "ws-1", testScanners)
		gt.V(t, result.RepoID).Equal(types.RepoID("org/repo"))
		gt.V(t, result.Branch).Equal(types.BranchName("feature/scan"))
		gt.V(t, result.CommitSHA).Equal(types.CommitSHA(sha))
		gt.True(t, result.Supersede)
	})

	t.Run("installation event is ignored", func(t *testing.T) {
		result := server.GithubEventToScanRequestForTest(&github.InstallationEvent{}, "ws-1", testScanners)
		gt.V(t, result).Equal(nil)
	})
}
