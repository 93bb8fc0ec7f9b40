package server_test

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/controller/server"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/mock"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/model"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/repository"
)

func TestHealthEndpoint(t *testing.T) {
	srv := server.New(&mock.UseCaseMock{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)

	gt.V(t, rec.Code).Equal(http.StatusOK)
	gt.V(t, rec.Body.String()).Equal("ok")
}

func TestSubmitScanEndpoint(t *testing.T) {
	t.Run("valid request returns job ID", func(t *testing.T) {
		var captured *model.ScanRequest
		mockUC := &mock.UseCaseMock{
			SubmitScanFunc: func(ctx context.Context, req *model.ScanRequest) (types.ScanJobID, error) {
				captured = req
				return "job-123", nil
			},
		}
		srv := server.New(mockUC, server.WithWorkspace("ws-main"))

		body := []byte(`{"repo_id":"org/repo","repo_name":"repo","branch":"main"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/scans", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusCreated)

		var resp map[string]string
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		gt.V(t, resp["job_id"]).Equal("job-123")

		// Defaults applied before submission.
		gt.V(t, captured.WorkspaceID).Equal(types.WorkspaceID("ws-main"))
		gt.V(t, captured.TriggeredBy).Equal(model.TriggerManual)
		gt.True(t, len(captured.Scanners) > 0)
	})

	t.Run("invalid body returns 400", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/scans", bytes.NewReader([]byte("{broken")))
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("submission error returns 400", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			SubmitScanFunc: func(ctx context.Context, req *model.ScanRequest) (types.ScanJobID, error) {
				return "", goerr.Wrap(types.ErrValidationFailed, "branch is empty")
			},
		}
		srv := server.New(mockUC)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/scans", bytes.NewReader([]byte(`{"repo_id":"org/repo"}`)))
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})
}

func TestGetScanEndpoint(t *testing.T) {
	t.Run("existing job returned as JSON", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			GetJobFunc: func(ctx context.Context, id types.ScanJobID) (*model.ScanJob, error) {
				return &model.ScanJob{
					ID:     id,
					Status: types.ScanJobCompleted,
					Grade:  types.GradeB,
				}, nil
			},
		}
		srv := server.New(mockUC)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/scans/job-42", nil)
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)

		var job model.ScanJob
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
		gt.V(t, job.ID).Equal(types.ScanJobID("job-42"))
		gt.V(t, job.Status).Equal(types.ScanJobCompleted)
	})

	t.Run("unknown job returns 404", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			GetJobFunc: func(ctx context.Context, id types.ScanJobID) (*model.ScanJob, error) {
				return nil, goerr.Wrap(repository.ErrNotFound, "job not found")
			},
		}
		srv := server.New(mockUC)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/scans/missing", nil)
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusNotFound)
	})
}

func signPayload(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func TestWebhookEndpoint(t *testing.T) {
	const secret = "test-secret"

	pushPayload := func(t *testing.T) []byte {
		t.Helper()
		commitID := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
		ref := "refs/heads/main"
		owner := "org"
		name := "repo"
		installID := int64(42)
		ev := &github.PushEvent{
			HeadCommit:   &github.HeadCommit{ID: &commitID},
			Ref:          &ref,
			Repo:         &github.PushEventRepository{Owner: &github.User{Login: &owner}, Name: &name},
			Installation: &github.Installation{ID: &installID},
		}
		raw, err := json.Marshal(ev)
		gt.NoError(t, err)
		return raw
	}

	t.Run("unsigned request is rejected", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{}, server.WithGitHubSecret(secret))

		req := httptest.NewRequest(http.MethodPost, "/webhook/github/app", bytes.NewReader(pushPayload(t)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-GitHub-Event", "push")
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("signed push event enqueues a scan", func(t *testing.T) {
		submitted := make(chan *model.ScanRequest, 1)
		mockUC := &mock.UseCaseMock{
			SubmitScanFunc: func(ctx context.Context, req *model.ScanRequest) (types.ScanJobID, error) {
				submitted <- req
				return "job-1", nil
			},
		}
		srv := server.New(mockUC, server.WithGitHubSecret(secret))

		payload := pushPayload(t)
		req := httptest.NewRequest(http.MethodPost, "/webhook/github/app", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-GitHub-Event", "push")
		req.Header.Set("X-Hub-Signature-256", signPayload(secret, payload))
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusAccepted)

		select {
		case got := <-submitted:
			gt.V(t, got.RepoID).Equal(types.RepoID("org/repo"))
			gt.V(t, got.Branch).Equal(types.BranchName("main"))
			gt.V(t, got.TriggeredBy).Equal(model.TriggerWebhook)
			gt.True(t, got.Supersede)
		case <-time.After(2 * time.Second):
			t.Fatal("scan was not submitted")
		}
	})

	t.Run("signed ping event needs no scan", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{}, server.WithGitHubSecret(secret))

		payload := []byte(`{"zen":"Keep it logically awesome."}`)
		req := httptest.NewRequest(http.MethodPost, "/webhook/github/app", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-GitHub-Event", "ping")
		req.Header.Set("X-Hub-Signature-256", signPayload(secret, payload))
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)
	})
}
