package server

import (
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/interfaces"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/model"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/repository"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/utils/errutil"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	raw, err := json.Marshal(body)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte(`{"error":"internal error"}`))
		return
	}
	safeWrite(w, code, raw)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

type config struct {
	ghSecret  types.GitHubAppSecret
	workspace types.WorkspaceID
	scanners  []types.ScannerType
}

type Option func(*config)

func WithGitHubSecret(secret types.GitHubAppSecret) Option {
	return func(cfg *config) {
		cfg.ghSecret = secret
	}
}

// WithWorkspace sets the workspace webhook-triggered jobs are filed under.
func WithWorkspace(ws types.WorkspaceID) Option {
	return func(cfg *config) {
		cfg.workspace = ws
	}
}

// WithWebhookScanners sets the scanner set enabled for webhook-triggered jobs.
func WithWebhookScanners(scanners []types.ScannerType) Option {
	return func(cfg *config) {
		cfg.scanners = scanners
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{
		workspace: "default",
		scanners: []types.ScannerType{
			types.ScannerStatic,
			types.ScannerDependency,
			types.ScannerSecret,
			types.ScannerIaC,
		},
	}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/scans", func(w http.ResponseWriter, r *http.Request) {
			handleSubmitScan(uc, cfg, w, r)
		})
		r.Get("/scans/{jobID}", func(w http.ResponseWriter, r *http.Request) {
			handleGetScan(uc, w, r)
		})
	})

	r.Route("/webhook", func(r chi.Router) {
		r.Route("/github", func(r chi.Router) {
			r.Post("/app", func(w http.ResponseWriter, r *http.Request) {
				// Signature check and event parsing run synchronously; the
				// submission itself must not hold the webhook response.
				req, err := validateGitHubAppEvent(r, cfg)
				if err != nil {
					errutil.HandleError(r.Context(), "fail to validate GitHub App event", err)
					writeError(w, http.StatusBadRequest, "invalid webhook event")
					return
				}

				if req == nil {
					writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "message": "no scan required"})
					return
				}

				// The request context dies with the response; detach before
				// submitting in the background.
				bgCtx := DetachContext(r.Context())
				go submitWebhookScan(bgCtx, uc, req)

				writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted", "message": "scan enqueued"})
			})
		})
	})

	return &Server{
		mux: r,
	}
}

func handleSubmitScan(uc interfaces.UseCase, cfg *config, w http.ResponseWriter, r *http.Request) {
	var req model.ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.WorkspaceID == "" {
		req.WorkspaceID = cfg.workspace
	}
	if len(req.Scanners) == 0 {
		req.Scanners = cfg.scanners
	}
	if req.TriggeredBy == "" {
		req.TriggeredBy = model.TriggerManual
	}

	jobID, err := uc.SubmitScan(r.Context(), &req)
	if err != nil {
		errutil.HandleError(r.Context(), "fail to submit scan", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"job_id": jobID})
}

func handleGetScan(uc interfaces.UseCase, w http.ResponseWriter, r *http.Request) {
	jobID := types.ScanJobID(chi.URLParam(r, "jobID"))

	job, err := uc.GetJob(r.Context(), jobID)
	if err != nil {
		if repository.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "scan job not found")
			return
		}
		errutil.HandleError(r.Context(), "fail to get scan job", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, job)
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
