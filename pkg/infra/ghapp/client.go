package ghapp

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/interfaces"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/model"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/utils/logging"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/utils/safe"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches repository source trees through a GitHub App installation.
// The app needs read access to the repositories it scans.
type Client struct {
	appID      types.GitHubAppID
	pem        types.GitHubAppPrivateKey
	httpClient httpDoer
}

var (
	_ interfaces.SourceFetcher   = (*Client)(nil)
	_ interfaces.InstallResolver = (*Client)(nil)
)

type Option func(*Client)

// WithHTTPClient replaces the client used to download pre-signed archive
// URLs. API calls always go through the installation transport.
func WithHTTPClient(c httpDoer) Option {
	return func(x *Client) {
		x.httpClient = c
	}
}

func New(appID types.GitHubAppID, pem types.GitHubAppPrivateKey, options ...Option) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	client := &Client{
		appID:      appID,
		pem:        pem,
		httpClient: http.DefaultClient,
	}
	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

func (x *Client) buildGithubClient(installID types.GitHubAppInstallID) (*github.Client, error) {
	tr := http.DefaultTransport
	itr, err := ghinstallation.New(tr, int64(x.appID), int64(installID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create github client")
	}

	return github.NewClient(&http.Client{Transport: itr}), nil
}

// ResolveCommit resolves the head commit of a branch. A missing branch maps
// to types.ErrBranchNotFound and expired credentials to types.ErrAuthExpired
// so the caller can pick the right failure reason.
func (x *Client) ResolveCommit(ctx context.Context, repo *model.GitHubRepo, branch types.BranchName, installID types.GitHubAppInstallID) (types.CommitSHA, error) {
	client, err := x.buildGithubClient(installID)
	if err != nil {
		return "", err
	}

	br, resp, err := client.Repositories.GetBranch(ctx, repo.Owner, repo.RepoName, branch.String(), false)
	if err != nil {
		return "", wrapGitHubError(err, resp, goerr.V("repo", repo.FullName()), goerr.V("branch", branch))
	}

	sha := br.GetCommit().GetSHA()
	if sha == "" {
		return "", goerr.Wrap(types.ErrInvalidGitHubData, "branch head has no commit",
			goerr.V("repo", repo.FullName()),
			goerr.V("branch", branch),
		)
	}

	return types.CommitSHA(sha), nil
}

// Fetch downloads the repository archive at the requested commit and
// materializes it as a working tree under a fresh temp directory. The caller
// owns the directory and removes it when the job finishes.
func (x *Client) Fetch(ctx context.Context, input *interfaces.FetchInput) (*interfaces.Workspace, error) {
	archiveURL, err := x.getArchiveURL(ctx, input)
	if err != nil {
		return nil, err
	}

	dstDir, err := os.MkdirTemp("", fmt.Sprintf("sentinel.%s.%s.*", input.Repo.Owner, input.Repo.RepoName))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create temp directory for working tree")
	}

	if err := x.downloadAndExtract(ctx, archiveURL, dstDir); err != nil {
		safe.RemoveAll(dstDir)
		return nil, err
	}

	ws, err := measureWorkspace(dstDir)
	if err != nil {
		safe.RemoveAll(dstDir)
		return nil, err
	}

	if ws.FileCount == 0 {
		safe.RemoveAll(dstDir)
		return nil, goerr.Wrap(types.ErrEmptyRepository, "repository archive contains no files",
			goerr.V("repo", input.Repo.FullName()),
			goerr.V("commit", input.Commit),
		)
	}

	logging.From(ctx).Info("fetched working tree",
		slog.String("repo", input.Repo.FullName()),
		slog.Any("commit", input.Commit),
		slog.Int("files", ws.FileCount),
		slog.Int("lines", ws.LineCount),
		slog.Int64("bytes", ws.ByteSize),
	)

	return ws, nil
}

func (x *Client) getArchiveURL(ctx context.Context, input *interfaces.FetchInput) (*url.URL, error) {
	client, err := x.buildGithubClient(input.InstallID)
	if err != nil {
		return nil, err
	}

	opt := &github.RepositoryContentGetOptions{
		Ref: input.Commit.String(),
	}

	// https://docs.github.com/en/rest/repos/contents#get-archive-link
	archiveURL, resp, err := client.Repositories.GetArchiveLink(ctx, input.Repo.Owner, input.Repo.RepoName, github.Zipball, opt, false)
	if err != nil {
		// GitHub answers 404 for an archive of a commit-less repository.
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, goerr.Wrap(types.ErrEmptyRepository, "no archive for repository",
				goerr.V("repo", input.Repo.FullName()),
				goerr.V("commit", input.Commit),
			)
		}
		return nil, wrapGitHubError(err, resp, goerr.V("repo", input.Repo.FullName()), goerr.V("commit", input.Commit))
	}
	if resp.StatusCode != http.StatusFound {
		body, _ := io.ReadAll(resp.Body)
		return nil, goerr.New("failed to get archive link", goerr.V("status", resp.StatusCode), goerr.V("body", string(body)))
	}

	return archiveURL, nil
}

func (x *Client) downloadAndExtract(ctx context.Context, archiveURL *url.URL, dstDir string) error {
	tmpZip, err := os.CreateTemp("", "sentinel_archive.*.zip")
	if err != nil {
		return goerr.Wrap(err, "failed to create temp file for archive")
	}
	defer safe.Remove(tmpZip.Name())

	if err := downloadZipFile(ctx, x.httpClient, archiveURL, tmpZip); err != nil {
		return err
	}
	if err := tmpZip.Close(); err != nil {
		return goerr.Wrap(err, "failed to close temp archive file")
	}

	return extractZipFile(tmpZip.Name(), dstDir)
}

// GetInstallationIDForOwner looks up the app installation for an owner,
// trying the organization endpoint first and falling back to user
// installations on 404.
func (x *Client) GetInstallationIDForOwner(ctx context.Context, owner string) (types.GitHubAppInstallID, error) {
	tr := http.DefaultTransport
	itr, err := ghinstallation.NewAppsTransport(tr, int64(x.appID), []byte(x.pem))
	if err != nil {
		return 0, goerr.Wrap(err, "failed to create app transport")
	}
	client := github.NewClient(&http.Client{Transport: itr})

	installation, resp, orgErr := client.Apps.FindOrganizationInstallation(ctx, owner)
	if orgErr == nil && installation != nil {
		return types.GitHubAppInstallID(installation.GetID()), nil
	}

	if resp != nil && resp.StatusCode == http.StatusNotFound {
		installation, _, userErr := client.Apps.FindUserInstallation(ctx, owner)
		if userErr != nil {
			return 0, goerr.Wrap(userErr, "failed to find installation for owner", goerr.V("owner", owner))
		}
		if installation != nil {
			return types.GitHubAppInstallID(installation.GetID()), nil
		}
	}

	if orgErr != nil {
		return 0, goerr.Wrap(orgErr, "failed to find organization installation", goerr.V("owner", owner))
	}

	return 0, goerr.Wrap(types.ErrInvalidGitHubData, "installation not found for owner", goerr.V("owner", owner))
}

func wrapGitHubError(err error, resp *github.Response, values ...goerr.Option) error {
	if resp != nil {
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return goerr.Wrap(types.ErrAuthExpired, err.Error(), values...)
		case http.StatusNotFound:
			return goerr.Wrap(types.ErrBranchNotFound, err.Error(), values...)
		}
	}
	return goerr.Wrap(err, "github API request failed", values...)
}

func downloadZipFile(ctx context.Context, httpClient httpDoer, zipURL *url.URL, w io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, zipURL.String(), nil)
	if err != nil {
		return goerr.Wrap(err, "failed to create request for archive", goerr.V("url", zipURL))
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to download archive", goerr.V("url", zipURL))
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return goerr.Wrap(types.ErrInvalidGitHubData, "failed to download archive",
			goerr.V("url", zipURL),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)),
		)
	}

	if _, err = io.Copy(w, resp.Body); err != nil {
		return goerr.Wrap(err, "failed to write archive", goerr.V("url", zipURL))
	}

	return nil
}

func extractZipFile(src, dst string) error {
	zipFile, err := zip.OpenReader(src)
	if err != nil {
		return goerr.Wrap(err, "failed to open archive", goerr.V("file", src))
	}
	defer safe.Close(zipFile)

	for _, f := range zipFile.File {
		if err := extractCode(f, dst); err != nil {
			return err
		}
	}

	return nil
}

func extractCode(f *zip.File, dst string) error {
	if f.FileInfo().IsDir() {
		return nil
	}

	target, err := stepDownDirectory(f.Name)
	if err != nil {
		return err
	}
	if target == "" {
		return nil
	}

	fpath := filepath.Join(dst, target)
	if !strings.HasPrefix(fpath, filepath.Clean(dst)+string(os.PathSeparator)) {
		return goerr.Wrap(types.ErrInvalidGitHubData, "illegal file path of zip", goerr.V("path", fpath))
	}

	if err := os.MkdirAll(filepath.Dir(fpath), os.ModePerm); err != nil {
		return goerr.Wrap(err, "failed to create directory", goerr.V("path", fpath))
	}

	// #nosec
	out, err := os.OpenFile(fpath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.Mode())
	if err != nil {
		return goerr.Wrap(err, "failed to open file", goerr.V("fpath", fpath))
	}
	defer safe.Close(out)

	rc, err := f.Open()
	if err != nil {
		return goerr.Wrap(err, "failed to open zip entry")
	}
	defer safe.Close(rc)

	// #nosec
	if _, err := io.Copy(out, rc); err != nil {
		return goerr.Wrap(err, "failed to copy file content")
	}

	return nil
}

// stepDownDirectory strips the single top-level directory GitHub puts into
// repository archives ("owner-repo-sha/...") and rejects traversal entries.
func stepDownDirectory(fpath string) (string, error) {
	if fpath == "" {
		return "", nil
	}

	normalized := strings.ReplaceAll(fpath, "\\", "/")
	normalized = strings.TrimLeft(normalized, "/")
	if normalized == "" {
		return "", nil
	}

	parts := strings.Split(normalized, "/")
	if len(parts) <= 1 {
		return "", nil
	}
	parts = parts[1:]

	var safeParts []string
	for _, part := range parts {
		if part == "" || part == "." {
			continue
		}
		if part == ".." {
			return "", goerr.Wrap(types.ErrInvalidGitHubData, "illegal file path of zip", goerr.V("path", fpath))
		}
		safeParts = append(safeParts, part)
	}

	if len(safeParts) == 0 {
		return "", nil
	}

	return filepath.Join(safeParts...), nil
}

// measureWorkspace walks the extracted tree and collects the size statistics
// recorded on the job.
func measureWorkspace(dir string) (*interfaces.Workspace, error) {
	ws := &interfaces.Workspace{Dir: dir}

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		ws.FileCount++
		ws.ByteSize += info.Size()

		lines, err := countLines(path)
		if err != nil {
			return err
		}
		ws.LineCount += lines

		return nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to measure working tree", goerr.V("dir", dir))
	}

	return ws, nil
}

func countLines(path string) (int, error) {
	fd, err := os.Open(filepath.Clean(path))
	if err != nil {
		return 0, err
	}
	defer safe.Close(fd)

	var lines int
	buf := make([]byte, 64*1024)
	for {
		n, err := fd.Read(buf)
		lines += bytes.Count(buf[:n], []byte{'\n'})
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return 0, err
		}
	}
}
