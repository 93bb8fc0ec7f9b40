package localfs

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/interfaces"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/model"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/utils/logging"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/utils/safe"
)

// Fetcher materializes a working tree from a local directory. It copies the
// tree into a fresh temp directory so the pipeline can remove its workspace
// without touching the source. Used by the one-shot CLI scan.
type Fetcher struct {
	srcDir string
}

var _ interfaces.SourceFetcher = (*Fetcher)(nil)

func New(srcDir string) (*Fetcher, error) {
	info, err := os.Stat(srcDir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to stat source directory", goerr.V("dir", srcDir))
	}
	if !info.IsDir() {
		return nil, goerr.Wrap(types.ErrInvalidOption, "source path is not a directory", goerr.V("dir", srcDir))
	}

	return &Fetcher{srcDir: srcDir}, nil
}

// ResolveCommit always fails: a plain directory has no commit to resolve.
// Callers fall back to a synthetic commit identifier.
func (x *Fetcher) ResolveCommit(ctx context.Context, repo *model.GitHubRepo, branch types.BranchName, installID types.GitHubAppInstallID) (types.CommitSHA, error) {
	return "", goerr.New("local directory has no resolvable commit", goerr.V("dir", x.srcDir))
}

func (x *Fetcher) Fetch(ctx context.Context, input *interfaces.FetchInput) (*interfaces.Workspace, error) {
	dstDir, err := os.MkdirTemp("", "sentinel.local.*")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create temp directory for working tree")
	}

	ws := &interfaces.Workspace{Dir: dstDir}
	if err := copyTree(x.srcDir, dstDir, ws); err != nil {
		safe.RemoveAll(dstDir)
		return nil, err
	}

	if ws.FileCount == 0 {
		safe.RemoveAll(dstDir)
		return nil, goerr.Wrap(types.ErrEmptyRepository, "source directory contains no files",
			goerr.V("dir", x.srcDir),
		)
	}

	logging.From(ctx).Info("copied local working tree",
		slog.String("src", x.srcDir),
		slog.Int("files", ws.FileCount),
		slog.Int("lines", ws.LineCount),
		slog.Int64("bytes", ws.ByteSize),
	)

	return ws, nil
}

// copyTree copies src into dst, skipping the .git directory, and accumulates
// the workspace statistics while copying.
func copyTree(src, dst string, ws *interfaces.Workspace) error {
	err := filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return os.MkdirAll(filepath.Join(dst, rel), os.ModePerm)
		}
		if !d.Type().IsRegular() {
			return nil
		}

		lines, size, err := copyFile(path, filepath.Join(dst, rel))
		if err != nil {
			return err
		}
		ws.FileCount++
		ws.LineCount += lines
		ws.ByteSize += size

		return nil
	})
	if err != nil {
		return goerr.Wrap(err, "failed to copy source tree", goerr.V("src", src))
	}

	return nil
}

func copyFile(src, dst string) (lines int, size int64, err error) {
	in, err := os.Open(filepath.Clean(src))
	if err != nil {
		return 0, 0, err
	}
	defer safe.Close(in)

	if err := os.MkdirAll(filepath.Dir(dst), os.ModePerm); err != nil {
		return 0, 0, err
	}

	out, err := os.OpenFile(filepath.Clean(dst), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return 0, 0, err
	}
	defer safe.Close(out)

	buf := make([]byte, 64*1024)
	for {
		n, rerr := in.Read(buf)
		if n > 0 {
			lines += bytes.Count(buf[:n], []byte{'\n'})
			size += int64(n)
			if _, werr := out.Write(buf[:n]); werr != nil {
				return 0, 0, werr
			}
		}
		if rerr == io.EOF {
			return lines, size, nil
		}
		if rerr != nil {
			return 0, 0, rerr
		}
	}
}
