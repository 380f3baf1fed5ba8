package registry

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"

	getter "github.com/hashicorp/go-getter"
	"github.com/pterm/pterm"

	"github.com/redaphid/emo/errors"
	"github.com/redaphid/emo/internal/logger"
)

// Ensure returns the local path of the model artifact under dir, downloading
// it from the hub when absent. An existing file is reused silently.
func Ensure(ctx context.Context, m ModelInfo, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Mark(errors.Wrap(err, "create models dir"), errors.ErrIO)
	}

	dst := filepath.Join(dir, m.Filename())
	if _, err := os.Stat(dst); err == nil {
		logger.Logger.Debugw("model already present", "path", dst)
		return dst, nil
	}

	pterm.Fprintln(os.Stderr, "Downloading "+m.Name+" model ("+m.ID+")...")
	pterm.Fprintln(os.Stderr, "This is a one-time download for AI-powered emoji selection.")

	client := &getter.Client{
		Ctx:              ctx,
		Src:              m.URL,
		Dst:              dst,
		Mode:             getter.ClientModeFile,
		ProgressListener: &progressTracker{},
	}
	if err := client.Get(); err != nil {
		os.Remove(dst)
		return "", errors.Mark(errors.Wrapf(err, "download model %s", m.ID), errors.ErrConfiguration)
	}
	return dst, nil
}

// progressTracker renders a pterm progress bar for one transfer.
type progressTracker struct{}

func (t *progressTracker) TrackProgress(src string, currentSize, totalSize int64, stream io.ReadCloser) io.ReadCloser {
	bar, _ := pterm.DefaultProgressbar.
		WithTotal(int(totalSize)).
		WithTitle(filepath.Base(src)).
		WithShowCount(false).
		WithWriter(os.Stderr).
		Start()
	if currentSize > 0 && bar != nil {
		bar.Add(int(currentSize))
	}
	return &progressReader{bar: bar, inner: stream}
}

type progressReader struct {
	bar   *pterm.ProgressbarPrinter
	inner io.ReadCloser
	once  sync.Once
}

func (r *progressReader) Read(p []byte) (int, error) {
	n, err := r.inner.Read(p)
	if n > 0 && r.bar != nil {
		r.bar.Add(n)
	}
	return n, err
}

func (r *progressReader) Close() error {
	r.once.Do(func() {
		if r.bar != nil {
			r.bar.Stop()
		}
	})
	return r.inner.Close()
}
