package hub

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// DownloadFile fetches fileName from the repository into the cache and
// returns its local path.
//
// If the file is already cached it returns immediately. Otherwise the
// download goes to a uuid-suffixed temporary file that is atomically renamed
// into place, under a fileName+".lock" file lock so that concurrent
// processes downloading the same file do the work only once.
func (r *Repo) DownloadFile(ctx context.Context, fileName string) (string, error) {
	dir, err := r.repoCacheDir()
	if err != nil {
		return "", err
	}
	filePath := filepath.Join(dir, fileName)
	if fileExists(filePath) {
		return filePath, nil
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, DefaultDirCreationPerm); err != nil {
		return "", errors.Wrapf(err, "failed to create cache directory %q", dir)
	}

	lockPath := filePath + ".lock"
	fileLock := flock.New(lockPath)
	if _, err := fileLock.TryLockContext(ctx, lockRetryDelay); err != nil {
		return "", errors.Wrapf(err, "failed to acquire lock %q", lockPath)
	}
	defer func() {
		if err := fileLock.Unlock(); err != nil {
			klog.Warningf("Failed to release lock %q: %v", lockPath, err)
		}
	}()

	// Another process may have finished the download while we waited.
	if fileExists(filePath) {
		return filePath, nil
	}

	if err := r.download(ctx, r.FileURL(fileName), filePath); err != nil {
		return "", err
	}
	return filePath, nil
}

// lockRetryDelay is how often TryLockContext re-attempts a held lock.
const lockRetryDelay = 100 * time.Millisecond

// download fetches url to filePath through a temporary file in the same
// directory followed by an atomic rename.
func (r *Repo) download(ctx context.Context, url, filePath string) error {
	klog.V(1).Infof("Downloading %s", url)

	tmpPath := filePath + "." + uuid.NewString() + ".downloading"
	tmpFile, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, DefaultFileCreationPerm)
	if err != nil {
		return errors.Wrapf(err, "failed to create temporary file %q", tmpPath)
	}
	tmpDone := false
	defer func() {
		if tmpDone {
			return
		}
		if err := tmpFile.Close(); err != nil {
			klog.Warningf("Failed closing temporary file %q: %v", tmpPath, err)
		}
		if err := os.Remove(tmpPath); err != nil {
			klog.Warningf("Failed removing temporary file %q: %v", tmpPath, err)
		}
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to build request for %q", url)
	}
	if r.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+r.authToken)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "failed to download %q", url)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("failed to download %q: %s", url, resp.Status)
	}

	n, err := io.Copy(tmpFile, resp.Body)
	if err != nil {
		return errors.Wrapf(err, "failed writing download of %q", url)
	}
	if err := tmpFile.Close(); err != nil {
		tmpDone = true // already closed, only the rename is left to undo
		_ = os.Remove(tmpPath)
		return errors.Wrapf(err, "failed closing %q", tmpPath)
	}

	if err := os.Rename(tmpPath, filePath); err != nil {
		_ = os.Remove(tmpPath)
		tmpDone = true
		return errors.Wrapf(err, "failed to move %q to %q", tmpPath, filePath)
	}
	tmpDone = true
	klog.V(1).Infof("Downloaded %d bytes to %s", n, filePath)
	return nil
}

// fileExists reports whether path exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
