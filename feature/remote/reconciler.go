package remote

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cutter/core/progress"
	"cutter/core/storage"
	"cutter/feature/naming"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// contentType is the encoding the transform phase writes; every
// published object is declared as it.
const contentType = "image/jpeg"

// legacySizeTokens are dimension markers older revisions of the
// pipeline embedded in derivative keys. Remote galleries produced by
// those revisions still carry them, so the fetch filter keeps treating
// them as exclusion signals.
var legacySizeTokens = []string{"_200", "_400", "_800", "_1920", "_thumb"}

// RemoteError reports a failed object-store operation.
type RemoteError struct {
	Op  string
	Key string
	Err error
}

func (e *RemoteError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("remote %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("remote %s failed for %s: %v", e.Op, e.Key, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// Reconciler decides, from a remote listing, which keys are genuine
// sources versus previously produced derivatives, downloads the
// accepted subset, and later publishes the pipeline's output back.
type Reconciler struct {
	client   storage.Client
	logger   *zap.Logger
	reporter *progress.Reporter
	policy   naming.Policy
}

// NewReconciler creates a Reconciler using the given derivative policy.
func NewReconciler(client storage.Client, logger *zap.Logger, reporter *progress.Reporter, policy naming.Policy) *Reconciler {
	return &Reconciler{client: client, logger: logger, reporter: reporter, policy: policy}
}

// Fetch lists all objects under prefix, filters out everything that is
// (or ever was) pipeline output, and downloads the survivors into
// destDir. Unless overwrite is set, only "clean" original keys — those
// the derivative policy does not match — are downloaded at all.
//
// One level of remote nesting is flattened: the first path segment
// after the prefix is dropped and the remaining segments are joined
// under destDir, so the remote key hierarchy is not recreated locally.
//
// A listing failure aborts the fetch; a single failed download is
// logged and skipped so one bad object cannot poison the batch,
// consistent with the transform phase's isolation policy. Returns the
// local paths of the downloaded files.
func (r *Reconciler) Fetch(ctx context.Context, bucket, prefix, destDir string, overwrite bool) ([]string, error) {
	r.logger.Info("Listing remote objects",
		zap.String("bucket", bucket),
		zap.String("prefix", prefix),
	)

	var keys []string
	skipped := 0

	objects := r.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})
	for obj := range objects {
		if obj.Err != nil {
			return nil, &RemoteError{Op: "list", Err: obj.Err}
		}
		if r.accept(obj.Key, prefix, overwrite) {
			keys = append(keys, obj.Key)
		} else {
			skipped++
		}
	}

	r.logger.Info("Downloading remote objects",
		zap.Int("count", len(keys)),
		zap.Int("skipped", skipped),
		zap.String("dest", destDir),
	)

	downloaded := make([]string, 0, len(keys))
	r.reporter.Report(0, len(keys), "Downloaded")
	for i, key := range keys {
		path, err := r.download(ctx, bucket, key, destDir)
		if err != nil {
			r.logger.Warn("Skipping object: download failed",
				zap.String("key", key),
				zap.Error(err),
			)
		} else {
			downloaded = append(downloaded, path)
		}
		r.reporter.Report(i+1, len(keys), "Downloaded")
	}

	return downloaded, nil
}

// accept applies the derivative filter plus the overwrite policy to one
// remote key.
func (r *Reconciler) accept(key, prefix string, overwrite bool) bool {
	for _, token := range legacySizeTokens {
		if strings.Contains(key, token) {
			return false
		}
	}

	// The prefix itself can exist as an empty marker object.
	if key == "" || key == prefix+"/" {
		return false
	}

	// Without overwrite, any key carrying a derivative marker anywhere
	// in its name is left alone; only clean originals are fetched.
	if !overwrite && r.policy.IsDerivative(key) {
		return false
	}

	return true
}

// download streams one object into destDir, flattening the first path
// segment of the key.
func (r *Reconciler) download(ctx context.Context, bucket, key, destDir string) (string, error) {
	segments := strings.Split(key, "/")
	local := filepath.Join(destDir, key)
	if len(segments) > 1 {
		local = filepath.Join(append([]string{destDir}, segments[1:]...)...)
	}

	obj, err := r.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return "", &RemoteError{Op: "get", Key: key, Err: err}
	}
	defer obj.Close()

	if err := os.MkdirAll(filepath.Dir(local), 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", filepath.Dir(local), err)
	}

	f, err := os.Create(local)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", local, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, obj); err != nil {
		return "", &RemoteError{Op: "get", Key: key, Err: err}
	}

	return local, nil
}

// Publish uploads each file as an object named prefix/<basename> with
// the transform phase's content type. It fails fast on the first
// transport failure.
//
// Known limitation, preserved from the original layout: only the file's
// basename is kept, so any directory structure under the working
// directory is silently discarded, and nested remote prefixes sharing a
// bucket can collide on basename. Not fixed here because the intended
// remote layout semantics are unconfirmed.
func (r *Reconciler) Publish(ctx context.Context, bucket, prefix string, files []string) error {
	r.logger.Info("Uploading files",
		zap.Int("count", len(files)),
		zap.String("bucket", bucket),
		zap.String("prefix", prefix),
	)

	r.reporter.Report(0, len(files), "Uploaded")
	for i, file := range files {
		key := filepath.Base(file)
		if prefix != "" {
			key = prefix + "/" + key
		}

		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", file, err)
		}

		info, err := f.Stat()
		if err != nil {
			f.Close()
			return fmt.Errorf("failed to stat %s: %w", file, err)
		}

		_, err = r.client.PutObject(ctx, bucket, key, f, info.Size(), minio.PutObjectOptions{
			ContentType: contentType,
		})
		f.Close()
		if err != nil {
			return &RemoteError{Op: "put", Key: key, Err: err}
		}

		r.reporter.Report(i+1, len(files), "Uploaded")
	}

	return nil
}
