package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/5w1tchy/goodbooks-api/internal/storage/s3"
)

// Fetcher streams one snapshot source.
type Fetcher interface {
	Fetch(ctx context.Context, src string) (io.ReadCloser, error)
}

// SnapshotFetcher reads http(s):// sources over HTTP and s3://bucket/key
// sources through the object-store client. The S3 client is built lazily
// so HTTP-only runs need no AWS config.
type SnapshotFetcher struct {
	HTTP *http.Client
	s3c  *s3.Client
}

func NewSnapshotFetcher() *SnapshotFetcher {
	return &SnapshotFetcher{HTTP: &http.Client{Timeout: 60 * time.Second}}
}

func (f *SnapshotFetcher) Fetch(ctx context.Context, src string) (io.ReadCloser, error) {
	if strings.HasPrefix(src, "s3://") {
		return f.fetchS3(ctx, src)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch %s: unexpected status %s", src, resp.Status)
	}
	return resp.Body, nil
}

func (f *SnapshotFetcher) fetchS3(ctx context.Context, src string) (io.ReadCloser, error) {
	u, err := url.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("bad s3 source %s: %w", src, err)
	}
	bucket := u.Host
	key := strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return nil, fmt.Errorf("bad s3 source %s: need s3://bucket/key", src)
	}

	if f.s3c == nil {
		c, err := s3.NewClient(ctx)
		if err != nil {
			return nil, err
		}
		f.s3c = c
	}
	return f.s3c.Fetch(ctx, bucket, key)
}
