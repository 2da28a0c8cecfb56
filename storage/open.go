// SPDX-License-Identifier: MIT

package storage

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

const s3Scheme = "s3://"

// Open resolves a location into a store and the key inside it.
//
//	s3://bucket/path/to/key  S3 store on bucket, key "path/to/key"
//	anything else            filesystem store on the file's directory
//
// cfg supplies S3 settings other than the bucket; it is ignored for files.
func Open(ctx context.Context, location string, cfg S3Config) (Store, string, error) {
	if !strings.HasPrefix(location, s3Scheme) {
		if location == "" {
			return nil, "", fmt.Errorf("%w: empty location", ErrInvalidKey)
		}
		return NewFS(filepath.Dir(location)), filepath.Base(location), nil
	}

	u, err := url.Parse(location)
	if err != nil {
		return nil, "", fmt.Errorf("storage: parse %q: %w", location, err)
	}
	key := strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return nil, "", fmt.Errorf("%w: %q needs bucket and key", ErrInvalidKey, location)
	}

	cfg.Bucket = u.Host
	st, err := NewS3(ctx, cfg)
	if err != nil {
		return nil, "", err
	}
	return st, key, nil
}
