// SPDX-License-Identifier: MIT

// Package storage moves network files between the program and the place they
// live: a local directory, process memory or an S3-compatible bucket.
package storage

import (
	"context"
	"errors"
	"io"
)

// Driver identifies a concrete storage backend.
type Driver string

const (
	// DriverFilesystem is the local filesystem.
	DriverFilesystem Driver = "fs"
	// DriverMemory keeps objects in process memory (tests).
	DriverMemory Driver = "memory"
	// DriverS3 is an S3 or MinIO compatible bucket.
	DriverS3 Driver = "s3"
)

// Sentinel errors shared by all backends.
var (
	// ErrNotFound indicates a missing object.
	ErrNotFound = errors.New("storage: not found")
	// ErrInvalidKey indicates an empty, absolute or escaping key.
	ErrInvalidKey = errors.New("storage: invalid key")
)

// Store reads and writes whole objects by key. Put replaces any existing
// object with the same key.
type Store interface {
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Put(ctx context.Context, key string, r io.Reader) error
	Driver() Driver
}
