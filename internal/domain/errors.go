// Package domain holds the storage-facing contracts of each resource.
package domain

import "errors"

var (
	// ErrNotFound is returned by repositories when the addressed row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a unique key.
	ErrDuplicate = errors.New("duplicate key")
)
