package repository

import "errors"

var ErrSnapshotNotFound = errors.New("snapshot not found")
