package repository

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

// Repository interface defines all repository operations.
type Repository interface {
	// Ping checks backend connectivity
	Ping() error

	// Snapshot returns snapshot repository
	Snapshot() SnapshotRepository
}

// SnapshotRepository stores whole JSON documents by name. Save replaces the
// previous document in one step; readers never observe a partial write.
type SnapshotRepository interface {
	Save(name string, data []byte) error
	Load(name string) ([]byte, error)
}
