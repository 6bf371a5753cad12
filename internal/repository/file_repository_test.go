package repository_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/popeskul/wa-broadcast/internal/repository"
)

func TestFileSnapshotRepository_SaveLoad(t *testing.T) {
	tests := []struct {
		name   string
		writes [][]byte
		want   []byte
	}{
		{
			name:   "single write",
			writes: [][]byte{[]byte(`[]`)},
			want:   []byte(`[]`),
		},
		{
			name: "overwrite keeps last document",
			writes: [][]byte{
				[]byte(`[{"uniqueId":"1"}]`),
				[]byte(`[{"uniqueId":"1"},{"uniqueId":"2"}]`),
			},
			want: []byte(`[{"uniqueId":"1"},{"uniqueId":"2"}]`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			repo := repository.NewFileSnapshotRepository(dir)

			for _, w := range tt.writes {
				require.NoError(t, repo.Save("message-status", w))
			}

			got, err := repo.Load("message-status")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			onDisk, err := os.ReadFile(filepath.Join(dir, "message-status.json"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, onDisk)

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Len(t, entries, 1, "temp files must not be left behind")
		})
	}
}

func TestFileSnapshotRepository_LoadMissing(t *testing.T) {
	repo := repository.NewFileSnapshotRepository(t.TempDir())

	_, err := repo.Load("replies")
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
}

func TestFileSnapshotRepository_SaveFailure(t *testing.T) {
	repo := repository.NewFileSnapshotRepository(filepath.Join(t.TempDir(), "missing"))

	err := repo.Save("replies", []byte(`[]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create temp snapshot")
}

func TestFileSnapshotRepository_ConcurrentReaders(t *testing.T) {
	repo := repository.NewFileSnapshotRepository(t.TempDir())
	docs := [][]byte{[]byte(`["a"]`), []byte(`["a","b"]`), []byte(`["a","b","c"]`)}
	require.NoError(t, repo.Save("replies", docs[0]))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			_ = repo.Save("replies", docs[i%len(docs)])
		}
	}()

	for i := 0; i < 50; i++ {
		got, err := repo.Load("replies")
		require.NoError(t, err)
		assert.Contains(t, docs, got)
	}
	wg.Wait()
}

func TestNewFileRepository(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "store")

	repo, err := repository.NewFileRepository(dir)
	require.NoError(t, err)
	assert.NoError(t, repo.Ping())

	require.NoError(t, repo.Snapshot().Save("replies", []byte(`[]`)))
	_, err = os.Stat(filepath.Join(dir, "replies.json"))
	assert.NoError(t, err)

	require.NoError(t, os.RemoveAll(dir))
	assert.Error(t, repo.Ping())
}
