package ledger_test

import (
	"encoding/json"
	"errors"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/popeskul/wa-broadcast/internal/ledger"
	"github.com/popeskul/wa-broadcast/internal/models"
	"github.com/popeskul/wa-broadcast/internal/repository"
	"github.com/popeskul/wa-broadcast/internal/repository/mocks"
)

func TestStatusLedger_Record(t *testing.T) {
	tests := []struct {
		name     string
		record   func(l *ledger.StatusLedger) error
		expected []models.StatusEntry
	}{
		{
			name: "first sight creates entry",
			record: func(l *ledger.StatusLedger) error {
				return l.Record("Mona", "201001234567", models.StatusEventSent)
			},
			expected: []models.StatusEntry{
				{UniqueID: "1", Name: "Mona", Phone: "201001234567", Sent: true},
			},
		},
		{
			name: "flags accumulate on one entry",
			record: func(l *ledger.StatusLedger) error {
				for _, ev := range []models.StatusEvent{models.StatusEventSent, models.StatusEventRead, models.StatusEventReplied} {
					if err := l.Record("Mona", "201001234567", ev); err != nil {
						return err
					}
				}
				return nil
			},
			expected: []models.StatusEntry{
				{UniqueID: "1", Name: "Mona", Phone: "201001234567", Sent: true, Read: true, Replied: true},
			},
		},
		{
			name: "insertion order follows first sight",
			record: func(l *ledger.StatusLedger) error {
				if err := l.Record("Karim", "201009876543", models.StatusEventReplied); err != nil {
					return err
				}
				if err := l.Record("Mona", "201001234567", models.StatusEventSent); err != nil {
					return err
				}
				return l.Record("Karim", "201009876543", models.StatusEventSent)
			},
			expected: []models.StatusEntry{
				{UniqueID: "1", Name: "Karim", Phone: "201009876543", Sent: true, Replied: true},
				{UniqueID: "2", Name: "Mona", Phone: "201001234567", Sent: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := repository.NewFileSnapshotRepository(t.TempDir())
			l := ledger.NewStatusLedger(store, "message-status")

			require.NoError(t, tt.record(l))
			assert.Equal(t, tt.expected, l.Snapshot())

			raw, err := l.Persisted()
			require.NoError(t, err)

			var persisted []models.StatusEntry
			require.NoError(t, json.Unmarshal(raw, &persisted))
			assert.Equal(t, tt.expected, persisted)
		})
	}
}

func TestStatusLedger_Monotonic(t *testing.T) {
	events := []models.StatusEvent{
		models.StatusEventSent,
		models.StatusEventDelivered,
		models.StatusEventRead,
		models.StatusEventReplied,
	}
	phones := []string{"201000000001", "201000000002", "201000000003"}

	rng := rand.New(rand.NewSource(42))
	store := repository.NewFileSnapshotRepository(t.TempDir())
	l := ledger.NewStatusLedger(store, "message-status")

	want := map[string]models.StatusEntry{}
	for i := 0; i < 200; i++ {
		phone := phones[rng.Intn(len(phones))]
		ev := events[rng.Intn(len(events))]
		require.NoError(t, l.Record("n", phone, ev))

		w := want[phone]
		switch ev {
		case models.StatusEventSent:
			w.Sent = true
		case models.StatusEventDelivered, models.StatusEventRead:
			w.Read = true
		case models.StatusEventReplied:
			w.Replied = true
		}
		want[phone] = w
	}

	for _, entry := range l.Snapshot() {
		w := want[entry.Phone]
		assert.Equal(t, w.Sent, entry.Sent, entry.Phone)
		assert.Equal(t, w.Read, entry.Read, entry.Phone)
		assert.Equal(t, w.Replied, entry.Replied, entry.Phone)
	}
}

func TestStatusLedger_UniqueIDsIncrease(t *testing.T) {
	store := repository.NewFileSnapshotRepository(t.TempDir())
	l := ledger.NewStatusLedger(store, "message-status")

	for i := 0; i < 10; i++ {
		phone := "2010000000" + strconv.Itoa(10+i)
		require.NoError(t, l.Record("n", phone, models.StatusEventSent))
		require.NoError(t, l.Record("n", phone, models.StatusEventRead))
	}

	entries := l.Snapshot()
	require.Len(t, entries, 10)
	for i, e := range entries {
		assert.Equal(t, strconv.Itoa(i+1), e.UniqueID)
	}
}

func TestStatusLedger_UnknownEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockSnapshotRepository(ctrl)
	l := ledger.NewStatusLedger(store, "message-status")

	err := l.Record("Mona", "201001234567", "Failed")
	assert.ErrorIs(t, err, ledger.ErrUnknownEvent)
	assert.Empty(t, l.Snapshot())
}

func TestStatusLedger_PersistFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	diskFull := errors.New("no space left on device")
	store := mocks.NewMockSnapshotRepository(ctrl)
	store.EXPECT().Save("message-status", gomock.Any()).Return(diskFull)

	l := ledger.NewStatusLedger(store, "message-status")

	err := l.Record("Mona", "201001234567", models.StatusEventSent)
	require.Error(t, err)
	assert.ErrorIs(t, err, ledger.ErrPersist)
	assert.ErrorIs(t, err, diskFull)
}

func TestStatusLedger_Persisted(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*mocks.MockSnapshotRepository)
		want      []byte
		wantErr   bool
	}{
		{
			name: "nothing stored yet",
			setupMock: func(m *mocks.MockSnapshotRepository) {
				m.EXPECT().Load("message-status").Return(nil, repository.ErrSnapshotNotFound)
			},
			want: []byte("[]"),
		},
		{
			name: "stored bytes returned verbatim",
			setupMock: func(m *mocks.MockSnapshotRepository) {
				m.EXPECT().Load("message-status").Return([]byte("[\n  {}\n]"), nil)
			},
			want: []byte("[\n  {}\n]"),
		},
		{
			name: "backend error",
			setupMock: func(m *mocks.MockSnapshotRepository) {
				m.EXPECT().Load("message-status").Return(nil, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mocks.NewMockSnapshotRepository(ctrl)
			tt.setupMock(store)

			got, err := ledger.NewStatusLedger(store, "message-status").Persisted()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatusLedger_PersistedFormat(t *testing.T) {
	store := repository.NewFileSnapshotRepository(t.TempDir())
	l := ledger.NewStatusLedger(store, "message-status")
	require.NoError(t, l.Record("Mona", "201001234567", models.StatusEventSent))

	raw, err := l.Persisted()
	require.NoError(t, err)

	expected := `[
  {
    "uniqueId": "1",
    "name": "Mona",
    "phone": "201001234567",
    "sent": true,
    "read": false,
    "replied": false
  }
]`
	assert.Equal(t, expected, string(raw))
}
