package buffer_test

import (
	"fmt"
	"testing"

	"github.com/Egor213/LogiWatch/internal/buffer"
	"github.com/Egor213/LogiWatch/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(i int, date string) domain.LogRecord {
	r := domain.NewRecord()
	r.Message = fmt.Sprintf("msg-%d", i)
	r.Date = date
	r.Time = "12:00:00"
	return r
}

func TestBounded_CapKeepsMostRecent(t *testing.T) {
	b := buffer.New(5)

	var batch []domain.LogRecord
	for i := 0; i < 8; i++ {
		// Older dates arrive later so eviction cannot be by date.
		batch = append(batch, record(i, fmt.Sprintf("2024-01-%02d", 20-i)))
	}
	b.Prepend(batch[:3])
	b.Prepend(batch[3:])

	got := b.Snapshot()
	require.Len(t, got, 5)
	assert.Equal(t, "msg-7", got[0].Message)
	assert.Equal(t, "msg-3", got[4].Message)
}

func TestBounded_SingleBatchLargerThanCap(t *testing.T) {
	b := buffer.New(3)

	var batch []domain.LogRecord
	for i := 0; i < 10; i++ {
		batch = append(batch, record(i, "2024-01-01"))
	}
	b.Prepend(batch)

	got := b.Snapshot()
	require.Len(t, got, 3)
	assert.Equal(t, []string{"msg-9", "msg-8", "msg-7"}, []string{got[0].Message, got[1].Message, got[2].Message})
}

func TestBounded_SortedDisplayOrder(t *testing.T) {
	b := buffer.New(10)
	b.Prepend([]domain.LogRecord{
		record(0, "2024-01-02"),
		record(1, "2024-01-03"),
		record(2, "2024-01-01"),
	})

	got := b.Sorted()
	require.Len(t, got, 3)
	assert.Equal(t, "2024-01-03", got[0].Date)
	assert.Equal(t, "2024-01-02", got[1].Date)
	assert.Equal(t, "2024-01-01", got[2].Date)
}

func TestBounded_ResizeAndReplace(t *testing.T) {
	b := buffer.New(0)
	assert.Equal(t, buffer.DefaultCapacity, b.Capacity())

	b.Replace([]domain.LogRecord{record(0, "d"), record(1, "d"), record(2, "d")})
	assert.Equal(t, 3, b.Len())

	b.Resize(2)
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, "msg-0", b.Snapshot()[0].Message)

	b.Resize(-1)
	assert.Equal(t, 2, b.Capacity())
}
