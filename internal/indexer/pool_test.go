package indexer

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"stash-indexer/internal/affix"
	"stash-indexer/internal/feed"
	"stash-indexer/internal/itemtype"
)

// parserFunc adapts a function to the Parser interface.
type parserFunc func(item *feed.Item, cat itemtype.Category) (*affix.StatRecord, error)

func (f parserFunc) Parse(item *feed.Item, cat itemtype.Category) (*affix.StatRecord, error) {
	return f(item, cat)
}

func TestWorkerPool_NormalizesEveryJob(t *testing.T) {
	var calls atomic.Int32
	wp := NewWorkerPool(3, parserFunc(func(item *feed.Item, cat itemtype.Category) (*affix.StatRecord, error) {
		calls.Add(1)
		return &affix.StatRecord{ItemID: item.ID, Category: cat}, nil
	}), zap.NewNop())
	defer wp.Stop()

	var jobs []*normalizeJob
	for i := 0; i < 50; i++ {
		jobs = append(jobs, &normalizeJob{item: &feed.Item{ID: string(rune('a' + i%26))}, cat: itemtype.Ring})
	}
	wp.Normalize(jobs)

	assert.Equal(t, int32(50), calls.Load())
	for _, job := range jobs {
		require.NoError(t, job.err)
		assert.Equal(t, job.item.ID, job.rec.ItemID)
	}

	// The pool is reusable across cycles.
	wp.Normalize(jobs[:5])
	assert.Equal(t, int32(55), calls.Load())
}

func TestWorkerPool_RecoversPanics(t *testing.T) {
	wp := NewWorkerPool(1, parserFunc(func(item *feed.Item, cat itemtype.Category) (*affix.StatRecord, error) {
		if item.ID == "boom" {
			panic("index out of range")
		}
		return &affix.StatRecord{ItemID: item.ID}, nil
	}), zap.NewNop())
	defer wp.Stop()

	boom := &normalizeJob{item: &feed.Item{ID: "boom"}}
	fine := &normalizeJob{item: &feed.Item{ID: "fine"}}
	wp.Normalize([]*normalizeJob{boom, fine})

	assert.Nil(t, boom.rec)
	assert.ErrorContains(t, boom.err, "index out of range")
	assert.Equal(t, affix.OutcomeFailed, affix.Classify(boom.err))
	assert.NoError(t, fine.err)
}

func TestWorkerPool_EmptyAndSizeFloor(t *testing.T) {
	wp := NewWorkerPool(0, parserFunc(func(*feed.Item, itemtype.Category) (*affix.StatRecord, error) {
		return nil, nil
	}), zap.NewNop())
	assert.Equal(t, 1, wp.size)
	wp.Normalize(nil)
	wp.Stop()
	wp.Stop()
}

func TestWorkerPool_RestartsAfterStop(t *testing.T) {
	wp := NewWorkerPool(2, parserFunc(func(item *feed.Item, _ itemtype.Category) (*affix.StatRecord, error) {
		return &affix.StatRecord{ItemID: item.ID}, nil
	}), zap.NewNop())

	job := &normalizeJob{item: &feed.Item{ID: "a"}}
	wp.Normalize([]*normalizeJob{job})
	wp.Stop()

	again := &normalizeJob{item: &feed.Item{ID: "b"}}
	wp.Normalize([]*normalizeJob{again})
	wp.Stop()
	assert.Equal(t, "b", again.rec.ItemID)
}
