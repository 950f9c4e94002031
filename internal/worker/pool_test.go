package worker

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/varboard-go/internal/chess"
)

// echoFunc returns each item's index and move with one node.
func echoFunc(item WorkItem) ProcessResult {
	return ProcessResult{Index: item.Index, Move: item.Move, Nodes: 1}
}

// countingFunc returns a process function that increments a counter.
func countingFunc(counter *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return echoFunc(item)
	}
}

// runItems submits n items from a goroutine, closes the pool and returns
// the results by index.
func runItems(t *testing.T, pool *Pool, n int) map[int]ProcessResult {
	t.Helper()
	pool.Start()
	go func() {
		for i := 0; i < n; i++ {
			pool.Submit(WorkItem{Move: chess.NewMove(i+1, i+2, chess.NoPieceType), Index: i})
		}
		pool.Close()
	}()

	got := make(map[int]ProcessResult)
	for res := range pool.Results() {
		if _, dup := got[res.Index]; dup {
			t.Errorf("index %d returned twice", res.Index)
		}
		got[res.Index] = res
	}
	return got
}

func TestPool(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		buffer  int
		items   int
	}{
		{"single worker", 1, 4, 10},
		{"more workers than items", 8, 2, 3},
		{"small buffer", 4, 1, 50},
		{"no items", 3, 4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var counter int32
			pool := NewPool(countingFunc(&counter), WithWorkers(tt.workers), WithBufferSize(tt.buffer))
			got := runItems(t, pool, tt.items)

			if len(got) != tt.items {
				t.Errorf("results = %d; want %d", len(got), tt.items)
			}
			for i := 0; i < tt.items; i++ {
				res, ok := got[i]
				if !ok {
					t.Errorf("missing index %d", i)
					continue
				}
				if want := chess.NewMove(i+1, i+2, chess.NoPieceType); res.Move != want {
					t.Errorf("result %d Move = %v; want %v", i, res.Move, want)
				}
			}
			if int(atomic.LoadInt32(&counter)) != tt.items || pool.Processed() != int64(tt.items) {
				t.Errorf("processed = %d (Processed() %d); want %d", counter, pool.Processed(), tt.items)
			}
		})
	}
}

func TestPoolOutOfOrderResults(t *testing.T) {
	slowEven := func(item WorkItem) ProcessResult {
		if item.Index%2 == 0 {
			time.Sleep(5 * time.Millisecond)
		}
		return echoFunc(item)
	}
	got := runItems(t, NewPool(slowEven, WithWorkers(4), WithBufferSize(20)), 10)
	if len(got) != 10 {
		t.Errorf("results = %d; want 10", len(got))
	}
}

func TestPoolStop(t *testing.T) {
	release := make(chan struct{})
	blocking := func(item WorkItem) ProcessResult {
		<-release
		return echoFunc(item)
	}
	pool := NewPool(blocking, WithWorkers(1), WithBufferSize(10))
	pool.Start()

	for i := 0; i < 5; i++ {
		if !pool.Submit(WorkItem{Index: i}) {
			t.Fatalf("Submit(%d) = false before Stop", i)
		}
	}
	if pool.Stopped() {
		t.Error("Stopped() = true before Stop")
	}
	pool.Stop()
	pool.Stop()
	if !pool.Stopped() {
		t.Error("Stopped() = false after Stop")
	}
	if pool.Submit(WorkItem{Index: 5}) {
		t.Error("Submit after Stop = true; want false")
	}

	close(release)
	go pool.Close()
	count := 0
	for range pool.Results() {
		count++
	}
	// The worker may have picked up the first item before Stop.
	if count > 1 {
		t.Errorf("results after Stop = %d; want at most 1", count)
	}
}

func TestNewPoolOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 16},
		{"workers", []PoolOption{WithWorkers(4)}, 4, 16},
		{"buffer", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"both", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"invalid workers ignored", []PoolOption{WithWorkers(0)}, 1, 16},
		{"invalid buffer ignored", []PoolOption{WithBufferSize(-5)}, 1, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(echoFunc, tt.opts...)
			if pool.Workers() != tt.wantWorkers {
				t.Errorf("Workers() = %d; want %d", pool.Workers(), tt.wantWorkers)
			}
			if pool.bufferSize != tt.wantBuffer || cap(pool.work) != tt.wantBuffer {
				t.Errorf("bufferSize = %d (cap %d); want %d", pool.bufferSize, cap(pool.work), tt.wantBuffer)
			}
		})
	}
}

// TestPoolNoRace is designed to be run with -race flag.
func TestPoolNoRace(t *testing.T) {
	var counter int32
	got := runItems(t, NewPool(countingFunc(&counter), WithWorkers(8), WithBufferSize(8)), 200)
	if len(got) != 200 || atomic.LoadInt32(&counter) != 200 {
		t.Errorf("results = %d, processed = %d; want 200", len(got), counter)
	}
}
