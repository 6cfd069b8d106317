package hashing

import (
	"sync"
)

// ThreadSafeDuplicateDetector guards a DuplicateDetector so analysis
// workers can record positions concurrently.
type ThreadSafeDuplicateDetector struct {
	mu    sync.RWMutex
	inner *DuplicateDetector
}

// NewThreadSafeDuplicateDetector returns an empty detector holding at most
// maxCapacity positions, or any number when maxCapacity is 0.
func NewThreadSafeDuplicateDetector(maxCapacity int) *ThreadSafeDuplicateDetector {
	return &ThreadSafeDuplicateDetector{inner: NewDuplicateDetector(maxCapacity)}
}

// Add records hash at line under the write lock. See DuplicateDetector.Add.
func (d *ThreadSafeDuplicateDetector) Add(hash uint64, line int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.inner.Add(hash, line)
}

// FirstLine reports the earliest line hash was seen on.
func (d *ThreadSafeDuplicateDetector) FirstLine(hash uint64) (int, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.inner.FirstLine(hash)
}

func (d *ThreadSafeDuplicateDetector) UniqueCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.inner.UniqueCount()
}

func (d *ThreadSafeDuplicateDetector) IsFull() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.inner.IsFull()
}
