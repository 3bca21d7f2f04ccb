package renderer

import (
	"math/rand"
	"sync"
	"time"
)

// bandRows is the height of one work unit. The band partition is fixed
// regardless of worker count so per-band seeding stays reproducible.
const bandRows = 16

// bandCount returns the number of row bands for an image height
func bandCount(height int) int {
	return (height + bandRows - 1) / bandRows
}

// bandTask represents one row band to render
type bandTask struct {
	index  int
	rowMin int // First image row, counted from the top
	rowMax int // One past the last image row
	random *rand.Rand
}

// bandResult reports a completed band
type bandResult struct {
	index   int
	rows    int
	elapsed time.Duration
}

// workerPool renders row bands on a fixed set of goroutines. Bands never
// overlap, so workers write to disjoint framebuffer slices with no
// synchronization.
type workerPool struct {
	raytracer  *Raytracer
	fb         *Framebuffer
	numWorkers int
	tasks      chan bandTask
	results    chan bandResult
	wg         sync.WaitGroup
}

// newWorkerPool creates a pool writing into fb. Channels are buffered
// for every possible band so submission never blocks on a slow drain.
func newWorkerPool(rt *Raytracer, fb *Framebuffer, numWorkers int) *workerPool {
	bands := bandCount(fb.Height)
	return &workerPool{
		raytracer:  rt,
		fb:         fb,
		numWorkers: numWorkers,
		tasks:      make(chan bandTask, bands),
		results:    make(chan bandResult, bands),
	}
}

// start launches the worker goroutines
func (wp *workerPool) start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// submit queues a band for rendering
func (wp *workerPool) submit(task bandTask) {
	wp.tasks <- task
}

// finish signals that no more bands are coming and closes the result
// channel once all workers drain
func (wp *workerPool) finish() {
	close(wp.tasks)
	go func() {
		wp.wg.Wait()
		close(wp.results)
	}()
}

// run is the main worker loop
func (wp *workerPool) run() {
	defer wp.wg.Done()

	for task := range wp.tasks {
		started := time.Now()
		wp.raytracer.renderBand(task, wp.fb)
		wp.results <- bandResult{
			index:   task.index,
			rows:    task.rowMax - task.rowMin,
			elapsed: time.Since(started),
		}
	}
}
