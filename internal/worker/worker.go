// File: internal/worker/worker.go
package worker

import (
	"log"
	"sync"
)

// Task represents a unit of work executed by the pool.
type Task func()

// Pool is a fixed-size worker pool shared by request handlers.
type Pool interface {
	Submit(Task)
	Size() int
	Stop()
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task), size: n}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				run(job)
			}
		}()
	}
	return p
}

// run executes a task; a panicking task must not take its worker down.
func run(job Task) {
	if job == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("worker: task panicked: %v", r)
		}
	}()
	job()
}

type pool struct {
	jobs chan Task
	size int
	wg   sync.WaitGroup
	once sync.Once
}

// Submit blocks until a worker accepts t. It must not be called after Stop.
func (p *pool) Submit(t Task) {
	p.jobs <- t
}

func (p *pool) Size() int { return p.size }

// Stop drains in-flight tasks and waits for workers to exit. Safe to call twice.
func (p *pool) Stop() {
	p.once.Do(func() {
		close(p.jobs)
	})
	p.wg.Wait()
}
