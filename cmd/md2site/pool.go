package main

import (
	"context"
	"runtime"
	"sync"

	md2site "github.com/alnah/go-md2site"
)

// Converter is the interface for the page rendering service.
type Converter interface {
	Convert(ctx context.Context, input md2site.Input) (md2site.Result, error)
}

// Compile-time interface implementation check.
var _ Converter = (*md2site.Service)(nil)

// Exporter is the interface for the optional PDF export stage.
type Exporter interface {
	ExportHTML(ctx context.Context, html string) ([]byte, error)
	Close() error
}

// Compile-time interface implementation check.
var _ Exporter = (*md2site.PDFExporter)(nil)

// builder bundles the per-worker rendering pipeline: the converter and,
// when PDF export is on, a dedicated browser-backed exporter.
type builder struct {
	conv Converter
	pdf  Exporter // nil when PDF export is disabled
}

// Pool abstracts builder pool operations for testability.
type Pool interface {
	Acquire() (*builder, error)
	Release(*builder)
	Size() int
}

// BuilderPool manages a pool of builders for parallel page generation.
// Builders are created lazily on first acquire through the factory, so a
// misconfigured service (bad style name, missing template) surfaces as
// an Acquire error instead of a startup crash.
type BuilderPool struct {
	size     int
	factory  func() (*builder, error)
	builders []*builder
	sem      chan *builder
	mu       sync.Mutex
	created  int
	closed   bool
}

// NewBuilderPool creates a pool with capacity for n builders.
func NewBuilderPool(n int, factory func() (*builder, error)) *BuilderPool {
	if n < 1 {
		n = 1
	}

	return &BuilderPool{
		size:     n,
		factory:  factory,
		builders: make([]*builder, 0, n),
		sem:      make(chan *builder, n),
	}
}

// Compile-time check that BuilderPool implements Pool.
var _ Pool = (*BuilderPool)(nil)

// Acquire gets a builder from the pool, creating one if needed.
// Blocks if all builders are in use.
func (p *BuilderPool) Acquire() (*builder, error) {
	// Try to get an existing builder (non-blocking)
	select {
	case b := <-p.sem:
		return b, nil
	default:
	}

	// Check if we can create a new builder
	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		// Create new builder outside the lock
		b, err := p.factory()
		if err != nil {
			p.mu.Lock()
			p.created--
			p.mu.Unlock()
			return nil, err
		}

		p.mu.Lock()
		p.builders = append(p.builders, b)
		p.mu.Unlock()

		return b, nil
	}
	p.mu.Unlock()

	// All builders created, wait for one to be released
	return <-p.sem, nil
}

// Release returns a builder to the pool.
func (p *BuilderPool) Release(b *builder) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.closed {
		p.sem <- b
	}
}

// Close releases all builder resources, including browser instances.
func (p *BuilderPool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.sem)
	builders := p.builders
	p.mu.Unlock()

	var lastErr error
	for _, b := range builders {
		if b.pdf != nil {
			if err := b.pdf.Close(); err != nil {
				lastErr = err
			}
		}
	}
	return lastErr
}

// Size returns the pool capacity.
func (p *BuilderPool) Size() int {
	return p.size
}

// resolvePoolSize determines the optimal pool size.
// Priority: explicit flag > GOMAXPROCS-based calculation.
func resolvePoolSize(flagWorkers int) int {
	// Explicit flag takes priority
	if flagWorkers > 0 {
		return flagWorkers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs for containers)
	available := runtime.GOMAXPROCS(0)
	n := available / 2

	// Minimum 1, maximum 8
	if n < 1 {
		return 1
	}
	if n > 8 {
		return 8
	}
	return n
}
