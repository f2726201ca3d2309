// Package cache keeps compiled number formats so that each distinct pattern
// is compiled at most once, however many goroutines ask for it.
//
//	c := cache.New()
//	res, err := c.Render(numfmt.Number(3.5), 0, "# ?/?")
package cache

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/TsubasaBE/go-cellfmt/numfmt"
	"github.com/TsubasaBE/go-cellfmt/styles"
)

// Cache maps a pattern to its compiled [numfmt.Format].  Compile errors are
// cached as well.  The zero value is not usable; call [New].
type Cache struct {
	opts   []numfmt.Option
	logger *slog.Logger

	entries sync.Map // pattern → entry
	group   singleflight.Group
	builds  atomic.Int64
}

type entry struct {
	f   *numfmt.Format
	err error
}

// Option configures a [Cache].
type Option func(*Cache)

// WithCompileOptions sets the options every pattern is compiled with.
func WithCompileOptions(opts ...numfmt.Option) Option {
	return func(c *Cache) { c.opts = append(c.opts, opts...) }
}

// WithLogger sets the logger that receives a Debug record per build.  It is
// also passed to [numfmt.Compile].
func WithLogger(l *slog.Logger) Option {
	return func(c *Cache) {
		if l != nil {
			c.logger = l
		}
	}
}

// New returns an empty cache.
func New(opts ...Option) *Cache {
	c := &Cache{logger: slog.Default()}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Get returns the compiled form of pattern, compiling it on first use.
func (c *Cache) Get(pattern string) (*numfmt.Format, error) {
	if v, ok := c.entries.Load(pattern); ok {
		e := v.(entry)
		return e.f, e.err
	}
	v, _, _ := c.group.Do(pattern, func() (any, error) {
		if v, ok := c.entries.Load(pattern); ok {
			return v, nil
		}
		opts := append([]numfmt.Option{numfmt.WithLogger(c.logger)}, c.opts...)
		f, err := numfmt.Compile(pattern, opts...)
		e := entry{f: f, err: err}
		c.entries.Store(pattern, e)
		c.builds.Add(1)
		c.logger.Debug("cache: compiled number format", "key", pattern, "error", err)
		return e, nil
	})
	e := v.(entry)
	return e.f, e.err
}

// GetByID returns the compiled format of a style's numFmtId and custom
// pattern.  Built-in IDs share entries with their pattern text.
func (c *Cache) GetByID(numFmtID int, custom string) (*numfmt.Format, error) {
	return c.Get(styles.Resolve(numFmtID, custom))
}

// Render formats v with the format of numFmtID / custom.
func (c *Cache) Render(v numfmt.Value, numFmtID int, custom string, opts ...numfmt.Option) (numfmt.Result, error) {
	f, err := c.GetByID(numFmtID, custom)
	if err != nil {
		return numfmt.Result{}, err
	}
	return f.Render(v, opts...)
}

// Len returns the number of cached patterns.
func (c *Cache) Len() int {
	n := 0
	c.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Builds returns how many patterns have been compiled since [New].
func (c *Cache) Builds() int64 { return c.builds.Load() }

// Purge drops every entry.
func (c *Cache) Purge() {
	c.entries.Clear()
}
