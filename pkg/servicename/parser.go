package servicename

import (
	"context"
	"time"

	"github.com/maypok86/otter"
	"golang.org/x/sync/singleflight"

	"github.com/wuxler/svcname/pkg/errdefs"
	"github.com/wuxler/svcname/pkg/xlog"
)

const (
	// DefaultParserCapacity is the default number of names a Parser keeps.
	DefaultParserCapacity = 4096
	// DefaultParserTTL is the default time a parsed name stays cached.
	DefaultParserTTL = time.Hour
)

// ParserOption configures a Parser.
type ParserOption func(*parserOptions)

type parserOptions struct {
	capacity int
	ttl      time.Duration
	logger   *xlog.Logger
}

// WithCapacity sets the maximum number of cached names.
func WithCapacity(capacity int) ParserOption {
	return func(o *parserOptions) {
		o.capacity = capacity
	}
}

// WithTTL sets how long a parsed name stays cached.
func WithTTL(ttl time.Duration) ParserOption {
	return func(o *parserOptions) {
		o.ttl = ttl
	}
}

// WithLogger sets the logger used instead of the one carried by the context.
func WithLogger(logger *xlog.Logger) ParserOption {
	return func(o *parserOptions) {
		o.logger = logger
	}
}

// Parser memoizes Parse for callers that resolve the same names repeatedly.
// It is safe for concurrent use.
type Parser struct {
	cache     otter.Cache[string, Name]
	loadGroup singleflight.Group
	logger    *xlog.Logger
}

// NewParser returns a Parser. The capacity must be positive.
func NewParser(opts ...ParserOption) (*Parser, error) {
	o := parserOptions{
		capacity: DefaultParserCapacity,
		ttl:      DefaultParserTTL,
	}
	for _, apply := range opts {
		apply(&o)
	}
	if o.capacity <= 0 {
		return nil, errdefs.Newf(errdefs.ErrInvalidParameter, "parser capacity must be positive, got %d", o.capacity)
	}
	var (
		cache otter.Cache[string, Name]
		err   error
	)
	builder := otter.MustBuilder[string, Name](o.capacity)
	if o.ttl > 0 {
		cache, err = builder.WithTTL(o.ttl).Build()
	} else {
		cache, err = builder.Build()
	}
	if err != nil {
		return nil, errdefs.NewE(errdefs.ErrInvalidParameter, err)
	}
	return &Parser{cache: cache, logger: o.logger}, nil
}

// Parse returns the same Name as the package level Parse.
func (p *Parser) Parse(ctx context.Context, raw string) Name {
	if n, ok := p.cache.Get(raw); ok {
		return n
	}
	loaded, _, _ := p.loadGroup.Do(raw, func() (any, error) {
		n := Parse(raw)
		p.cache.Set(raw, n)
		p.log(ctx).DebugContext(ctx, "parsed service name",
			"name", raw, "components", n.Len(), "kind", n.Kind().String())
		return n, nil
	})
	return loaded.(Name)
}

// Close releases the background resources of the cache.
func (p *Parser) Close() {
	p.cache.Close()
}

func (p *Parser) log(ctx context.Context) *xlog.Logger {
	if p.logger != nil {
		return p.logger
	}
	return xlog.C(ctx)
}
