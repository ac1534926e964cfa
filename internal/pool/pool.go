// Package pool recycles tree-sitter parser instances bound to the TLA+
// grammar, so hosts that parse many specifications skip the per-parse cost of
// creating and closing a parser each time.
package pool

import (
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"tlasitter"
)

// Pool hands out parsers already configured for TLA+.
//
//	sp := p.Get()
//	defer p.Put(sp)
//	tree := sp.Parse(source, nil)
//
// Safe for use by multiple goroutines simultaneously.
type Pool struct {
	lang *sitter.Language
	pool sync.Pool
}

// New creates a pool backed by the TLA+ grammar tables.
func New() *Pool {
	return newWithLanguage(tlasitter.Language())
}

func newWithLanguage(lang *sitter.Language) *Pool {
	p := &Pool{lang: lang}
	p.pool = sync.Pool{
		New: func() any {
			sp := sitter.NewParser()
			sp.SetLanguage(lang)
			return sp
		},
	}
	return p
}

// Get hands out a parser, reusing one from the pool when available. The
// language is re-applied on every lease: a parser may have been Reset()
// between Put and the next Get.
func (p *Pool) Get() *sitter.Parser {
	sp := p.pool.Get().(*sitter.Parser)
	sp.SetLanguage(p.lang)
	return sp
}

// Put makes a parser available for reuse. The parser is reset first so no
// references to earlier parse trees survive into the next lease; callers
// must not touch sp afterwards. Put(nil) is a no-op.
func (p *Pool) Put(sp *sitter.Parser) {
	if sp == nil {
		return
	}
	sp.Reset()
	p.pool.Put(sp)
}
