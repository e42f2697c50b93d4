// Package batch encodes many texts concurrently.  Texts that repeat share one
// huffman.Encoding, held in a bounded LRU cache.
package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/op/go-logging"
	"golang.org/x/sync/errgroup"

	huffman "github.com/chronos-tachyon/huffstring"
)

var log = logging.MustGetLogger("huffenc/batch")

// ErrMismatch is returned when a decoded result differs from its input.
var ErrMismatch = errors.New("decoded text does not match input")

// Result is the outcome of encoding one input.
type Result struct {
	Text     string
	Encoded  string
	Encoding *huffman.Encoding
}

// Encoder encodes batches of texts.
type Encoder struct {
	workers int

	mu    sync.Mutex
	cache *lru.Cache[string, *huffman.Encoding]
}

// New returns an Encoder that keeps up to cacheSize built Encodings and runs
// up to workers encodes at once.
func New(cacheSize, workers int) (*Encoder, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("workers must be > 0, got %d", workers)
	}
	cache, err := lru.New[string, *huffman.Encoding](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Encoder{workers: workers, cache: cache}, nil
}

// Cached returns the number of Encodings currently cached.
func (b *Encoder) Cached() int {
	return b.cache.Len()
}

// EncodeAll encodes every text and returns the results in input order.  If
// verify is set, each result is decoded and compared to its input.  The first
// failure cancels the remaining work and is returned.
func (b *Encoder) EncodeAll(ctx context.Context, texts []string, verify bool) ([]Result, error) {
	results := make([]Result, len(texts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)
	for index, text := range texts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			e := b.encoding(text)
			encoded, err := e.Encode()
			if err != nil {
				return fmt.Errorf("input %d: %w", index, err)
			}
			if verify {
				if err := Verify(e, encoded); err != nil {
					return fmt.Errorf("input %d: %w", index, err)
				}
			}

			log.Debugf("input %d: %d distinct symbols, %d bits", index, len(e.Frequencies()), len(encoded))
			results[index] = Result{Text: text, Encoded: encoded, Encoding: e}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Verify decodes encoded with e and checks that the result is e's text.
func Verify(e *huffman.Encoding, encoded string) error {
	decoded, err := e.Decode(encoded)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	if decoded != e.Text() {
		return fmt.Errorf("verify: %w: got %q", ErrMismatch, decoded)
	}
	return nil
}

func (b *Encoder) encoding(text string) *huffman.Encoding {
	b.mu.Lock()
	defer b.mu.Unlock()

	if e, found := b.cache.Get(text); found {
		log.Debugf("reusing encoding for %d-byte input", len(text))
		return e
	}
	e := huffman.New(text)
	if evicted := b.cache.Add(text, e); evicted {
		log.Debug("evicted least recently used encoding")
	}
	return e
}
