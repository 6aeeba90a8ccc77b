// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bench runs shape-iteration scenarios over the storage strategies of
// package some and a plain interface slice.
package bench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("code.hybscloud.com/some/internal/bench")

// ErrInvalidOptions is returned by Run for options it cannot honor.
var ErrInvalidOptions = errors.New("bench: invalid options")

// Options select what Run measures.
type Options struct {
	// N is the number of shapes per collection.
	N int
	// Rounds is the number of sweeps over each collection.
	Rounds int
	// Variants to run; empty means all of them.
	Variants []Variant
	// Parallel bounds the number of variants measured at once.
	// Zero or one runs them one after another.
	Parallel int
}

// Result is the measurement of one variant.
type Result struct {
	Variant  Variant       `json:"variant"`
	N        int           `json:"n"`
	Rounds   int           `json:"rounds"`
	Inline   int           `json:"inline"`
	Elapsed  time.Duration `json:"elapsed_ns"`
	PerCall  time.Duration `json:"per_call_ns"`
	Checksum int           `json:"checksum"`
}

func (o Options) validate() error {
	switch {
	case o.N <= 0:
		return fmt.Errorf("%w: n must be positive, got %d", ErrInvalidOptions, o.N)
	case o.Rounds <= 0:
		return fmt.Errorf("%w: rounds must be positive, got %d", ErrInvalidOptions, o.Rounds)
	case o.Parallel < 0:
		return fmt.Errorf("%w: parallel must not be negative, got %d", ErrInvalidOptions, o.Parallel)
	}
	for _, v := range o.Variants {
		if _, err := ParseVariant(string(v)); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
		}
	}
	return nil
}

// Run measures every selected variant and returns the results in the order
// the variants were given. Each variant owns its collection; no container is
// shared between goroutines.
func Run(ctx context.Context, logger *slog.Logger, opts Options) ([]Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	vs := opts.Variants
	if len(vs) == 0 {
		vs = variants
	}

	results := make([]Result, len(vs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Parallel, 1))
	for i, v := range vs {
		g.Go(func() error {
			r, err := measure(ctx, logger.With(slog.String("variant", string(v))), v, opts)
			if err != nil {
				return fmt.Errorf("variant %s: %w", v, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func measure(ctx context.Context, logger *slog.Logger, v Variant, opts Options) (_ Result, err error) {
	ctx, span := tracer.Start(ctx, "bench.measure", trace.WithAttributes(
		attribute.String("bench.variant", string(v)),
		attribute.Int("bench.n", opts.N),
		attribute.Int("bench.rounds", opts.Rounds),
	))
	defer span.End()
	defer func() {
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	logger.Debug("Preparing collection...", slog.Int("n", opts.N))
	c, err := prepare(v, opts.N)
	if err != nil {
		return Result{}, fmt.Errorf("prepare: %w", err)
	}
	defer c.release()

	r := Result{Variant: v, N: opts.N, Rounds: opts.Rounds, Inline: c.inline()}
	start := time.Now()
	for range opts.Rounds {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		r.Checksum += c.sweep()
	}
	r.Elapsed = time.Since(start)
	r.PerCall = r.Elapsed / time.Duration(opts.N*opts.Rounds)
	span.SetAttributes(attribute.Int("bench.inline", r.Inline))

	logger.Debug("Variant measured",
		slog.Duration("elapsed", r.Elapsed),
		slog.Int("checksum", r.Checksum),
	)
	return r, nil
}

// Checksum returns the value every variant reports for n shapes swept over
// the given number of rounds.
func Checksum(n, rounds int) int {
	sum := 0
	for i := range n {
		for r := range rounds {
			if i%2 == 0 {
				sum += i + r
			} else {
				sum += i - r
			}
		}
	}
	return sum
}
