package glot

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// maxFanOut bounds concurrent backend calls in TranslateAll.
const maxFanOut = 8

// TranslateAsync runs Translate on its own goroutine and delivers the outcome
// on the returned channel, so callers on a UI event loop never block on
// network latency. The channel is buffered and closed after the single send.
//
// The in-flight backend call is not interruptible; it runs to completion or
// backend-side timeout even if the receiver stops listening.
func (o *Orchestrator) TranslateAsync(ctx context.Context, text, source, target string) <-chan Outcome {
	ch := make(chan Outcome, 1)

	go func() {
		res, err := o.Translate(ctx, text, source, target)
		ch <- Outcome{Result: res, Err: err}
		close(ch)
	}()

	return ch
}

// TranslateAll translates one text into several target languages
// concurrently. Each target is independent: one failing does not stop the
// others, and the per-target Outcome carries its own error. Duplicate targets
// collapse to a single map entry.
func (o *Orchestrator) TranslateAll(ctx context.Context, text, source string, targets []string) map[string]Outcome {
	outcomes := make([]Outcome, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxFanOut)

	for i, target := range targets {
		i, target := i, target
		g.Go(func() error {
			res, err := o.Translate(gctx, text, source, target)
			outcomes[i] = Outcome{Result: res, Err: err}
			return nil
		})
	}

	_ = g.Wait() // goroutines never return errors; failures live in outcomes

	out := make(map[string]Outcome, len(targets))
	for i, target := range targets {
		out[target] = outcomes[i]
	}
	return out
}
