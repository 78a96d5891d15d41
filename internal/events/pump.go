package events

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Pump resolves envelopes and dispatches them, one goroutine per event with
// at most Workers in flight.
type Pump struct {
	loader  Loader
	reg     *Registry
	workers int
	log     *zap.Logger
}

// NewPump constructs a Pump. workers < 1 means 1.
func NewPump(loader Loader, reg *Registry, workers int, log *zap.Logger) *Pump {
	if workers < 1 {
		workers = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Pump{loader: loader, reg: reg, workers: workers, log: log}
}

// Ingest handles one envelope synchronously.
func (p *Pump) Ingest(ctx context.Context, env Envelope) error {
	ev, err := p.loader.Resolve(ctx, env)
	if err != nil {
		p.log.Warn("resolve event", zap.String("kind", string(env.Kind)), zap.String("id", env.ID.String()), zap.Error(err))
		return err
	}
	return p.reg.Dispatch(ctx, ev)
}

// Run consumes in until it is closed or ctx is done, then waits for
// in-flight handlers. Handlers are not cancelled mid-flight.
func (p *Pump) Run(ctx context.Context, in <-chan Envelope) error {
	var g errgroup.Group
	g.SetLimit(p.workers)
	defer func() { _ = g.Wait() }()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case env, ok := <-in:
			if !ok {
				return g.Wait()
			}
			g.Go(func() error {
				_ = p.Ingest(context.WithoutCancel(ctx), env)
				return nil
			})
		}
	}
}
