package executors

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/yurifrl/ofx2qif/pkg/convert"
	"github.com/yurifrl/ofx2qif/pkg/plan"
	"github.com/yurifrl/ofx2qif/pkg/service"
)

// Apply converts every job of the plan, one document per worker. Results
// come back in job order. After the first failure no further job starts.
func (e *Executor) Apply(ctx context.Context, p *plan.Plan) ([]Change, error) {
	logger := e.runLogger()
	cfg := *e.config
	cfg.OutputDir = e.outputDir(p.OutputDir)
	proc := service.NewProcessor(&cfg, logger)
	workers := e.workers(p.Workers)
	logger.Debug("applying plan", "jobs", len(p.Jobs), "workers", workers)

	changes := make([]Change, len(p.Jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, job := range p.Jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			opts := convert.Options{IncludeMemos: job.Memos(p.IncludeMemos)}
			s, err := proc.ProcessFile(job.Input, job.Output, opts)
			if err != nil {
				return fmt.Errorf("job %d: %w", i+1, err)
			}
			changes[i] = Change{Job: i + 1, Summary: s}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	logger.Info("plan applied", "jobs", len(changes))
	return changes, nil
}
