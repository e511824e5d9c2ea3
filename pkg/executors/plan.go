package executors

import (
	"fmt"
	"io"

	"github.com/yurifrl/ofx2qif/pkg/convert"
	"github.com/yurifrl/ofx2qif/pkg/plan"
	"github.com/yurifrl/ofx2qif/pkg/service"
)

// Plan converts every job without writing anything, so the caller can see
// what Apply would produce.
func (e *Executor) Plan(p *plan.Plan) ([]Change, error) {
	logger := e.runLogger()
	logger.Debug("planning", "jobs", len(p.Jobs))
	conv := convert.New(logger)
	outputDir := e.outputDir(p.OutputDir)

	changes := make([]Change, 0, len(p.Jobs))
	for i, job := range p.Jobs {
		in, out, err := service.ResolvePaths(job.Input, job.Output, outputDir)
		if err != nil {
			return nil, fmt.Errorf("job %d: %w", i+1, err)
		}
		doc, err := service.ReadDocument(in)
		if err != nil {
			return nil, fmt.Errorf("job %d: %w %s: %v", i+1, service.ErrRead, in, err)
		}
		res, err := conv.Convert(doc, convert.Options{IncludeMemos: job.Memos(p.IncludeMemos)}, io.Discard)
		if err != nil {
			return nil, fmt.Errorf("job %d: %w", i+1, err)
		}
		changes = append(changes, Change{
			Job: i + 1,
			Summary: service.Summary{
				Input:       in,
				Output:      out,
				Bytes:       len(doc),
				InputDigest: service.Digest(doc),
				Result:      res,
			},
		})
	}
	return changes, nil
}
