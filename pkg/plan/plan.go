package plan

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Plan is a batch of independent conversions.
type Plan struct {
	IncludeMemos bool   `yaml:"include_memos"`
	Workers      int    `yaml:"workers"`
	OutputDir    string `yaml:"output_dir"`
	Jobs         []Job  `yaml:"jobs"`
}

type Job struct {
	Input        string `yaml:"input"`
	Output       string `yaml:"output"`
	IncludeMemos *bool  `yaml:"include_memos"`
}

// Memos resolves the job's memo setting against the plan default.
func (j Job) Memos(def bool) bool {
	if j.IncludeMemos != nil {
		return *j.IncludeMemos
	}
	return def
}

func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	if len(p.Jobs) == 0 {
		return nil, fmt.Errorf("plan has no jobs")
	}
	for i, j := range p.Jobs {
		if j.Input == "" {
			return nil, fmt.Errorf("job %d has no input", i+1)
		}
	}
	return &p, nil
}

func (p *Plan) Print(w io.Writer) {
	fmt.Fprintf(w, "include memos: %t, workers: %d\n", p.IncludeMemos, p.Workers)
	for i, j := range p.Jobs {
		out := j.Output
		if out == "" {
			out = "(derived)"
		}
		fmt.Fprintf(w, "[%d] input=%s output=%s memos=%t\n", i+1, j.Input, out, j.Memos(p.IncludeMemos))
	}
}
