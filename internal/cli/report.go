package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/aidanlsb/tanaout/internal/atomicfile"
	"github.com/aidanlsb/tanaout/internal/pages"
)

// report is the YAML run summary written to report_file.
type report struct {
	RunID      string            `yaml:"run_id"`
	Input      string            `yaml:"input"`
	Output     string            `yaml:"output"`
	FinishedAt time.Time         `yaml:"finished_at"`
	Elapsed    string            `yaml:"elapsed"`
	Records    int               `yaml:"records"`
	Nodes      int               `yaml:"nodes"`
	Stubs      int               `yaml:"stubs"`
	Dangling   int               `yaml:"dangling_refs"`
	Blocks     int               `yaml:"blocks"`
	Pages      int               `yaml:"pages"`
	Written    int               `yaml:"written"`
	Duplicates []pages.Duplicate `yaml:"duplicates,omitempty"`
	Unresolved []string          `yaml:"unresolved_links,omitempty"`
}

func newReport(input, output string, conv *conversion, elapsed time.Duration) *report {
	return &report{
		RunID:      uuid.NewString(),
		Input:      input,
		Output:     output,
		FinishedAt: time.Now().UTC().Truncate(time.Second),
		Elapsed:    elapsed.Round(time.Millisecond).String(),
		Records:    conv.Graph.Records,
		Nodes:      conv.Graph.Nodes,
		Stubs:      conv.Graph.Stubs,
		Dangling:   conv.Graph.Dangling,
		Blocks:     conv.Blocks,
		Pages:      conv.Pages,
		Written:    len(conv.Emit.Written),
		Duplicates: conv.Emit.Duplicates,
		Unresolved: conv.Emit.Unresolved,
	}
}

func writeReport(path string, r *report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}
	if err := atomicfile.WriteFile(path, data); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}
