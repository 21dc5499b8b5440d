package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/aidanlsb/tanaout/internal/config"
	"github.com/aidanlsb/tanaout/internal/graph"
	"github.com/aidanlsb/tanaout/internal/pages"
	"github.com/aidanlsb/tanaout/internal/ui"
)

// conversion holds the outcome of one run, for printing and the report.
type conversion struct {
	Graph  graph.Stats
	Blocks int
	Pages  int
	Emit   *pages.EmitResult
}

func runConvert(cmd *cobra.Command, cfg *config.Config, input, output string) error {
	start := time.Now()

	if err := checkInput(input); err != nil {
		return newError(ErrInputInvalid, err, "Pass the path of a readable '.json' export file")
	}
	if err := checkOutput(output); err != nil {
		return newError(ErrOutputInvalid, err, "Pass a new or empty directory without a file extension")
	}

	logger := loggerFromContext(cmd.Context())
	conv, err := convert(logger, input, output, pages.EmitOptions{SlugFilenames: cfg.SlugFilenames})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.Successf("Wrote %s to %s", ui.Count(len(conv.Emit.Written), "page", "pages"), ui.FilePath(output)))
	if n := len(conv.Emit.Duplicates); n > 0 {
		fmt.Fprintln(out, ui.Warningf("Skipped %s with duplicate file names", ui.Count(n, "page", "pages")))
	}
	fmt.Fprintf(out, "Finished in %s\n", ui.Elapsed(elapsed))

	if cfg.ReportFile != "" {
		rep := newReport(input, output, conv, elapsed)
		if err := writeReport(cfg.ReportFile, rep); err != nil {
			return newError(ErrFileWriteError, err, "Check report_file in the config")
		}
		logger.Debug("wrote report", "path", cfg.ReportFile)
	}
	return nil
}

// convert runs the pipeline: load, resolve, build pages, emit.
func convert(logger *log.Logger, input, output string, opts pages.EmitOptions) (*conversion, error) {
	p := newProgress(logger)
	g := graph.New(logger)
	if err := g.LoadFile(input); err != nil {
		return nil, newError(ErrExportParse, err, "Check that the file is a complete JSON export")
	}
	g.BuildAll()
	st := g.Stats()
	p.done(fmt.Sprintf("Resolved %d nodes from %d records", st.Nodes, st.Records))

	p = newProgress(logger)
	pb := pages.NewBuilder(g, logger)
	if err := pb.BuildAll(); err != nil {
		return nil, newError(ErrGraphBuild, err, "")
	}
	conv := &conversion{Graph: st, Blocks: len(pb.Blocks()), Pages: len(pb.Pages())}
	p.done(fmt.Sprintf("Built %d blocks, %d pages", conv.Blocks, conv.Pages))

	p = newProgress(logger)
	res, err := pb.Emit(output, opts)
	if err != nil {
		return nil, newError(ErrFileWriteError, err, "")
	}
	conv.Emit = res
	p.done(fmt.Sprintf("Wrote %d files", len(res.Written)))
	return conv, nil
}
