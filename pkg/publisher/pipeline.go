package publisher

import (
	"context"
)

// Pipeline reads the complete ordered page list, then publishes it.
type Pipeline struct {
	Reader    *Reader
	Publisher *Publisher
}

// RunResult counts the pages read and the artifacts written by one run.
type RunResult struct {
	Pages   int
	Written int
}

// Run reads every page, then publishes them. A store failure aborts the run
// before the output directory is touched.
func (p *Pipeline) Run(ctx context.Context, baseURL, outputDir string) (RunResult, error) {
	pages, err := p.Reader.FetchOrderedPages(ctx)
	if err != nil {
		return RunResult{}, err
	}
	written, err := p.Publisher.PublishAll(ctx, pages, baseURL, outputDir)
	return RunResult{Pages: len(pages), Written: written}, err
}
