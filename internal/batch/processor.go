package batch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"rgb-magnifier/internal/imageio"
	"rgb-magnifier/internal/pipeline"
)

// Config holds all shared settings for a batch run.
type Config struct {
	OutputDir string
	Format    string // output extension: webp, png or tga
	Options   pipeline.Options
	Workers   int
	Progress  io.Writer // periodic progress lines; nil disables them
	Interval  time.Duration
}

// Result holds the outcome of processing one input file.
type Result struct {
	Input   string
	Output  string
	Width   int // display width
	Height  int // display height
	Success bool
	Error   string
}

// Run renders every input to a display image using a worker pool.
// Results are returned in input order.
func Run(cfg Config, inputs []string) []Result {
	total := len(inputs)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = 2 * time.Second
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress != nil {
		go func() {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						rate := float64(p) / time.Since(start).Seconds()
						fmt.Fprintf(cfg.Progress, "  [%d/%d] %.1f images/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	outputs := OutputPaths(cfg.OutputDir, inputs, cfg.Format)

	// Worker pool
	jobs := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = processInput(cfg, inputs[idx], outputs[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range inputs {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	close(done)

	return results
}

// OutputPath returns where the rendered image for input is written when
// no other input in the batch shares its name.
func OutputPath(outputDir, input, format string) string {
	return filepath.Join(outputDir, stem(input)+"."+format)
}

// OutputPaths assigns every input a distinct output path. Inputs whose
// names collide (x/a.rgb and y/a.rgb, a.rgb and a.rgb.zst) get -2, -3, ...
// suffixes in input order.
func OutputPaths(outputDir string, inputs []string, format string) []string {
	outputs := make([]string, len(inputs))
	used := make(map[string]bool, len(inputs))
	for i, input := range inputs {
		base := stem(input)
		path := OutputPath(outputDir, input, format)
		for n := 2; used[path]; n++ {
			path = filepath.Join(outputDir, fmt.Sprintf("%s-%d.%s", base, n, format))
		}
		used[path] = true
		outputs[i] = path
	}
	return outputs
}

func stem(input string) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, ".zst")
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func processInput(cfg Config, input, output string) Result {
	res := Result{Input: input, Output: output}

	opts := cfg.Options
	opts.WindowSize = 0
	out, err := pipeline.Run(input, opts)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	display := out.Display()
	res.Width, res.Height = display.Width, display.Height

	if err := os.MkdirAll(filepath.Dir(res.Output), 0755); err != nil {
		res.Error = err.Error()
		return res
	}
	if err := imageio.Save(res.Output, display); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	return res
}
