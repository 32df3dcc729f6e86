package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jessevdk/go-flags"
	"github.com/venkatsvpr/lrumap/internal/loadgen"
)

const (
	defaultCapacity  = 10000
	defaultRequests  = 1000000
	defaultMeanEnd   = 100000000
	defaultDeviation = 4
)

type benchCommand struct {
	Capacity  int     `long:"capacity" description:"Cache capacity"`
	Requests  int     `long:"requests" description:"Maximum number of keys to put"`
	MeanBegin int     `long:"mean-begin" description:"First mean of the key distribution and lowest accepted key"`
	MeanEnd   int     `long:"mean-end" description:"Last mean of the key distribution and highest accepted key"`
	Deviation float64 `long:"deviation" description:"Standard deviation of the key distribution"`
	Seed      uint64  `long:"seed" description:"Random seed; 0 picks one from the clock"`
	All       bool    `long:"all" description:"Run every index and sequence combination"`
	Backing   backing `group:"Backing"`

	global *globalOptions
	out    io.Writer
}

func newBenchCommand(global *globalOptions) *benchCommand {
	return &benchCommand{
		Capacity:  defaultCapacity,
		Requests:  defaultRequests,
		MeanEnd:   defaultMeanEnd,
		Deviation: defaultDeviation,
		global:    global,
		out:       os.Stdout,
	}
}

func (x *benchCommand) Register(parser *flags.Parser) error {
	_, err := parser.AddCommand(
		"bench",
		"Time a stream of normally distributed puts",
		"Generate keys from a normal distribution whose mean walks "+
			"across the key range, then time how long the cache "+
			"takes to absorb them with put(k, k)",
		x,
	)
	return err
}

// benchResult is one timed run.
type benchResult struct {
	backing backing
	puts    int
	elapsed time.Duration
	len     int
}

func (x *benchCommand) Execute(_ []string) error {
	if err := setupLogging(x.out, x.global.DebugLevel); err != nil {
		return err
	}

	seed := x.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	cfg := loadgen.Config{
		Requests:  x.Requests,
		MeanBegin: x.MeanBegin,
		MeanEnd:   x.MeanEnd,
		Deviation: x.Deviation,
		Seed:      seed,
	}

	log.Infof("Generating up to %s keys in [%d, %d], deviation=%v, "+
		"seed=%d", humanize.Comma(int64(x.Requests)), x.MeanBegin,
		x.MeanEnd, x.Deviation, seed)

	keys, err := loadgen.Generate(cfg)
	if err != nil {
		return err
	}

	log.Debugf("Generated %s keys", humanize.Comma(int64(len(keys))))

	backings := []backing{x.Backing}
	if x.All {
		backings = allBackings()
	}

	results := make([]benchResult, 0, len(backings))
	for _, b := range backings {
		res, err := x.run(b, keys)
		if err != nil {
			return fmt.Errorf("%v: %w", b, err)
		}
		results = append(results, res)
	}

	x.report(results)
	return nil
}

// run times put(k, k) for every key on a fresh cache.
func (x *benchCommand) run(b backing, keys []int) (benchResult, error) {
	c, err := b.newCache(x.Capacity)
	if err != nil {
		return benchResult{}, err
	}

	log.Infof("Running %v cache, capacity=%s", b,
		humanize.Comma(int64(x.Capacity)))

	start := time.Now()
	for _, k := range keys {
		c.Put(k, k)
	}
	elapsed := time.Since(start)

	return benchResult{
		backing: b,
		puts:    len(keys),
		elapsed: elapsed,
		len:     c.Len(),
	}, nil
}

func (x *benchCommand) report(results []benchResult) {
	t := table.NewWriter()
	t.SetOutputMirror(x.out)
	t.AppendHeader(table.Row{
		"Backing", "Capacity", "Puts", "Elapsed", "Puts/sec", "Len",
	})

	for _, r := range results {
		rate := "-"
		if secs := r.elapsed.Seconds(); secs > 0 {
			rate = humanize.Comma(int64(float64(r.puts) / secs))
		}
		t.AppendRow(table.Row{
			r.backing.String(),
			humanize.Comma(int64(x.Capacity)),
			humanize.Comma(int64(r.puts)),
			r.elapsed.String(),
			rate,
			humanize.Comma(int64(r.len)),
		})
	}

	t.Render()
}
