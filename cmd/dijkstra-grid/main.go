// Command dijkstra-grid finds the cheapest corner-to-corner path through a
// fixed 7×7 weighted grid and prints the path, its total weight and the
// time the search took.
//
// Usage:
//
//	dijkstra-grid [-o text|yaml] [-v]
package main

import (
	"errors"
	"io"
	"os"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazepath/dijkstra"
	"github.com/katalvlaran/mazepath/internal/report"
	"github.com/katalvlaran/mazepath/internal/samples"
)

type cliArgs struct {
	format  report.Format
	verbose bool
}

func parseCliArgs(argv []string) (cliArgs, error) {
	args := cliArgs{format: report.Text}
	opts, _, err := getopt.Getopts(argv, "o:v")
	if err != nil {
		return args, err
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'o':
			if args.format, err = report.ParseFormat(opt.Value); err != nil {
				return args, err
			}
		case 'v':
			args.verbose = true
		}
	}

	return args, nil
}

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if err := run(os.Args, os.Stdout, log); err != nil {
		log.Fatal(err)
	}
}

// run searches the sample weighted grid and writes the report to stdout.
// A missing or unreachable end is reported as "No path found." and is not
// an error.
func run(argv []string, stdout io.Writer, log *logrus.Logger) error {
	args, err := parseCliArgs(argv)
	if err != nil {
		return err
	}
	if args.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	rep := report.New("dijkstra")
	entry := log.WithFields(logrus.Fields{
		"run_id":    rep.RunID,
		"algorithm": rep.Algorithm,
	})

	g := samples.Weighted()

	var res *dijkstra.Result
	err = rep.Time(func() error {
		var searchErr error
		res, searchErr = dijkstra.Dijkstra(g, dijkstra.WithLogger(entry))
		return searchErr
	})
	switch {
	case err == nil:
		rep.SetPath(res.Path.String())
		rep.SetWeight(res.TotalWeight)
	case errors.Is(err, dijkstra.ErrEndNotFound),
		errors.Is(err, dijkstra.ErrStartNotFound),
		errors.Is(err, dijkstra.ErrNoPath):
		// already logged by the search; the report says "No path found."
	default:
		return err
	}

	return rep.Write(stdout, args.format)
}
