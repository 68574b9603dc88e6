// Command bfs-maze solves a fixed 7×7 maze with breadth-first search and
// prints the shortest move sequence and the time it took.
//
// Usage:
//
//	bfs-maze [-s pruned|exhaustive] [-d maxdepth] [-o text|yaml] [-v]
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/internal/report"
	"github.com/katalvlaran/mazepath/internal/samples"
)

type cliArgs struct {
	strategy bfs.Strategy
	maxDepth int
	format   report.Format
	verbose  bool
}

func parseCliArgs(argv []string) (cliArgs, error) {
	args := cliArgs{strategy: bfs.Pruned, format: report.Text}
	opts, _, err := getopt.Getopts(argv, "s:d:o:v")
	if err != nil {
		return args, err
	}
	for _, opt := range opts {
		switch opt.Option {
		case 's':
			if args.strategy, err = bfs.ParseStrategy(opt.Value); err != nil {
				return args, err
			}
		case 'd':
			if args.maxDepth, err = strconv.Atoi(opt.Value); err != nil {
				return args, fmt.Errorf("-d %q: %w", opt.Value, err)
			}
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

// run searches the sample maze and writes the report to stdout.
// A maze without a path still counts as a successful run.
func run(argv []string, stdout io.Writer, log *logrus.Logger) error {
	args, err := parseCliArgs(argv)
	if err != nil {
		return err
	}
	if args.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	rep := report.New("bfs")
	rep.Strategy = args.strategy.String()
	entry := log.WithFields(logrus.Fields{
		"run_id":    rep.RunID,
		"algorithm": rep.Algorithm,
		"strategy":  rep.Strategy,
	})

	g := samples.Maze()
	mazeLog := entry.WithField("size", fmt.Sprintf("%dx%d", g.Width, g.Height))
	mazeLog.Debug("maze loaded")
	for y, row := range samples.MazeRows() {
		mazeLog.WithField("y", y).Debugf("|%s|", row)
	}

	var res *bfs.Result
	err = rep.Time(func() error {
		var searchErr error
		res, searchErr = bfs.Search(g,
			bfs.WithStrategy(args.strategy),
			bfs.WithMaxDepth(args.maxDepth),
		)
		return searchErr
	})
	switch {
	case err == nil:
		rep.SetPath(res.Path.String())
		entry.WithFields(logrus.Fields{
			"expanded": res.Expanded,
			"enqueued": res.Enqueued,
		}).Debug("search finished")
	case errors.Is(err, bfs.ErrNoPath):
		entry.WithError(err).Warn("no path")
	default:
		return err
	}

	return rep.Write(stdout, args.format)
}
