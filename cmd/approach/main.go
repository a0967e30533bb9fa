// Command approach computes how close two points moving in straight lines
// come to each other during one time step.
//
// Usage:
//
//	approach                                print the built-in examples
//	approach [--] px py ux uy qx qy vx vy   evaluate one query; -- allows a negative px
//	approach -i                             read one query per line from stdin
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tomz197/closestapproach/internal/config"
	"github.com/tomz197/closestapproach/internal/input"
	"github.com/tomz197/closestapproach/internal/logging"
	"github.com/tomz197/closestapproach/internal/physics"
	"github.com/tomz197/closestapproach/internal/session"
	"golang.org/x/term"
)

// examples are the two reference queries printed when no arguments are given.
var examples = []input.Query{
	{P: mgl64.Vec2{0, 0}, U: mgl64.Vec2{7, 0}, Q: mgl64.Vec2{0, 2}, V: mgl64.Vec2{6, -1}},
	{P: mgl64.Vec2{0, 0}, U: mgl64.Vec2{1, 1}, Q: mgl64.Vec2{2, 0}, V: mgl64.Vec2{-1, 1}},
}

func main() {
	var (
		interactive = flag.Bool("i", false, "read queries from stdin, one per line")
		trace       = flag.Bool("trace", config.GetEnvBool(config.EnvTrace, false), "log intermediate values of every query")
		radius      = flag.Float64("radius", config.GetEnvFloat(config.EnvRadius, config.DefaultRadius), "report whether the points come within this distance")
	)
	flag.Parse()

	level := config.GetEnv(config.EnvLogLevel, config.DefaultLogLevel)
	if *trace {
		level = "debug"
	}
	logger := logging.New(os.Stderr, logging.Options{
		Level:  level,
		Logfmt: config.GetEnv(config.EnvLogFormat, config.DefaultLogFormat) == "logfmt",
	})

	opts := session.Options{
		Calculator: physics.Calculator{Logger: logger},
		Radius:     *radius,
	}

	if err := run(flag.Args(), *interactive, opts, os.Stdin, os.Stdout); err != nil {
		logger.Error("approach failed", "err", err)
		os.Exit(1)
	}
}

func run(args []string, interactive bool, opts session.Options, in io.Reader, out io.Writer) error {
	switch {
	case interactive:
		if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			opts.Prompt = config.Prompt
		}
		return session.Run(session.NewScanner(in), out, opts)
	case len(args) == 0:
		for _, q := range examples {
			if _, err := fmt.Fprintln(out, session.Format(q, opts)); err != nil {
				return err
			}
		}
		return nil
	default:
		q, err := input.ParseArgs(args)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, session.Format(q, opts))
		return err
	}
}
