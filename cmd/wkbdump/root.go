package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/oy3o/wkb"
	"github.com/oy3o/wkb/geom"
)

type config struct {
	file     string
	lenient  bool
	maxDepth int
	verbose  bool
	tree     bool
	reencode string
	extended bool
}

func newRootCmd(logger *logrus.Logger) *cobra.Command {
	var c config
	cmd := &cobra.Command{
		Use:   "wkbdump [hex...]",
		Short: "Decode hex WKB and describe the geometries.",
		Long: `Decode one hex-encoded WKB geometry per argument, or per input line when
no arguments are given, and print its type, SRID, dimension and bounds.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if c.verbose {
				logger.SetLevel(logrus.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, logger, &c, args)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&c.file, "file", "f", "", "read hex lines from `path` instead of stdin")
	f.BoolVar(&c.lenient, "lenient", false, "disable structural validity checks")
	f.IntVar(&c.maxDepth, "max-depth", wkb.MaxDepth, "maximum nested collection depth")
	f.BoolVarP(&c.verbose, "verbose", "v", false, "log decode failures in detail")
	f.BoolVar(&c.tree, "tree", false, "print every node of the geometry tree")
	f.StringVar(&c.reencode, "reencode", "", "print the geometry re-encoded as `ndr` or `xdr` hex")
	f.BoolVar(&c.extended, "extended", false, "re-encode as extended WKB with the SRID")
	return cmd
}

func run(cmd *cobra.Command, logger *logrus.Logger, c *config, args []string) error {
	opts := []wkb.Option{wkb.WithMaxDepth(c.maxDepth), wkb.WithLogger(logger)}
	if c.lenient {
		opts = append(opts, wkb.WithChecks(wkb.CheckNone))
	}
	dec := wkb.NewDecoder(opts...)

	inputs := args
	if len(inputs) == 0 {
		var r io.Reader = cmd.InOrStdin()
		if c.file != "" {
			fh, err := os.Open(c.file)
			if err != nil {
				return err
			}
			defer fh.Close()
			r = fh
		}
		lines, err := readLines(r)
		if err != nil {
			return err
		}
		inputs = lines
	}

	out := cmd.OutOrStdout()
	failed := 0
	for i, in := range inputs {
		g, err := dec.DecodeHex(in)
		if err != nil {
			failed++
			logger.WithError(err).WithField("input", i+1).Error("decode failed")
			continue
		}
		if g == nil {
			fmt.Fprintf(out, "%d: <nil>\n", i+1)
			continue
		}
		describe(out, i+1, g, c.tree)
		if c.reencode != "" {
			if err := reencode(out, g, c); err != nil {
				failed++
				logger.WithError(err).WithField("input", i+1).Error("encode failed")
			}
		}
		g.Destroy()
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(inputs))
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}

func describe(w io.Writer, n int, g *geom.Geometry, tree bool) {
	fmt.Fprintf(w, "%d: %s dim=%d closed=%t\n", n, g, g.Dimension(), g.IsClosed())
	if box, ok := g.ComputeBBox(); ok {
		fmt.Fprintf(w, "   bbox=(%g %g, %g %g)\n", box.Min.X, box.Min.Y, box.Max.X, box.Max.Y)
	}
	if !tree {
		return
	}
	var walk func(g *geom.Geometry, depth int)
	walk = func(g *geom.Geometry, depth int) {
		fmt.Fprintf(w, "   %s%s\n", strings.Repeat("  ", depth), g)
		for _, c := range g.Geoms {
			walk(c, depth+1)
		}
	}
	walk(g, 0)
}

func reencode(w io.Writer, g *geom.Geometry, c *config) error {
	order := wkb.NDR
	switch strings.ToLower(c.reencode) {
	case "ndr":
	case "xdr":
		order = wkb.XDR
	default:
		return fmt.Errorf("unknown byte order %q", c.reencode)
	}
	var opts []wkb.EncodeOption
	if c.extended {
		opts = append(opts, wkb.WithExtended())
	}
	s, err := wkb.EncodeHex(g, order, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "   %s\n", s)
	return nil
}
