// Command intersect finds the points where line segments, or the edges of two
// polygons, cross.
//
//	intersect segment 0 0 2 2 0 2 2 0
//	intersect scan < two_polygons.txt
//	intersect scan --svg shapes.svg --png out.png --imgcat
//	intersect batch pairs.yaml --workers 4
//
// Polygons on stdin are newline separated points in the form "x y", with each
// polygon separated by an extra newline.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/golang/glog"
	"github.com/osuushi/intersections"
	"github.com/osuushi/intersections/advanced"
	"github.com/osuushi/intersections/batch"
	"github.com/osuushi/intersections/dbg"
	"github.com/osuushi/intersections/polyio"
	"github.com/osuushi/intersections/render"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	// glog registers its flags on the standard flag set, but kingpin owns the
	// command line. Output goes to stderr so stdout only carries results, and
	// the level comes from --verbosity.
	flag.Set("logtostderr", "true")
	flag.CommandLine.Parse(nil)
	defer glog.Flush()

	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "intersect:", err)
		glog.Flush()
		os.Exit(1)
	}
}

type cli struct {
	app       *kingpin.Application
	debug     *bool
	color     *bool
	verbosity *int

	segment struct {
		cmd    *kingpin.CmdClause
		coords *[]float64
	}

	scan struct {
		cmd    *kingpin.CmdClause
		svg    *string
		format *string
		png    *string
		imgcat *bool
		scale  *float64
	}

	batch struct {
		cmd     *kingpin.CmdClause
		file    *string
		workers *int
	}
}

func newCLI(stderr io.Writer) *cli {
	c := &cli{}
	c.app = kingpin.New("intersect", "Find intersections between segments and polygon edges.")
	c.app.UsageWriter(stderr)
	c.app.ErrorWriter(stderr)
	c.debug = c.app.Flag("debug", "Dump parsed input to the log.").Bool()
	c.color = c.app.Flag("color", "Color text output.").Default("true").Bool()
	c.verbosity = c.app.Flag("verbosity", "Log verbosity; 1 traces every scan.").Short('v').Envar("INTERSECT_V").Default("0").Int()

	c.segment.cmd = c.app.Command("segment", "Intersect segment (x1,y1)-(x2,y2) with segment (x3,y3)-(x4,y4).")
	c.segment.coords = c.segment.cmd.Arg("coords", "x1 y1 x2 y2 x3 y3 x4 y4").Required().Float64List()

	c.scan.cmd = c.app.Command("scan", "Find every crossing between the edges of two polygons.")
	c.scan.svg = c.scan.cmd.Flag("svg", "Read the first two <polygon> elements of an SVG file instead of stdin.").ExistingFile()
	c.scan.format = c.scan.cmd.Flag("format", "Output format.").Envar("INTERSECT_FORMAT").Default("text").Enum("text", "yaml")
	c.scan.png = c.scan.cmd.Flag("png", "Render the polygons and intersections to this PNG file.").String()
	c.scan.imgcat = c.scan.cmd.Flag("imgcat", "Print the rendering inline in the terminal (needs --png).").Bool()
	c.scan.scale = c.scan.cmd.Flag("scale", "Pixels per unit for --png.").Default("100").Float64()

	c.batch.cmd = c.app.Command("batch", "Scan every polygon pair listed in a YAML file.")
	c.batch.file = c.batch.cmd.Arg("file", "YAML batch file.").Required().ExistingFile()
	c.batch.workers = c.batch.cmd.Flag("workers", "Concurrent scans; 0 means one per CPU.").Envar("INTERSECT_WORKERS").Default("0").Int()
	return c
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	c := newCLI(os.Stderr)
	command, err := c.app.Parse(args)
	if err != nil {
		return err
	}
	dbg.SetColors(*c.color)
	if err := flag.Set("v", strconv.Itoa(*c.verbosity)); err != nil {
		return errors.Wrap(err, "setting log verbosity")
	}

	switch command {
	case c.segment.cmd.FullCommand():
		return c.runSegment(stdout)
	case c.scan.cmd.FullCommand():
		return c.runScan(stdin, stdout)
	case c.batch.cmd.FullCommand():
		return c.runBatch(ctx, stdout)
	}
	return errors.Errorf("unknown command %q", command)
}

func (c *cli) runSegment(stdout io.Writer) error {
	coords := *c.segment.coords
	if len(coords) != 8 {
		return errors.Errorf("segment needs 8 coordinates, got %d", len(coords))
	}
	point, ok := intersections.FindIntersection(
		coords[0], coords[1], coords[2], coords[3],
		coords[4], coords[5], coords[6], coords[7],
	)
	if !ok {
		fmt.Fprintln(stdout, dbg.Missing("none"))
		return nil
	}
	fmt.Fprintln(stdout, dbg.Found(polyio.FormatFlat([]float64{point.X, point.Y})))
	return nil
}

func (c *cli) runScan(stdin io.Reader, stdout io.Writer) error {
	polygons, err := c.readPolygons(stdin)
	if err != nil {
		return err
	}
	if len(polygons) < 2 {
		return errors.Errorf("scan needs two polygons, got %d", len(polygons))
	}
	if len(polygons) > 2 {
		glog.Warningf("read %d polygons, only the first two are scanned", len(polygons))
	}
	a, b := polygons[0], polygons[1]
	for _, poly := range []*advanced.Polygon{&a, &b} {
		if poly.Name == "" {
			poly.Name = dbg.Name(poly)
		}
	}
	if *c.debug {
		glog.Infof("polygons:\n%s\n%s", dbg.Dump(a), dbg.Dump(b))
	}

	flat, err := intersections.FindAllIntersections(a.Flatten(), b.Flatten())
	if err != nil {
		return err
	}
	glog.V(1).Infof("%s x %s: %d intersections", a.Name, b.Name, len(flat)/2)

	if *c.scan.png != "" {
		if err := c.render(a, b, flat, stdout); err != nil {
			return err
		}
	}

	if *c.scan.format == "yaml" {
		return polyio.WriteReport(stdout, &polyio.Report{Pairs: []polyio.PairReport{{
			Name:          a.Name + " x " + b.Name,
			Count:         len(flat) / 2,
			Intersections: flat,
		}}})
	}

	if len(flat) == 0 {
		fmt.Fprintln(stdout, dbg.Missing("none"))
		return nil
	}
	for i := 0; i < len(flat); i += 2 {
		fmt.Fprintln(stdout, dbg.Found(polyio.FormatFlat(flat[i:i+2])))
	}
	return nil
}

func (c *cli) readPolygons(stdin io.Reader) ([]advanced.Polygon, error) {
	if *c.scan.svg == "" {
		return polyio.ReadLines(stdin)
	}
	f, err := os.Open(*c.scan.svg)
	if err != nil {
		return nil, errors.Wrap(err, "opening svg")
	}
	defer f.Close()
	return polyio.ReadSVG(f)
}

func (c *cli) render(a, b advanced.Polygon, flat []float64, stdout io.Writer) error {
	var points advanced.IntersectionList
	for i := 0; i+1 < len(flat); i += 2 {
		points = append(points, advanced.Point{X: flat[i], Y: flat[i+1]})
	}
	opts := render.DefaultOptions()
	opts.Scale = *c.scan.scale
	img, err := render.Draw(a, b, points, opts)
	if err != nil {
		return err
	}
	if err := render.SavePNG(*c.scan.png, img); err != nil {
		return err
	}
	glog.V(1).Infof("wrote %s", *c.scan.png)
	if *c.scan.imgcat {
		return render.Cat(*c.scan.png, stdout)
	}
	return nil
}

func (c *cli) runBatch(ctx context.Context, stdout io.Writer) error {
	f, err := os.Open(*c.batch.file)
	if err != nil {
		return errors.Wrap(err, "opening batch file")
	}
	defer f.Close()

	file, err := polyio.ReadBatch(f)
	if err != nil {
		return errors.Wrap(err, *c.batch.file)
	}
	if *c.debug {
		glog.Infof("batch:\n%s", dbg.Dump(file))
	}

	runner := batch.New(*c.batch.workers)
	glog.V(1).Infof("scanning %d pairs with %d workers", len(file.Pairs), runner.Workers())
	report, err := runner.Run(ctx, file.Pairs)
	if err != nil {
		return err
	}

	failed := 0
	for _, pair := range report.Pairs {
		if pair.Error != "" {
			failed++
		}
	}
	if failed > 0 {
		glog.Warningf("%d of %d pairs had invalid input", failed, len(report.Pairs))
	}
	return polyio.WriteReport(stdout, report)
}
