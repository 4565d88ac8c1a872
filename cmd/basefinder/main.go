// basefinder estimates where a lighthouse base is from which sensors of a
// 32-sensor cluster it lights.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/Faultbox/basefinder/internal/chart"
	"github.com/Faultbox/basefinder/internal/config"
	"github.com/Faultbox/basefinder/internal/estimate"
	"github.com/Faultbox/basefinder/internal/logger"
	"github.com/Faultbox/basefinder/pkg/math"
)

func main() {
	flag.Usage = printUsage
	config.ParseFlags()

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	args = args[1:]

	if command == "config" {
		cmdConfig(args)
		return
	}

	var run func(*config.Config)
	switch command {
	case "estimate", "run":
		run = cmdEstimate
	case "visibility", "vis":
		run = cmdVisibility
	case "chart":
		run = cmdChart
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fail(err)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fail(err)
	}
	defer logger.Sync()

	run(cfg)
}

func printUsage() {
	fmt.Println(`basefinder - lighthouse base bearing and range estimator

Usage:
  basefinder [flags] <command> [args]

Commands:
  estimate             Estimate the base bearing and range
  visibility           Print the per-sensor visibility table
  chart                Write the az/el chart (HTML and/or PNG)
  config init [path]   Write the default config file
  help                 Show this help

Flags:
  -config <file>       Config file (default ./basefinder.yaml or user config dir)
  -debug               Enable debug logging
  -base x,y,z          Base position in meters
  -cluster x,y,z       Cluster origin in meters
  -html <file>         HTML chart output
  -png <file>          PNG chart output

Examples:
  basefinder estimate
  basefinder -cluster 1.0852,0.0171,0.0464 estimate
  basefinder -png bearings.png chart
  basefinder config init ./basefinder.yaml`)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func newEstimator(cfg *config.Config) *estimate.Estimator {
	cluster, err := cfg.Geometry.Cluster()
	if err != nil {
		fail(err)
	}
	return estimate.New(
		estimate.WithCluster(cluster),
		estimate.WithThresholds(cfg.Thresholds.EstimateThresholds()),
		estimate.WithLogger(logger.Log.Named("estimate")),
	)
}

func cmdEstimate(cfg *config.Config) {
	est := newEstimator(cfg)
	pose := cfg.Geometry.Pose()
	base := cfg.Geometry.BaseVec()

	res, err := est.Run(pose, base)
	printEstimate(os.Stdout, res, pose.Origin)
	if err != nil {
		fail(err)
	}
	logger.Info("estimate complete", zap.Float64("distance_m", res.Range.Distance()))
}

func printEstimate(w io.Writer, res estimate.Result, origin math.Vec3) {
	obs := res.Observation
	fmt.Fprintf(w, "Base:          %s\n", formatVec(obs.Base))
	fmt.Fprintf(w, "Cluster:       %s\n", formatVec(origin))
	fmt.Fprintf(w, "Visible:       %d of %d\n", obs.VisibleCount(), len(obs.Records))
	if res.Bearing.Lit == 0 {
		return
	}
	fmt.Fprintf(w, "Lit samples:   %d\n", res.Bearing.Lit)
	fmt.Fprintf(w, "Mean bearing:  %s (|m| %.4f)\n", formatVec(res.Bearing.Mean), res.Bearing.Mean.Length())
	fmt.Fprintf(w, "Bearing pos:   %s\n", formatVec(res.Bearing.Position))

	r := res.Range
	if r.Factor == 0 {
		return
	}
	fmt.Fprintf(w, "Baseline:      sensors %d and %d\n", r.Baseline.A, r.Baseline.B)
	fmt.Fprintf(w, "Measured:      %.4f°\n", math.Deg(r.Baseline.MeasuredAngle))
	fmt.Fprintf(w, "Estimated:     %.4f°\n", math.Deg(r.EstimatedAngle))
	fmt.Fprintf(w, "Factor:        %.4f\n", r.Factor)
	fmt.Fprintf(w, "Position:      %s\n", formatVec(r.Position))
	fmt.Fprintf(w, "Range:         %.4f m\n", r.Distance())
}

func cmdVisibility(cfg *config.Config) {
	obs := newEstimator(cfg).Observe(cfg.Geometry.Pose(), cfg.Geometry.BaseVec())
	printVisibility(os.Stdout, obs)
}

func printVisibility(w io.Writer, obs estimate.Observation) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Sensor\tAz°\tEl°\tAoI°\tPower\tVisible\t")
	for _, r := range obs.Records {
		vis := "NO"
		if r.Visible {
			vis = "YES"
		}
		fmt.Fprintf(tw, "%d\t%.2f\t%.2f\t%.2f\t%.3f\t%s\t\n",
			r.Index, r.Spherical.AzimuthDeg(), r.Spherical.ElevationDeg(), math.Deg(r.AoI), r.RelativePower, vis)
	}
	tw.Flush()
	fmt.Fprintf(w, "\n%d of %d sensors visible\n", obs.VisibleCount(), len(obs.Records))
}

func cmdChart(cfg *config.Config) {
	if cfg.Chart.HTMLPath == "" && cfg.Chart.PNGPath == "" {
		fail(errors.New("no chart output configured (use -html or -png)"))
	}

	obs := newEstimator(cfg).Observe(cfg.Geometry.Pose(), cfg.Geometry.BaseVec())
	points := obs.Points()
	opts := cfg.Chart.Options()

	if path := cfg.Chart.HTMLPath; path != "" {
		f, err := os.Create(path)
		if err != nil {
			fail(err)
		}
		err = chart.RenderHTML(f, points, opts)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			fail(err)
		}
		fmt.Printf("Wrote %s\n", path)
	}

	if path := cfg.Chart.PNGPath; path != "" {
		if err := chart.SavePNG(path, points, opts); err != nil {
			fail(err)
		}
		fmt.Printf("Wrote %s\n", path)
	}
}

func cmdConfig(args []string) {
	if len(args) < 1 || args[0] != "init" {
		fmt.Fprintln(os.Stderr, "Usage: basefinder config init [path]")
		os.Exit(1)
	}

	cfg := config.Default()
	if len(args) > 1 {
		if err := cfg.SaveTo(args[1]); err != nil {
			fail(err)
		}
		fmt.Printf("Wrote %s\n", args[1])
		return
	}
	path, err := cfg.Save()
	if err != nil {
		fail(err)
	}
	fmt.Printf("Wrote %s\n", path)
}

func formatVec(v math.Vec3) string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", v.X, v.Y, v.Z)
}
