package config

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagBase    = flag.String("base", "", "Base position as x,y,z in meters")
	flagCluster = flag.String("cluster", "", "Cluster origin as x,y,z in meters")
	flagHTML    = flag.String("html", "", "Write the HTML chart to this path")
	flagPNG     = flag.String("png", "", "Write the PNG chart to this path")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// Args returns the positional arguments left after flag parsing.
func Args() []string {
	return flag.Args()
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) error {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagBase != "" {
		v, err := ParseTriple(*flagBase)
		if err != nil {
			return fmt.Errorf("-base: %w", err)
		}
		cfg.Geometry.Base = v
	}
	if *flagCluster != "" {
		v, err := ParseTriple(*flagCluster)
		if err != nil {
			return fmt.Errorf("-cluster: %w", err)
		}
		cfg.Geometry.ClusterOrigin = v
	}
	if *flagHTML != "" {
		cfg.Chart.HTMLPath = *flagHTML
	}
	if *flagPNG != "" {
		cfg.Chart.PNGPath = *flagPNG
	}
	return nil
}

// ParseTriple parses "x,y,z" into three floats. Whitespace around each
// component is ignored.
func ParseTriple(s string) ([3]float64, error) {
	var out [3]float64
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return out, fmt.Errorf("want x,y,z, got %q", s)
	}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return out, fmt.Errorf("component %d of %q: %w", i, s, err)
		}
		out[i] = f
	}
	return out, nil
}
