package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/liblightfit/config"
	"github.com/sgostarter/liblightfit/fit"
	"github.com/sgostarter/liblightfit/session"
	"github.com/spf13/cast"
)

const usage = `usage: lightfit [-config file] [-data dir] <command> [args]

commands:
  add <wavelengths> <frequencies>   add one reading, values separated by spaces
  list                              print stored readings
  fit [-reading n] [-degree d]      fit one reading (1-based) or all points pooled (n = 0)
  estimate [-pooled]                speed of light per reading, or from all points
  plot [-degrees 1,2,3] [-samples n] print plot data as json
`

func main() {
	var (
		configFile string
		dataDir    string
	)

	flag.StringVar(&configFile, "config", "", "yaml config file")
	flag.StringVar(&dataDir, "data", ".lightfit", "directory of the reading file when no config is given")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
	}
	flag.Parse()

	logger := l.NewConsoleLoggerWrapper()

	cfg, err := loadConfig(configFile, dataDir)
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Fatal("load config failed")
	}

	s, closer, err := config.Open(cfg, logger)
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Fatal("open session failed")
	}
	defer closer()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err = run(s, args[0], args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		closer()
		os.Exit(1)
	}
}

func loadConfig(configFile, dataDir string) (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}

	cfg := &config.Config{
		Storage: config.StorageConfig{
			Type: config.StorageFile,
			Root: dataDir,
		},
	}

	if err := cfg.Normalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func run(s *session.Session, cmd string, args []string) error {
	switch cmd {
	case "add":
		return cmdAdd(s, args)
	case "list":
		return cmdList(s)
	case "fit":
		return cmdFit(s, args)
	case "estimate":
		return cmdEstimate(s, args)
	case "plot":
		return cmdPlot(s, args)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func cmdAdd(s *session.Session, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("add needs two quoted value lists")
	}

	_, echo, err := s.AddReading(args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Println(echo)

	return nil
}

func cmdList(s *session.Session) error {
	rs, err := s.Readings()
	if err != nil {
		return err
	}

	labels := s.Config().Labels

	for idx, r := range rs {
		fmt.Printf("Reading %d\n  %s: %v\n  %s: %v\n", idx+1, labels.X, r.X, labels.Y, r.Y)
	}

	return nil
}

func cmdFit(s *session.Session, args []string) error {
	fs := flag.NewFlagSet("fit", flag.ContinueOnError)
	n := fs.Int("reading", 0, "1-based reading number, 0 fits all points")
	degree := fs.Int("degree", 1, "polynomial degree")

	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		res fit.Result
		err error
	)

	if *n == 0 {
		res, err = s.FitPooled(*degree)
	} else {
		res, err = s.Fit(*n-1, *degree)
	}

	if err != nil {
		return err
	}

	ss := make([]string, 0, len(res.Coeffs))
	for _, c := range res.Coeffs {
		ss = append(ss, fit.FormatScientificPrec(c, s.Config().Precision))
	}

	fmt.Printf("degree %d over %d points, coefficients (highest power first): %s\n",
		res.Degree, res.Points, strings.Join(ss, ", "))

	return nil
}

func cmdEstimate(s *session.Session, args []string) error {
	fs := flag.NewFlagSet("estimate", flag.ContinueOnError)
	pooled := fs.Bool("pooled", false, "fit all points together")

	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		summary string
		err     error
	)

	if *pooled {
		summary, err = s.PooledSummary()
	} else {
		summary, err = s.Summary()
	}

	if err != nil {
		return err
	}

	fmt.Println(summary)

	return nil
}

func cmdPlot(s *session.Session, args []string) error {
	fs := flag.NewFlagSet("plot", flag.ContinueOnError)
	degreesS := fs.String("degrees", "", "comma separated trendline degrees, empty for the configured ones")
	samples := fs.Int("samples", 0, "points per trendline")

	if err := fs.Parse(args); err != nil {
		return err
	}

	var degrees []int

	if *degreesS != "" {
		for _, d := range strings.Split(*degreesS, ",") {
			degree, err := cast.ToIntE(strings.TrimSpace(d))
			if err != nil {
				return fmt.Errorf("bad degree %q", d)
			}

			degrees = append(degrees, degree)
		}
	}

	pd, err := s.PlotData(degrees, *samples)
	if err != nil {
		return err
	}

	d, err := json.MarshalIndent(pd, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(d))

	return nil
}
