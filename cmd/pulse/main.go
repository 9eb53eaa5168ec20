// Command pulse synthesizes a jittered noisy square pulse, low-pass filters
// it, flags outlying samples and renders the results.
//
// Usage:
//
//	pulse <command> [flags]
//
// Commands:
//
//	generate   noisy and ideal pulse
//	filter     noisy input above the Butterworth output
//	detect     anomalies flagged on the noisy pulse
//	report     summary statistics as a table, or JSON with -format json
//	serve      HTTP surface for figures and reports
//
// Examples:
//
//	pulse generate -out pulse.png
//	pulse filter -cutoff 20 -order 6 -format csv -out filter.csv
//	pulse detect -seed 7 -contamination 0.02 -out detect.png
//	pulse report -config pulse.yaml
//	pulse serve -addr :8080
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/rominafarhad/pulse-ai-analyzer/internal/config"
	"github.com/rominafarhad/pulse-ai-analyzer/internal/pipeline"
	"github.com/rominafarhad/pulse-ai-analyzer/internal/plot"
	"github.com/rominafarhad/pulse-ai-analyzer/internal/server"
	tstats "github.com/rominafarhad/pulse-ai-analyzer/stats/time"
)

var errUsage = errors.New("usage")

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr, log); err != nil {
		if errors.Is(err, errUsage) {
			usage(os.Stderr)
		}
		log.WithError(err).Error("pulse failed")
		stop()
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: pulse <generate|filter|detect|report|serve> [flags]\n\n")
	fmt.Fprintf(w, "Run 'pulse <command> -h' for the flags of a command.\n")
}

// options are the flags shared by every command.
type options struct {
	configPath string
	out        string
	format     string
	addr       string
	verbose    bool

	seed          int64
	noise         float64
	jitter        float64
	cutoff        float64
	order         int
	contamination float64
}

func newFlagSet(name string, o *options) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&o.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&o.out, "out", "-", "output file, - for stdout")
	fs.StringVar(&o.format, "format", "png", "figure format: png, csv or json; report prints a table unless json")
	fs.StringVar(&o.addr, "addr", "", "listen address for serve (default from config)")
	fs.BoolVar(&o.verbose, "v", false, "debug logging")

	fs.Int64Var(&o.seed, "seed", 0, "random seed")
	fs.Float64Var(&o.noise, "noise", 0, "noise std-dev")
	fs.Float64Var(&o.jitter, "jitter", 0, "timing jitter std-dev in seconds")
	fs.Float64Var(&o.cutoff, "cutoff", 0, "low-pass cutoff in Hz")
	fs.IntVar(&o.order, "order", 0, "Butterworth order")
	fs.Float64Var(&o.contamination, "contamination", 0, "expected anomaly fraction")
	return fs
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, log *logrus.Logger) error {
	if len(args) == 0 {
		return errors.Wrap(errUsage, "missing command")
	}
	cmd := args[0]
	switch cmd {
	case "generate", "filter", "detect", "report", "serve":
	default:
		return errors.Wrapf(errUsage, "unknown command %q", cmd)
	}

	var o options
	fs := newFlagSet(cmd, &o)
	fs.SetOutput(stderr)
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return errors.Wrap(err, "parse flags")
	}

	settings, err := config.Read(o.configPath)
	if err != nil {
		return err
	}
	applyFlags(fs, o, &settings)
	if err := settings.Config.Validate(); err != nil {
		return errors.Wrap(err, "invalid settings")
	}
	if err := configureLogger(log, settings.Log, o.verbose); err != nil {
		return err
	}
	log.WithField("config", fmt.Sprintf("%+v", settings.Config)).Debug("settings loaded")

	if cmd == "serve" {
		return server.New(settings.Config, log).ListenAndServe(ctx, settings.Server.Addr)
	}

	res, err := pipeline.Run(settings.Config, pipeline.WithLogger(log))
	if err != nil {
		return errors.Wrap(err, "pipeline")
	}

	w, finish, err := openOutput(o.out, stdout)
	if err != nil {
		return err
	}
	err = write(w, cmd, o.format, res)
	if cerr := finish(err); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"command": cmd, "format": o.format, "out": o.out}).Info("output written")
	return nil
}

// write renders the figure for cmd, or the report for "report".
func write(w io.Writer, cmd, format string, res *pipeline.Result) error {
	if cmd == "report" {
		rep, err := res.Report()
		if err != nil {
			return errors.Wrap(err, "report")
		}
		if format == "json" {
			return encodeJSON(w, rep)
		}
		return printReport(w, rep)
	}

	f, err := pipeline.Figure(cmd, res)
	if err != nil {
		return err
	}
	return errors.Wrapf(render(w, f, format), "render %s", cmd)
}

// applyFlags copies flags given on the command line over the settings.
func applyFlags(fs *flag.FlagSet, o options, s *config.Settings) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			s.Seed = o.seed
		case "noise":
			s.NoiseLevel = o.noise
		case "jitter":
			s.JitterAmount = o.jitter
		case "cutoff":
			s.Cutoff = o.cutoff
		case "order":
			s.Order = o.order
		case "contamination":
			s.Contamination = o.contamination
		case "addr":
			s.Server.Addr = o.addr
		}
	})
}

func configureLogger(log *logrus.Logger, cfg config.Log, verbose bool) error {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return errors.Wrap(err, "log level")
	}
	if verbose {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)
	if cfg.JSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	return nil
}

// openOutput returns stdout for an empty path or "-". Otherwise it creates
// the file; finish closes it and removes it when the write failed.
func openOutput(path string, stdout io.Writer) (w io.Writer, finish func(writeErr error) error, err error) {
	if path == "" || path == "-" {
		return stdout, func(error) error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "create output")
	}
	return f, func(writeErr error) error {
		cerr := f.Close()
		if writeErr != nil {
			os.Remove(path)
			return nil
		}
		return errors.Wrap(cerr, "close output")
	}, nil
}

func render(w io.Writer, f *plot.Figure, format string) error {
	switch format {
	case "png":
		return plot.PNGRenderer{}.Render(w, f)
	case "csv":
		return plot.CSVRenderer{}.Render(w, f)
	case "json":
		return encodeJSON(w, f)
	default:
		return errors.Errorf("unknown format %q", format)
	}
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printReport(w io.Writer, rep pipeline.Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "SIGNAL\tMEAN\tSTD\tRMS\tMIN\tMAX\n")
	rows := []struct {
		name string
		s    tstats.Stats
	}{
		{"clean", rep.Clean},
		{"noisy", rep.Noisy},
		{"filtered", rep.Filtered},
		{"noise", rep.Noise},
		{"error", rep.Error},
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n", r.name, r.s.Mean, r.s.StdDev, r.s.RMS, r.s.Min, r.s.Max)
	}
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "duty cycle\t%.3f\n", rep.DutyCycle)
	fmt.Fprintf(tw, "snr in\t%s\n", rep.SNRInDB)
	fmt.Fprintf(tw, "snr out\t%s\n", rep.SNROutDB)
	fmt.Fprintf(tw, "stopband in\t%s\n", rep.StopbandInDB)
	fmt.Fprintf(tw, "stopband out\t%s\n", rep.StopbandOutDB)
	fmt.Fprintf(tw, "attenuation\t%.2f dB\n", rep.StopbandAttenuationDB())
	fmt.Fprintf(tw, "anomalies\t%d (%.1f%%)\n", rep.Anomalies, 100*rep.AnomalyFraction)
	return tw.Flush()
}
