package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/marouaneMJH/faker"
	"github.com/marouaneMJH/faker/core"
	"github.com/marouaneMJH/faker/metrics"
)

type generateCommand struct {
	ui          cli.Ui
	seed        int64
	localeCode  string
	kind        string
	count       int
	list        bool
	metricsPort int
	levelString string

	flags *flag.FlagSet
	help  string
}

func newGenerateCommand(ui cli.Ui) cli.Command {
	c := &generateCommand{
		ui: ui,
	}

	levelChoices := strings.Join([]string{
		hclog.Off.String(),
		hclog.Trace.String(),
		hclog.Debug.String(),
		hclog.Info.String(),
		hclog.Warn.String(),
		hclog.Error.String(),
	}, ", ")

	flags := flag.NewFlagSet("", flag.ContinueOnError)

	flags.Int64Var(&c.seed, "seed", -1, "Value to seed the pseudo-random number generator with instead of the current time")
	flags.StringVar(&c.localeCode, "locale", "", fmt.Sprintf("Locale to generate data for. Must be one of [%s]", strings.Join(core.Locales(), ", ")))
	flags.StringVar(&c.kind, "kind", "name", "Kind of value to generate. Use -list to see the available kinds")
	flags.IntVar(&c.count, "count", 1, "Number of values to generate")
	flags.BoolVar(&c.list, "list", false, "List the available generator kinds and exit")
	flags.IntVar(&c.metricsPort, "metrics-port", 0, "listening port for metrics path /metrics (default: disabled)")
	flags.StringVar(&c.levelString, "log-level", hclog.Info.String(), fmt.Sprintf("Log level. Must be one of [%s]", levelChoices))

	c.flags = flags
	c.help = genUsage(`Usage: faker generate [OPTIONS]

	Generate fake data.

	This command builds a seeded generation session and prints the requested
	number of fake values, one per line. The same seed and locale always
	produce the same values.`, c.flags)

	return c
}

func (c *generateCommand) Run(args []string) int {
	if err := c.flags.Parse(args); err != nil {
		c.ui.Error(fmt.Sprintf("Failed to parse command line arguments: %v", err))
		return 1
	}

	level := hclog.LevelFromString(c.levelString)
	if level == hclog.NoLevel {
		c.ui.Error(fmt.Sprintf("Invalid log level choice: %s", c.levelString))
		return 1
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:            "faker",
		Level:           level,
		Output:          uiLogWriter(c.ui),
		IncludeLocation: false,
	})

	var opts []core.Option
	if c.seed >= 0 {
		opts = append(opts, core.WithSeed(c.seed))
	}
	if c.localeCode != "" {
		opts = append(opts, core.WithLocale(c.localeCode))
	}

	f, err := faker.New(opts...)
	if err != nil {
		c.ui.Error(fmt.Sprintf("Error creating faker: %v", err))
		return 1
	}

	if c.list {
		for _, kind := range f.Generators() {
			c.ui.Output(kind)
		}
		return 0
	}

	var metricsServer *metrics.MetricsServer
	if c.metricsPort != 0 {
		metricsServer = metrics.NewMetricsServer(metrics.ServerConfig{
			Addr: fmt.Sprintf("0.0.0.0:%d", c.metricsPort),
		})
		go func() {
			logger.Info("Starting Metric Server", "address", metricsServer.Addr)
			if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
				logger.Error("error starting metric server", "error", err)
			}
		}()
	}

	logger.Debug("generating values", "kind", c.kind, "count", c.count, "seed", f.Seed(), "locale", f.Locale())

	for i := 0; i < c.count; i++ {
		value, err := f.Generate(c.kind)
		if err != nil {
			c.ui.Error(fmt.Sprintf("Error generating value: %v", err))
			return 1
		}
		c.ui.Output(fmt.Sprintf("%v", value))
		if metricsServer != nil {
			metricsServer.IncGenerated(c.kind)
		}
	}

	return 0
}

func (c *generateCommand) Synopsis() string {
	return "Generate fake data"
}

func (c *generateCommand) Help() string {
	return c.help
}

func uiLogWriter(ui cli.Ui) io.Writer {
	return hclog.NewLeveledWriter(
		uiWriter(ui.Output),
		map[hclog.Level]io.Writer{
			hclog.Info:  uiWriter(ui.Info),
			hclog.Error: uiWriter(ui.Error),
			hclog.Warn:  uiWriter(ui.Warn),
		},
	)
}

type uiWriter func(string)

func (w uiWriter) Write(p []byte) (int, error) {
	w(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
