package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ironsheep/photomosaic/internal/mosaic"
	"github.com/ironsheep/photomosaic/internal/scan"
	"github.com/ironsheep/photomosaic/internal/server"
	"github.com/ironsheep/photomosaic/internal/tilecache"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func init() {
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Printf("photomosaic %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
	}
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}
}

// newLogger writes to stderr so that stdout stays free for progress messages
// and the MCP protocol.
func newLogger(verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.InfoLevel)
	if verbose || os.Getenv("PHOTOMOSAIC_LOG_LEVEL") == "debug" {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// openCache opens the tile cache named by --cache, or returns nil when no
// cache is configured.
func openCache(c *cli.Context) (*tilecache.Cache, error) {
	file := c.String("cache")
	if file == "" {
		return nil, nil
	}
	return tilecache.Open(file)
}

// storeOf keeps a nil cache from becoming a non-nil TileStore.
func storeOf(cache *tilecache.Cache) mosaic.TileStore {
	if cache == nil {
		return nil
	}
	return cache
}

func configFrom(c *cli.Context) (mosaic.Config, error) {
	cfg := mosaic.Config{
		SampleSize:     c.Int("sample-size"),
		AllowableError: c.Int("allowable-error"),
		Verbose:        c.Bool("verbose"),
		Seed:           c.Uint64("seed"),
	}
	if c.IsSet("sub-image-size") {
		if err := cfg.SetSubImageSize(c.Int("sub-image-size")); err != nil {
			return cfg, err
		}
	}
	return cfg, cfg.Validate()
}

func create(c *cli.Context) error {
	if c.NArg() != 3 {
		cli.ShowAppHelpAndExit(c, 1)
	}
	tilesDir, target, output := c.Args().Get(0), c.Args().Get(1), c.Args().Get(2)

	cfg, err := configFrom(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	logger := newLogger(cfg.Verbose)

	cache, err := openCache(c)
	if err != nil {
		return cli.Exit(err, 1)
	}
	if cache != nil {
		defer cache.Close()
	}

	fmt.Println("Importing images...")
	tiles, err := scan.Images(tilesDir, c.Bool("recursive"))
	if err != nil {
		return cli.Exit(err, 1)
	}

	fmt.Println("Creating output...")
	p := mosaic.Pipeline{Config: cfg, Logger: logger, Store: storeOf(cache)}
	if _, err := p.Run(tiles, target, output); err != nil {
		return cli.Exit(err, 1)
	}

	if cache != nil {
		if n, err := cache.Len(); err != nil {
			logger.WithError(err).Warn("Failed to count cached tiles")
		} else {
			logger.WithField("cached", n).Info("Tile cache updated")
		}
	}

	fmt.Printf("Photographic mosaic saved to output file: %s\n", output)
	return nil
}

func serve(c *cli.Context) error {
	logger := newLogger(c.Bool("verbose"))
	logger.WithFields(logrus.Fields{
		"version": Version,
		"built":   BuildTime,
		"commit":  GitCommit,
	}).Debug("Starting photomosaic MCP server")

	cache, err := openCache(c)
	if err != nil {
		return cli.Exit(err, 1)
	}
	if cache != nil {
		defer cache.Close()
	}

	if err := server.New(logger, storeOf(cache)).Run(); err != nil {
		return cli.Exit(fmt.Errorf("server error: %w", err), 1)
	}
	return nil
}

// reorderArgs moves flags ahead of positional arguments so that
// "photomosaic DIR IN OUT -v" parses like "photomosaic -v DIR IN OUT".
// Everything after "--" is left in place.
func reorderArgs(args []string, flags []cli.Flag) []string {
	if len(args) < 2 {
		return args
	}

	boolean := make(map[string]bool)
	for _, f := range append([]cli.Flag{cli.HelpFlag, cli.VersionFlag}, flags...) {
		if _, ok := f.(*cli.BoolFlag); ok {
			for _, name := range f.Names() {
				boolean[name] = true
			}
		}
	}

	var opts, positional, tail []string
	rest := args[1:]
	for i := 0; i < len(rest); i++ {
		arg := rest[i]
		switch {
		case arg == "--":
			tail = rest[i:]
			i = len(rest)
		case len(arg) > 1 && strings.HasPrefix(arg, "-"):
			opts = append(opts, arg)
			name := strings.TrimLeft(arg, "-")
			if strings.Contains(name, "=") || boolean[name] || i+1 == len(rest) {
				continue
			}
			opts = append(opts, rest[i+1])
			i++
		default:
			positional = append(positional, arg)
		}
	}

	out := make([]string, 0, len(args))
	out = append(out, args[0])
	out = append(out, opts...)
	if len(tail) > 0 {
		out = append(out, "--")
		out = append(out, positional...)
		return append(out, tail[1:]...)
	}
	return append(out, positional...)
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "photomosaic"
	app.Usage = "Build a photographic mosaic of an image from a directory of tiles"
	app.Version = Version
	app.ArgsUsage = "INPUT_DIRECTORY INPUT_FILE OUTPUT_FILE (options may also follow the arguments)"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			EnvVars: []string{"PHOTOMOSAIC_VERBOSE"},
			Usage:   "print the average color of every processed tile",
		},
		&cli.BoolFlag{
			Name:    "recursive",
			Aliases: []string{"r"},
			EnvVars: []string{"PHOTOMOSAIC_RECURSIVE"},
			Usage:   "search INPUT_DIRECTORY recursively for tiles",
		},
		&cli.IntFlag{
			Name:    "allowable-error",
			EnvVars: []string{"PHOTOMOSAIC_ALLOWABLE_ERROR"},
			Value:   mosaic.DefaultAllowableError,
			Usage:   "per-channel tolerance between a block and a tile average",
		},
		&cli.IntFlag{
			Name:    "sample-size",
			EnvVars: []string{"PHOTOMOSAIC_SAMPLE_SIZE"},
			Value:   mosaic.DefaultSampleSize,
			Usage:   "edge in pixels of each block sampled from INPUT_FILE",
		},
		&cli.IntFlag{
			Name:        "sub-image-size",
			EnvVars:     []string{"PHOTOMOSAIC_SUB_IMAGE_SIZE"},
			Usage:       "edge in pixels of each tile in OUTPUT_FILE",
			DefaultText: "sample size",
		},
		&cli.Uint64Flag{
			Name:    "seed",
			EnvVars: []string{"PHOTOMOSAIC_SEED"},
			Usage:   "seed for tile selection, 0 for a random seed",
		},
		&cli.StringFlag{
			Name:    "cache",
			EnvVars: []string{"PHOTOMOSAIC_CACHE"},
			Usage:   "path to a tile summary database reused across runs",
		},
	}

	app.Action = create

	app.Commands = []*cli.Command{
		{
			Name:        "serve",
			Usage:       "Serve mosaic tools over MCP on stdin/stdout",
			Description: "Responses are written one JSON-RPC message per line.",
			Action:      serve,
		},
	}

	return app
}

func main() {
	app := newApp()
	if err := app.Run(reorderArgs(os.Args, app.Flags)); err != nil {
		logrus.Fatal(err)
	}
}
