package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"

	"cloud.google.com/go/storage"
	"github.com/carbocation/progvar"
	"github.com/carbocation/progvar/config"
	"github.com/carbocation/progvar/findprogvar"
	"github.com/sirupsen/logrus"

	_ "github.com/carbocation/progvar/compileinfoprint"
)

func main() {
	// Consumes a config file listing flamelet solutions and test species.
	// Selects the sum of species that rises or falls most strictly with the
	// stoichiometric temperature and writes one summary row per file.
	var configPath, outFile, plotFile string
	var verbose bool
	flag.StringVar(&configPath, "config", "", "Path to a JSON or YAML (.yaml, .yml) config file.")
	flag.StringVar(&outFile, "out", "", "Summary CSV output file. If not specified, writes to stdout.")
	flag.StringVar(&plotFile, "plot", "", "Overrides plot_file from the config. Must end in .png or .svg.")
	flag.BoolVar(&verbose, "verbose", false, "Log every interpolated file.")
	flag.Parse()

	if configPath == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	cfg, err := config.ParseConfigFromPath(configPath)
	if err != nil {
		log.Fatalln(err)
	}
	if plotFile != "" {
		cfg.PlotFile = progvar.ExpandHome(plotFile)
	}

	opts := []findprogvar.Option{findprogvar.WithLogger(logrus.StandardLogger())}

	// Initialize the Google Storage client only if we're pointing to Google
	// Storage paths.
	for _, path := range cfg.DataFiles {
		if progvar.IsGoogleStoragePath(path) {
			client, err := storage.NewClient(context.Background())
			if err != nil {
				log.Fatalln(err)
			}
			defer client.Close()
			opts = append(opts, findprogvar.WithStorageClient(client))

			break
		}
	}

	pipeline, err := findprogvar.New(cfg, opts...)
	if err != nil {
		log.Fatalln(err)
	}

	result, err := pipeline.RunFromFiles(context.Background())
	if err != nil {
		log.Fatalln(err)
	}

	// Writer
	var outWriter io.WriteCloser = os.Stdout
	if outFile != "" {
		outWriter, err = os.Create(progvar.ExpandHome(outFile))
		if err != nil {
			log.Fatalln(err)
		}
	}
	defer outWriter.Close()

	if err := findprogvar.WriteSummary(outWriter, result.SummaryRows()); err != nil {
		log.Fatalln(err)
	}
}
