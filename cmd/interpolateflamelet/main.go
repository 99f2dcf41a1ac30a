package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/progvar"
	"github.com/carbocation/progvar/flamelet"

	_ "github.com/carbocation/progvar/compileinfoprint"
)

// Safe for concurrent use by multiple goroutines
var client *storage.Client

func main() {
	// Consumes flamelet solution tables (one per positional argument).
	// Interpolates the temperature and each species at a single mixture
	// fraction and writes one tab-delimited row per file.
	var speciesList, method, outFile string
	var z float64
	cols := flamelet.DefaultColumns
	flag.StringVar(&speciesList, "species", "", "Comma-separated species column titles to interpolate.")
	flag.Float64Var(&z, "z", -1, "Mixture fraction to interpolate at, within [0, 1].")
	flag.StringVar(&method, "method", "linear", fmt.Sprintf("Interpolation method. One of %s.", strings.Join(flamelet.MethodNames(), ", ")))
	flag.StringVar(&cols.MixtureFraction, "zcol", cols.MixtureFraction, "Title of the mixture fraction column.")
	flag.StringVar(&cols.Temperature, "tcol", cols.Temperature, "Title of the temperature column.")
	flag.StringVar(&outFile, "out", "", "output file. If not specified, writes to stdout")
	flag.Parse()

	files := flag.Args()
	if speciesList == "" || z < 0 || z > 1 || len(files) < 1 {
		flag.PrintDefaults()
		os.Exit(1)
	}
	species := strings.Split(speciesList, ",")

	for _, path := range files {
		if progvar.IsGoogleStoragePath(path) {
			var err error
			client, err = storage.NewClient(context.Background())
			if err != nil {
				log.Fatalln(err)
			}
			defer client.Close()

			break
		}
	}

	// Writer
	var outWriter io.WriteCloser = os.Stdout
	if outFile != "" {
		var err error
		outWriter, err = os.Create(outFile)
		if err != nil {
			log.Fatalln(err)
		}
	}
	defer outWriter.Close()

	fmt.Fprintln(outWriter, strings.Join(append([]string{"file", cols.Temperature}, species...), "\t"))

	for _, path := range files {
		if err := processFile(context.Background(), outWriter, path, cols, species, z, method); err != nil {
			log.Fatalln(err)
		}
	}
}

func processFile(ctx context.Context, w io.Writer, path string, cols flamelet.Columns, species []string, z float64, method string) error {
	table, err := flamelet.Load(ctx, path, client)
	if err != nil {
		return err
	}

	interp, err := table.Interpolate(cols, species, z, method)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	fields := make([]string, 0, len(interp.Row)+1)
	fields = append(fields, path)
	for _, v := range interp.Row {
		fields = append(fields, strconv.FormatFloat(v, 'g', -1, 64))
	}

	_, err = fmt.Fprintln(w, strings.Join(fields, "\t"))
	return err
}
