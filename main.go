package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/green-vs-red/utils"
)

const defaultConfigFile = "config.json"

func main() {
	configFile := flag.String("config", "", "Path to a JSON or YAML configuration file")
	verbose := flag.Bool("verbose", false, "Print simulation stats to stderr")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-config path] [-verbose] [scenario file ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	config, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *verbose {
		config.Verbose = true
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if files := flag.Args(); len(files) > 0 {
		err = runBatch(ctx, files, os.Stdout, os.Stderr, config)
	} else {
		err = runInteractive(ctx, os.Stdin, os.Stdout, os.Stderr, config)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// loadConfig reads an explicit config file, or the default one when present
func loadConfig(filename string) (utils.Config, error) {
	if filename != "" {
		return utils.LoadConfig(filename)
	}
	config, err := utils.LoadConfig(defaultConfigFile)
	if errors.Is(err, fs.ErrNotExist) {
		return utils.DefaultConfig(), nil
	}
	return config, err
}
