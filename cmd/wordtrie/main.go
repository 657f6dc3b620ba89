/*
Package main implements the wordtrie completion server and CLI.

wordtrie loads a plain word list (one word per line) into a letter trie and
answers prefix queries with up to ten completions in alphabetical order.
Letters are case-folded on insert and anything else is skipped, so the list
does not need cleaning up first.

# Usage

Start the IPC server with the default word list:

	wordtrie

Use a specific word list and enable debug logging:

	wordtrie -dict /usr/share/dict/words -d

Run the interactive CLI, learning words that have no completions:

	wordtrie -c -learn

If the word list cannot be found wordtrie starts with an empty dictionary
and says so; words can still be added at runtime.

# Configuration

A TOML config file is created with defaults on first run in the user config
directory (~/.config/wordtrie/config.toml on Linux):

	[dict]
	path = "words.txt"

	[server]
	max_limit = 10
	min_prefix = 1
	max_prefix = 100

	[cli]
	default_limit = 10
	default_min_len = 1
	default_max_len = 100
	learn = false

Flags override the file.

# IPC Protocol

The server speaks MessagePack over stdin/stdout, see package server:

	{"id": "req1", "p": "hel", "l": 5}
	{"id": "req1", "s": [{"w": "hello", "r": 1}, {"w": "help", "r": 2}], "c": 2, "t": 9}

	{"id": "d1", "action": "reload"}

# Command Line Flags

	-dict string
	    Word list file, one word per line (default from config)
	-config string
	    Config file path (default: user config dir)
	-c  Run the interactive CLI instead of the server
	-d  Enable debug logging
	-limit int
	    Number of suggestions to return, at most 10
	-prmin int
	    Minimum prefix length for suggestions
	-prmax int
	    Maximum prefix length for suggestions
	-learn
	    CLI: add words that produced no suggestions
	-version
	    Show current version
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordtrie/internal/cli"
	"github.com/bastiangx/wordtrie/internal/logger"
	"github.com/bastiangx/wordtrie/internal/utils"
	"github.com/bastiangx/wordtrie/pkg/config"
	"github.com/bastiangx/wordtrie/pkg/dictionary"
	"github.com/bastiangx/wordtrie/pkg/server"
	completion "github.com/bastiangx/wordtrie/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "wordtrie"
	gh      = "https://github.com/bastiangx/wordtrie"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires the config, the completer and the chosen front end together.
func main() {
	sigHandler()
	showVersion := flag.Bool("version", false, "Show current version")
	dictPath := flag.String("dict", "", "Word list file, one word per line (default from config)")
	configFlag := flag.String("config", "", "Config file path (default: user config dir)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run the interactive CLI")
	limit := flag.Int("limit", 0, "Number of suggestions to return (max 10)")
	minPrefix := flag.Int("prmin", -1, "Minimum prefix length for suggestions")
	maxPrefix := flag.Int("prmax", -1, "Maximum prefix length for suggestions")
	learn := flag.Bool("learn", false, "CLI: add words that produced no suggestions")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}
	log.Debug("Runtime", "info", pathResolver.GetRuntimeInfo())

	configPath := *configFlag
	if configPath == "" {
		configPath, err = pathResolver.GetConfigPath("config.toml")
		if err != nil {
			log.Fatalf("Failed to determine config path: (%v)", err)
		}
	}
	log.Debugf("Using config file: (%s)", utils.GetAbsolutePath(configPath))

	appConfig, err := config.InitConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	source := appConfig.Dict.Path
	if *dictPath != "" {
		source = *dictPath
	}
	source = pathResolver.GetDictPath(source)
	checkSource(source)

	completer := completion.NewCompleter(source)
	if err := completer.Initialize(); err != nil {
		if errors.Is(err, dictionary.ErrUnavailable) {
			log.Warnf("Word list %s not found, starting with an empty dictionary", source)
		} else {
			log.Warnf("Word list %s only partly loaded: %v", source, err)
		}
	}
	log.Debug("Completer init done", "words", completer.Stats()["totalWords"])

	flags := overrides{limit: *limit, minPrefix: *minPrefix, maxPrefix: *maxPrefix}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "learn" {
			flags.learn = learn
		}
	})
	applyOverrides(appConfig, flags)

	if *cliMode {
		log.SetReportTimestamp(false)
		opts := cliOptions(appConfig)
		log.Debug("Input info:",
			"minPrefix", opts.MinPrefix,
			"maxPrefix", opts.MaxPrefix,
			"limit", opts.Limit,
			"learn", opts.Learn)

		out := logger.NewWithWriter(os.Stdout, "")
		inputHandler := cli.NewInputHandler(completer, os.Stdin, out, opts)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(completer, appConfig)
	showStartupInfo(source, completer.Stats()["totalWords"])

	if err := srv.Start(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// overrides holds command line values; limit 0, a prefix bound of -1 and a
// nil learn mean the flag was not given.
type overrides struct {
	limit     int
	minPrefix int
	maxPrefix int
	learn     *bool
}

// applyOverrides writes the given flags over both the server and CLI
// sections, then clamps the result.
func applyOverrides(cfg *config.Config, o overrides) {
	cfg.Server.MaxLimit = pick(o.limit, 0, cfg.Server.MaxLimit)
	cfg.Server.MinPrefix = pick(o.minPrefix, -1, cfg.Server.MinPrefix)
	cfg.Server.MaxPrefix = pick(o.maxPrefix, -1, cfg.Server.MaxPrefix)

	cfg.CLI.DefaultLimit = pick(o.limit, 0, cfg.CLI.DefaultLimit)
	cfg.CLI.DefaultMinLen = pick(o.minPrefix, -1, cfg.CLI.DefaultMinLen)
	cfg.CLI.DefaultMaxLen = pick(o.maxPrefix, -1, cfg.CLI.DefaultMaxLen)
	if o.learn != nil {
		cfg.CLI.Learn = *o.learn
	}

	cfg.Normalize()
}

func cliOptions(cfg *config.Config) cli.Options {
	return cli.Options{
		MinPrefix: cfg.CLI.DefaultMinLen,
		MaxPrefix: cfg.CLI.DefaultMaxLen,
		Limit:     cfg.CLI.DefaultLimit,
		Learn:     cfg.CLI.Learn,
	}
}

// pick returns the flag value unless it is still at its unset default.
func pick(flagValue, unset, configValue int) int {
	if flagValue == unset {
		return configValue
	}
	return flagValue
}

// checkSource warns when the word list does not look like a readable text
// file. Loading still goes ahead.
func checkSource(source string) {
	if err := dictionary.ValidateTextFile(source); err != nil {
		log.Warnf("Word list check: %v", err)
	}
}

func printVersion() {
	l := logger.NewWithConfig(os.Stderr, "", log.InfoLevel, false, false, log.TextFormatter)

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Print("")
	l.Print("[ wordtrie ] prefix completions from a plain word list")
	l.Print("", "version", Version)
	l.Print("")
	l.Print("use -h or --help to see available options")
	l.Print("Github Repo", "gh", gh)
}

// showStartupInfo writes a short banner to stderr; stdout carries IPC.
func showStartupInfo(source string, words int) {
	l := logger.NewWithConfig(os.Stderr, AppName, log.InfoLevel, false, false, log.TextFormatter)
	l.Infof("Version: %s", Version)
	l.Infof("Process ID: [ %d ]", os.Getpid())
	l.Infof("dictionary: ( %s ) %d words", source, words)
	l.Info("status: ready")
}
