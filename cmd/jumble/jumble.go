package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/karthick18/jumble/internal/pkg/config"
	"github.com/karthick18/jumble/internal/pkg/dictionary"
	"github.com/karthick18/jumble/internal/pkg/jumble"
)

const usage = `Usage:
jumble [--config file] [--dict dictionary_file] [--index set|trie] [--count] <jumbled_word>
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		configPath string
		dict       string
		index      string
		countOnly  bool
	)

	fs := flag.NewFlagSet("jumble", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	fs.StringVar(&configPath, "config", "", "YAML config file (default "+config.DefaultPath+" when present)")
	fs.StringVar(&dict, "dict", "", "Words dictionary file separated by newlines")
	fs.StringVar(&index, "index", "", "Dictionary index: set or trie")
	fs.BoolVar(&countOnly, "count", false, "Only print the number of words found")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	// Expect exactly one argument, the jumbled word
	if fs.NArg() != 1 {
		fs.Usage()
		return 1
	}

	jumbled := fs.Arg(0)

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if dict != "" {
		cfg.Dictionary = dict
	}

	if index != "" {
		cfg.Index = index
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	logx.MustSetup(logx.LogConf{
		ServiceName: "jumble",
		Mode:        "console",
		Encoding:    cfg.Log.Encoding,
		Level:       cfg.Log.Level,
		Stat:        false,
	})
	logx.SetWriter(logx.NewWriter(stderr))

	if len(jumbled) > cfg.MaxLetters {
		logx.Errorf("jumble %q has %d letters, at most %d allowed", jumbled, len(jumbled), cfg.MaxLetters)
		return 1
	}

	start := time.Now()

	words, err := dictionary.LoadFile(cfg.Dictionary, cfg.DictionaryIndex(), dictionary.Options{MinLen: cfg.MinWordLen})
	if err != nil {
		logx.Errorf("dictionary: %v", err)
		return 1
	}

	logx.Infof("loaded %d words from %s into %s index in %v", words.Len(), cfg.Dictionary, cfg.DictionaryIndex(), time.Since(start))

	start = time.Now()
	found := jumble.New(words).Unjumble(jumbled)
	logx.Debugf("unjumbled %q in %v", jumbled, time.Since(start))

	fmt.Fprintf(stdout, "%d words found:\n", found.Len())

	if countOnly {
		return 0
	}

	for _, word := range found.Sorted() {
		fmt.Fprintln(stdout, word)
	}

	return 0
}
