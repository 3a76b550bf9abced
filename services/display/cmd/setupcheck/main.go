// Command setupcheck validates a panel setup before it gets baked into a
// firmware image. It accepts a registered setup name, a TFT_eSPI-style
// User_Setup.h header, or a JSON setup file, checks it against the driver
// capability table and the target board, and prints a report.
//
//	setupcheck -list
//	setupcheck strava-watch
//	setupcheck -board esp32 tft_setup.h
//	setupcheck -json panel.json
package main

import (
	"encoding/json"
	"flag"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"displaycode-go/errcode"
	"displaycode-go/services/display"
	"displaycode-go/services/display/usersetup"
	"displaycode-go/types"

	// Register the named setups.
	_ "displaycode-go/services/display/internal/setups"
)

func main() {
	var (
		list    = flag.Bool("list", false, "list registered setups and exit")
		board   = flag.String("board", "", "override the target board")
		asJSON  = flag.Bool("json", false, "print the normalized setup as JSON")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !*verbose {
		log = log.Level(zerolog.InfoLevel)
	}

	if *list {
		for _, name := range display.Names() {
			s, _ := display.Lookup(name)
			os.Stdout.WriteString(name + "\t" + string(s.Driver) + " on " + s.Board + "\n")
		}
		return
	}

	if flag.NArg() != 1 {
		log.Fatal().Msg("expected one setup name or file (see -list)")
	}
	ref := flag.Arg(0)

	s, err := load(ref)
	if err != nil {
		log.Fatal().Err(err).Str("setup", ref).Msg("load failed")
	}
	if *board != "" {
		s.Board = *board
	}

	checked, err := display.Check(s)
	if err != nil {
		log.Error().Err(err).Str("setup", s.Name).Msg("invalid setup")
		os.Exit(1)
	}
	log.Debug().Str("setup", checked.Name).Msg("setup valid")

	if *asJSON {
		out, err := json.MarshalIndent(checked, "", "  ")
		if err != nil {
			log.Fatal().Err(err).Msg("marshal")
		}
		os.Stdout.Write(append(out, '\n'))
		return
	}
	os.Stdout.WriteString(display.Describe(checked))
}

func load(ref string) (types.Setup, error) {
	switch {
	case strings.HasSuffix(ref, ".h"):
		return usersetup.ParseFile(ref)
	case strings.HasSuffix(ref, ".json"):
		var s types.Setup
		raw, err := os.ReadFile(ref)
		if err != nil {
			return s, err
		}
		err = json.Unmarshal(raw, &s)
		return s, err
	default:
		s, ok := display.Lookup(ref)
		if !ok {
			return s, &errcode.E{C: errcode.NoSetup, Op: "load", Msg: ref}
		}
		return s, nil
	}
}
