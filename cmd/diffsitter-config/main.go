// Command diffsitter-config resolves the diffsitter configuration and prints
// the result as JSON. It exists for diagnostics: inspecting what a single
// file contains (-strict), what the built-in defaults are (-dump-default),
// and what the full hierarchical resolution produces.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/diffsitter/diffsitter/internal/config"
	"github.com/diffsitter/diffsitter/internal/logger"
	"github.com/diffsitter/diffsitter/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	args, err := config.ParseFlags("diffsitter-config", os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	if args.ShowVersion {
		fmt.Println(models.NewBuildInfo(buildVersion, buildDate, buildCommit))
		return
	}

	log := logger.NewLogger("diffsitter-config", args.Verbose)

	var cfg config.Config
	switch {
	case args.DumpDefault:
		cfg = config.Default()
	case args.Strict:
		cfg, err = config.NewLoader(log).LoadExplicit(args.ConfigPath)
	default:
		cfg, err = config.NewLoader(log).Load(args)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving config")
	}

	out, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("error encoding config")
	}

	fmt.Println(string(out))
}
