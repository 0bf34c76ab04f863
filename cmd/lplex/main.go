// Command lplex parses an LP-format file and reports the parsed model.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/solverkit/lplex"
	"github.com/solverkit/lplex/logger"
	"github.com/solverkit/lplex/lpformat"
)

var (
	fVerbose bool
	fQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:     "lplex [model.lp]",
	Short:   "parses a linear program in LP format and reports its model",
	Args:    cobra.ExactArgs(1),
	Version: lplex.Version.String(),
	RunE:    run,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&fVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&fQuiet, "quiet", "q", false, "disable logging")
}

func run(cmd *cobra.Command, args []string) error {
	switch {
	case fQuiet:
		logger.Disable()
	case fVerbose:
		logger.Set(logger.Logger().Level(zerolog.DebugLevel))
	}

	f := lpformat.Read(args[0])
	// a parse failure surfaces as an all-zero model
	if f.NumObjectives() == 0 && f.NumVariables() == 0 && f.NumConstraints() == 0 {
		return fmt.Errorf("no model parsed from %s", args[0])
	}
	log := logger.Logger()
	log.Info().Int("objectives", f.NumObjectives()).
		Int("variables", f.NumVariables()).
		Int("constraints", f.NumConstraints()).
		Str("file", args[0]).
		Msg("parsed model")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
