package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/enetx/g"
	"github.com/spf13/cobra"

	"github.com/enetx/store/internal/todos"
)

var (
	scenarioPath string
	finalOnly    bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Replay a scenario and print each new state",
	Long: `Loads actions from a YAML scenario (--scenario) or the built-in sample and
dispatches them one at a time. Every new state is printed to stdout; with
--final only the last state is printed, as indented JSON.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		actions, err := loadActions(scenarioPath)
		if err != nil {
			fatal("Error loading scenario", err)
		}

		if err := replay(cmd.OutOrStdout(), actions, finalOnly); err != nil {
			fatal("Error replaying scenario", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&scenarioPath, "scenario", "f", "", "YAML scenario file (defaults to the built-in sample)")
	runCmd.Flags().BoolVar(&finalOnly, "final", false, "Print only the final state as indented JSON")

	rootCmd.Run = runCmd.Run
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}

func loadActions(path string) (g.Slice[todos.Action], error) {
	if path == "" {
		logger.Debug("using built-in scenario")
		return todos.DefaultScenario(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	actions, err := todos.LoadScenario(f)
	if err != nil {
		return nil, err
	}

	logger.Debug("scenario loaded", "path", path, "actions", len(actions))

	return actions, nil
}

func replay(w io.Writer, actions g.Slice[todos.Action], final bool) error {
	s := todos.New().Logger(logger)

	var printErr error

	if !final {
		s.Subscribe(func() {
			data, err := json.Marshal(s)
			if err != nil {
				printErr = err
				return
			}

			fmt.Fprintf(w, "The new state is: %s\n", data)
		})
	}

	for action := range actions.Iter() {
		s.Dispatch(action)
		if printErr != nil {
			return printErr
		}
	}

	logger.Info("scenario replayed", "actions", len(actions), "todos", len(s.State().Todos), "goals", len(s.State().Goals))

	if final {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(s.State())
	}

	return nil
}
