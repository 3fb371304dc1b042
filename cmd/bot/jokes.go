package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var jokesCmd = &cobra.Command{
	Use:   "jokes",
	Short: "Inspect and extend the joke store",
}

var jokesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every known joke",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		jokes, err := a.jokeUseCase.List(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, j := range jokes {
			fmt.Fprintf(out, "%d. %s\n", j.Position(), j.Text())
		}
		return nil
	},
}

var jokesAddCmd = &cobra.Command{
	Use:   "add <joke>",
	Short: "Teach the bot a new joke",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		j, err := a.jokeUseCase.Tell(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Stored joke #%d\n", j.Position())
		return nil
	},
}

func init() {
	jokesCmd.AddCommand(jokesListCmd, jokesAddCmd)
	rootCmd.AddCommand(jokesCmd)
}
