package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kapu/character-lookup-go/internal/adapter"
	"github.com/kapu/character-lookup-go/internal/app"
	"github.com/kapu/character-lookup-go/internal/service"
	"github.com/kapu/character-lookup-go/internal/widget"
)

func NewSearchCmd(container func() *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <name>...",
		Short: "Search one or more characters",
		Long: `Search each name in order. Names already found earlier in the same run
are served from the history without another request.`,
		Args: cobra.MinimumNArgs(1),
		RunE: makeSearchRunner(container),
	}

	cmd.Flags().Bool("json", false, "Print the raw character record instead of the card")
	return cmd
}

func makeSearchRunner(container func() *app.Container) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		c := container()

		return runSearches(cmd, c.NewLookupService(), c.Formatter(), args, asJSON)
	}
}

func runSearches(cmd *cobra.Command, svc *service.LookupService, formatter *adapter.ResponseFormatter, terms []string, asJSON bool) error {
	out := cmd.OutOrStdout()

	var state widget.State
	failed := 0

	for i, term := range terms {
		if i > 0 && !asJSON {
			fmt.Fprintln(out, "\n---")
		}

		state = state.Begin()
		result, err := svc.Search(cmd.Context(), term)
		state = state.Resolve(term, result, err, svc.History())

		if err != nil {
			failed++
		}

		if asJSON {
			if err := printRecord(out, cmd.ErrOrStderr(), formatter, result, err); err != nil {
				return err
			}
			continue
		}

		fmt.Fprintln(out, widget.RenderText(state, formatter))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d searches failed", failed, len(terms))
	}
	return nil
}

func printRecord(out, errOut io.Writer, formatter *adapter.ResponseFormatter, result *service.SearchResult, searchErr error) error {
	if searchErr != nil {
		fmt.Fprintln(errOut, formatter.FormatError(formatter.FailureMessage(searchErr)))
		return nil
	}

	raw, err := result.Character.MarshalRaw()
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	fmt.Fprintln(out, string(raw))
	return nil
}
