package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fivetwenty-io/rmapi/internal/constants"
	"github.com/fivetwenty-io/rmapi/pkg/rmapi"
)

// NewCharactersCommand creates the characters command group.
func NewCharactersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "characters",
		Aliases: []string{"character", "chars"},
		Short:   "Browse Rick and Morty characters",
		Long:    "List, inspect and interactively page through characters from the Rick and Morty API",
	}

	cmd.AddCommand(newCharactersListCommand())
	cmd.AddCommand(newCharactersGetCommand())
	cmd.AddCommand(newCharactersBrowseCommand())

	return cmd
}

func newCharactersListCommand() *cobra.Command {
	var (
		more  int
		stats bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List characters",
		Long: `List characters, starting with the first page.

Use --more to load additional pages after the first one. Loading stops early
once the last page has been fetched.`,
		Example: `  rmapi characters list
  rmapi characters list --more 2 --output json
  rmapi characters list --stats`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if more < 0 {
				return constants.ErrNegativeMore
			}

			session, err := NewSession()
			if err != nil {
				return err
			}

			characters, err := listCharacters(cmd.Context(), session, more)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			err = renderCharacters(out, characters)
			if err != nil {
				return err
			}

			if outputFormat() == OutputFormatTable {
				_, _ = fmt.Fprintln(out, paginationSummary(session.Repository.Cursor(), session.Repository.CachedCount()))
			}

			if stats {
				return writeStats(cmd.ErrOrStderr(), session.Metrics)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&more, "more", 0, "number of additional pages to load")
	cmd.Flags().BoolVar(&stats, "stats", false, "print request statistics to stderr")

	return cmd
}

// listCharacters loads the first page and then up to more further pages.
func listCharacters(ctx context.Context, session *Session, more int) ([]rmapi.Character, error) {
	repo := session.Repository

	result := repo.ListCharacters(ctx, false)
	if !result.IsSuccess() {
		return nil, fmt.Errorf("%w: %s", constants.ErrListFailed, result.Message())
	}

	for range more {
		if !repo.HasMore() {
			break
		}

		result = repo.ListCharacters(ctx, true)
		if !result.IsSuccess() {
			return nil, fmt.Errorf("%w: %s", constants.ErrListFailed, result.Message())
		}
	}

	return result.Data(), nil
}

func newCharactersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID [ID...]",
		Short: "Get characters by ID",
		Long:  "Display one or more characters by their numeric ID",
		Example: `  rmapi characters get 1
  rmapi characters get 1 2 3 --output yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseCharacterIDs(args)
			if err != nil {
				return err
			}

			session, err := NewSession()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			characters := make([]rmapi.Character, 0, len(ids))

			for _, id := range ids {
				result := session.Repository.GetCharacter(ctx, id)
				if !result.IsSuccess() {
					return fmt.Errorf("%w: character %d: %s", constants.ErrGetFailed, id, result.Message())
				}

				characters = append(characters, result.Data())
			}

			if len(characters) == 1 && outputFormat() != OutputFormatTable {
				return renderCharacter(cmd.OutOrStdout(), characters[0])
			}

			return renderCharacters(cmd.OutOrStdout(), characters)
		},
	}
}

func parseCharacterIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))

	for _, arg := range args {
		id, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil || id < 1 {
			return nil, fmt.Errorf("%w: %q", rmapi.ErrInvalidCharacterID, arg)
		}

		ids = append(ids, id)
	}

	return ids, nil
}

func renderCharacter(w io.Writer, character rmapi.Character) error {
	if outputFormat() == OutputFormatYAML {
		return writeYAML(w, character)
	}

	return writeJSON(w, character)
}

func newCharactersBrowseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Page through characters interactively",
		Long: `Show the first page of characters and ask before loading each further page.
A failed request can be retried without losing what has already been loaded.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if !isTerminal(in) {
				return constants.ErrNotATerminal
			}

			session, err := NewSession()
			if err != nil {
				return err
			}

			return browse(cmd.Context(), session, bufio.NewReader(in), cmd.OutOrStdout())
		},
	}
}

// isTerminal reports whether r is a file attached to a terminal.
func isTerminal(r io.Reader) bool {
	file, ok := r.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd())) //nolint:gosec // file descriptors fit in int
}

// browse runs the interactive paging loop until the user stops or every page
// has been loaded.
func browse(ctx context.Context, session *Session, in *bufio.Reader, out io.Writer) error {
	repo := session.Repository
	loadMore := false
	shown := 0

	for {
		result := repo.ListCharacters(ctx, loadMore)
		if !result.IsSuccess() {
			_, _ = fmt.Fprintf(out, "Error: %s\n", result.Message())

			retry, err := confirm(in, out, "Retry?")
			if err != nil || !retry {
				return err
			}

			continue
		}

		characters := result.Data()
		if shown < len(characters) {
			err := renderCharactersTable(out, characters[shown:])
			if err != nil {
				return err
			}

			shown = len(characters)
		}

		_, _ = fmt.Fprintln(out, paginationSummary(repo.Cursor(), repo.CachedCount()))

		if !repo.HasMore() {
			_, _ = fmt.Fprintln(out, "All pages loaded")

			return nil
		}

		next, err := confirm(in, out, "Load more?")
		if err != nil || !next {
			return err
		}

		loadMore = true
	}
}

// confirm asks a yes/no question. EOF counts as no.
func confirm(in *bufio.Reader, out io.Writer, question string) (bool, error) {
	_, _ = fmt.Fprintf(out, "%s [y/N]: ", question)

	line, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("reading answer: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))

	return answer == "y" || answer == "yes", nil
}
