package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r any) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// runField runs a single huh field on the given streams.
func runField(in io.Reader, out io.Writer, field huh.Field) error {
	return huh.NewForm(huh.NewGroup(field)).
		WithInput(in).
		WithOutput(out).
		WithShowHelp(false).
		Run()
}

// readLine reads up to the next newline without buffering past it, so
// several prompts can share one reader.
func readLine(in io.Reader) (string, error) {
	var sb strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := in.Read(buf)
		if n > 0 {
			if buf[0] == '\n' {
				return strings.TrimRight(sb.String(), "\r"), nil
			}
			sb.WriteByte(buf[0])
		}
		if err == io.EOF {
			return sb.String(), io.EOF
		}
		if err != nil {
			return "", err
		}
	}
}

// ConfirmFunc prompts the user for confirmation and returns true if confirmed.
type ConfirmFunc func(prompt string) (bool, error)

// NewConfirmFunc asks with huh's confirm component on a terminal and falls
// back to a "[y/N]" line prompt otherwise.
func NewConfirmFunc(in io.Reader, out io.Writer) ConfirmFunc {
	return func(prompt string) (bool, error) {
		if isTerminal(in) {
			var result bool
			err := runField(in, out, huh.NewConfirm().Title(prompt).Value(&result))
			return result, err
		}

		_, _ = fmt.Fprintf(out, "%s [y/N] ", prompt)
		line, err := readLine(in)
		if err != nil && err != io.EOF {
			return false, err
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes", nil
	}
}

// AlwaysYes returns a ConfirmFunc that always confirms.
func AlwaysYes() ConfirmFunc {
	return func(_ string) (bool, error) {
		return true, nil
	}
}

// ResolveConfirmFunc skips the question when --yes was given.
func ResolveConfirmFunc(cmd *cobra.Command, yes bool) ConfirmFunc {
	if yes {
		return AlwaysYes()
	}
	return NewConfirmFunc(cmd.InOrStdin(), cmd.OutOrStdout())
}

// PromptFunc prompts the user for free-text input and returns the response.
type PromptFunc func(prompt string) (string, error)

// NewPromptFunc reads free text through huh's input component on a terminal
// and from the next input line otherwise.
func NewPromptFunc(in io.Reader, out io.Writer) PromptFunc {
	return func(prompt string) (string, error) {
		if isTerminal(in) {
			var result string
			err := runField(in, out, huh.NewInput().Title(prompt).Value(&result))
			return strings.TrimSpace(result), err
		}

		if prompt != "" {
			_, _ = fmt.Fprintf(out, "%s: ", prompt)
		}
		line, err := readLine(in)
		if err != nil && err != io.EOF {
			return "", err
		}
		return strings.TrimSpace(line), nil
	}
}

// SelectFunc prompts the user to select one option from a list. Returns 0-based index.
type SelectFunc func(title string, options []string) (int, error)

// NewSelectFunc picks one option with huh's select component on a terminal
// and by its 1-based number otherwise.
func NewSelectFunc(in io.Reader, out io.Writer) SelectFunc {
	return func(title string, options []string) (int, error) {
		if len(options) == 0 {
			return 0, fmt.Errorf("nothing to choose from")
		}
		if isTerminal(in) {
			var result int
			opts := make([]huh.Option[int], len(options))
			for i, o := range options {
				opts[i] = huh.NewOption(o, i)
			}
			err := runField(in, out, huh.NewSelect[int]().Title(title).Options(opts...).Value(&result))
			return result, err
		}

		printOptions(out, title, options)
		_, _ = fmt.Fprintf(out, "Choose [1-%d]: ", len(options))
		line, err := readLine(in)
		if err != nil && err != io.EOF {
			return 0, err
		}
		return parseChoice(line, len(options))
	}
}

// MultiSelectFunc prompts the user to select multiple options. Returns 0-based indices.
type MultiSelectFunc func(title string, options []string) ([]int, error)

// NewMultiSelectFunc picks options with huh's multi-select component on a
// terminal and from a comma-separated list of numbers otherwise.
func NewMultiSelectFunc(in io.Reader, out io.Writer) MultiSelectFunc {
	return func(title string, options []string) ([]int, error) {
		if isTerminal(in) {
			var result []int
			opts := make([]huh.Option[int], len(options))
			for i, o := range options {
				opts[i] = huh.NewOption(o, i)
			}
			err := runField(in, out, huh.NewMultiSelect[int]().Title(title).Options(opts...).Value(&result))
			return result, err
		}

		printOptions(out, title, options)
		_, _ = fmt.Fprint(out, "Choose (comma separated, empty for none): ")
		line, err := readLine(in)
		if err != nil && err != io.EOF {
			return nil, err
		}

		var picked []int
		for _, part := range strings.Split(line, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			idx, err := parseChoice(part, len(options))
			if err != nil {
				return nil, err
			}
			picked = append(picked, idx)
		}
		return picked, nil
	}
}

func printOptions(out io.Writer, title string, options []string) {
	if title != "" {
		_, _ = fmt.Fprintln(out, title)
	}
	for i, o := range options {
		_, _ = fmt.Fprintf(out, "  %d) %s\n", i+1, o)
	}
}

func parseChoice(s string, n int) (int, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 || v > n {
		return 0, fmt.Errorf("invalid selection %q (expected 1-%d)", s, n)
	}
	return v - 1, nil
}

// PromptKit bundles all prompt function types for dependency injection.
type PromptKit struct {
	Prompt      PromptFunc
	Confirm     ConfirmFunc
	Select      SelectFunc
	MultiSelect MultiSelectFunc
}

// NewPromptKit creates a PromptKit reading from in and writing to out.
func NewPromptKit(in io.Reader, out io.Writer) PromptKit {
	return PromptKit{
		Prompt:      NewPromptFunc(in, out),
		Confirm:     NewConfirmFunc(in, out),
		Select:      NewSelectFunc(in, out),
		MultiSelect: NewMultiSelectFunc(in, out),
	}
}

func promptKitFor(cmd *cobra.Command) PromptKit {
	return NewPromptKit(cmd.InOrStdin(), cmd.OutOrStdout())
}
