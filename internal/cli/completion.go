package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

const completionMarker = "umrahplan completion"

// shellSetup describes where a shell reads its startup config and the line
// that loads umrahplan completions from it.
type shellSetup struct {
	rcFile   string
	evalLine string
}

var shells = map[string]shellSetup{
	"bash":       {".bashrc", `eval "$(umrahplan completion generate bash)"`},
	"zsh":        {".zshrc", `eval "$(umrahplan completion generate zsh)"`},
	"fish":       {".config/fish/config.fish", `umrahplan completion generate fish | source`},
	"powershell": {".config/powershell/Microsoft.PowerShell_profile.ps1", `umrahplan completion generate powershell | Out-String | Invoke-Expression`},
}

var validShells = []string{"bash", "zsh", "fish", "powershell"}

var completionCmd = GroupCommand{
	Use:   "completion",
	Short: "Manage shell completions",
	Subcommands: []*cobra.Command{
		completionGenerateCmd,
		completionInstallCmd,
	},
}.Build()

var completionGenerateCmd = newCompletionGenerateCmd()

func newCompletionGenerateCmd() *cobra.Command {
	cmd := LeafCommand{
		Use:   "generate [SHELL]",
		Short: "Generate shell completion script",
		Args:  cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell, err := shellArg(args)
			if err != nil {
				return err
			}
			return runCompletion(cmd, shell)
		},
	}.Build()
	cmd.ValidArgs = validShells
	return cmd
}

var completionInstallCmd = LeafCommand{
	Use:   "install [SHELL]",
	Short: "Install shell completions into your shell config",
	Args:  cobra.RangeArgs(0, 1),
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		shell, err := shellArg(args)
		if err != nil {
			return err
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		yes, _ := cmd.Flags().GetBool("yes")
		return runCompletionInstall(cmd, shell, homeDir, ResolveConfirmFunc(cmd, yes))
	},
}.Build()

func shellArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if shell := detectShell(); shell != "" {
		return shell, nil
	}
	return "", fmt.Errorf("could not detect shell from $SHELL; please specify one of %s", strings.Join(validShells, ", "))
}

// detectShell maps $SHELL to a supported shell name, or "" when unknown.
func detectShell() string {
	switch base := filepath.Base(os.Getenv("SHELL")); base {
	case "bash", "zsh", "fish":
		return base
	}
	return ""
}

func runCompletion(cmd *cobra.Command, shell string) error {
	root := cmd.Root()
	out := cmd.OutOrStdout()

	switch shell {
	case "bash":
		return root.GenBashCompletionV2(out, true)
	case "zsh":
		return root.GenZshCompletion(out)
	case "fish":
		return root.GenFishCompletion(out, true)
	case "powershell":
		return root.GenPowerShellCompletion(out)
	default:
		return fmt.Errorf("unsupported shell: %s (valid: %s)", shell, strings.Join(validShells, ", "))
	}
}

func runCompletionInstall(cmd *cobra.Command, shell, homeDir string, confirm ConfirmFunc) error {
	setup, ok := shells[shell]
	if !ok {
		return fmt.Errorf("unsupported shell for completion install: %s", shell)
	}
	rcPath := filepath.Join(homeDir, setup.rcFile)
	display := filepath.Join("~", setup.rcFile)

	if data, err := os.ReadFile(rcPath); err == nil && strings.Contains(string(data), completionMarker) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("shell completions already installed for %s in %s", Primary(shell), Primary(display))))
		return nil
	}

	ok, err := confirm(fmt.Sprintf("Install shell completions for %s into %s?", shell, display))
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(rcPath), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(rcPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	_, writeErr := fmt.Fprintf(f, "\n# umrahplan shell completion\n%s\n", setup.evalLine)
	if closeErr := f.Close(); closeErr != nil {
		return closeErr
	}
	if writeErr != nil {
		return writeErr
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("shell completions installed for %s in %s", Primary(shell), Primary(display))))
	return nil
}
