package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCompletionCommand creates the completion command, which generates
// shell completion scripts for bash, zsh, fish and powershell.
func NewCompletionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion <bash|zsh|fish|powershell>",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for lsx and write it to stdout.

Examples:
  lsx completion bash > ~/.local/share/bash-completion/completions/lsx
  lsx completion zsh > ~/.zfunc/_lsx
  lsx completion fish > ~/.config/fish/completions/lsx.fish`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			out := cmd.OutOrStdout()

			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(out)
			default:
				return fmt.Errorf("unsupported shell %q", args[0])
			}
		},
	}
}
