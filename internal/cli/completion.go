package cli

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wireframe/pkg/pipeline"
)

var viewports = []string{"mobile", "tablet", "desktop", "default"}

// completionCommand prints a shell completion script.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a completion script for wireframe. Besides commands and flags it
completes --format, --style and --viewport values.

  $ source <(wireframe completion bash)
  $ wireframe completion zsh > "${fpath[1]}/_wireframe"
  $ wireframe completion fish > ~/.config/fish/completions/wireframe.fish
  PS> wireframe completion powershell | Out-String | Invoke-Expression`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

// registerValueCompletions attaches value completion to whichever of the
// --format, --style and --viewport flags cmd defines.
func registerValueCompletions(cmd *cobra.Command) {
	if cmd.Flags().Lookup("format") != nil {
		_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
	}
	if cmd.Flags().Lookup("style") != nil {
		_ = cmd.RegisterFlagCompletionFunc("style", cobra.FixedCompletions(pipeline.ValidStyles, cobra.ShellCompDirectiveNoFileComp))
	}
	if cmd.Flags().Lookup("viewport") != nil {
		_ = cmd.RegisterFlagCompletionFunc("viewport", cobra.FixedCompletions(viewports, cobra.ShellCompDirectiveNoFileComp))
	}
}

// completeFormats completes the last entry of a comma-separated format list,
// skipping formats already given.
func completeFormats(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	prefix, given := "", []string(nil)
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		prefix = toComplete[:i+1]
		given = parseFormats(prefix)
	}
	var out []string
	for _, f := range pipeline.ValidFormats {
		if !slices.Contains(given, f) {
			out = append(out, prefix+f)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}
