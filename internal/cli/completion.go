package cli

import (
	"io"

	"github.com/lgulich/dotfiles/pkg/errors"
	"github.com/spf13/cobra"
)

// GenCompletion writes the completion script of root for shell
func GenCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	default:
		return errors.Newf(errors.ErrInvalidInput, "unsupported shell %q (expected bash, zsh, fish or powershell)", shell).
			WithDetail("shell", shell)
	}
}
