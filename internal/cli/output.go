package cli

import (
	"io"

	"github.com/fatih/color"
)

var (
	titleColor  = color.New(color.FgMagenta, color.Bold)
	idColor     = color.New(color.FgHiBlack)
	pinnedColor = color.New(color.FgYellow)
	tagColor    = color.New(color.FgCyan)
	okColor     = color.New(color.FgGreen)
)

// Title imprime um título
func Title(w io.Writer, text string, args ...any) {
	titleColor.Fprintf(w, text+"\n", args...)
}

// Success imprime uma mensagem de sucesso
func Success(w io.Writer, text string, args ...any) {
	okColor.Fprintf(w, text+"\n", args...)
}
