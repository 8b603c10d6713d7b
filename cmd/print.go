package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown for the terminal. On any rendering trouble
// the raw markdown is still printed, reports must never be lost to styling.
func printMarkdown(doc string) {
	out, err := glamour.Render(doc, "auto")
	if err != nil {
		fmt.Print(doc)
		return
	}
	fmt.Print(out)
}
