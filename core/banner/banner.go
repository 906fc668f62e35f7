// Package banner prints the human readable startup report.
package banner

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// PrintServing reports the served directory and every URL it is reachable
// at.
func PrintServing(w io.Writer, root string, urls []string) {
	path := color.New(color.FgYellow, color.Bold).Sprint(root)

	green := color.New(color.FgGreen, color.Bold)
	painted := make([]string, len(urls))
	for i, u := range urls {
		painted[i] = green.Sprint(u)
	}

	fmt.Fprintf(w, "Serving file path %s at %s\n", path, strings.Join(painted, ", "))
	fmt.Fprintf(w, "Server is running...\nQuit by pressing %s\n", color.New(color.FgRed, color.Bold).Sprint("CTRL-C"))
}
