package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{"             _", "#818cf8"},
	{"  _ __ ___ | | __ _ _   _", "#a78bfa"},
	{" | '__/ _ \\| |/ _` | | | |", "#c084fc"},
	{" | | |  __/| | (_| | |_| |", "#e879f9"},
	{" |_|  \\___||_|\\__,_|\\__, |", "#f472b6"},
	{"                    |___/", "#fb7185"},
}

// PrintBanner writes the relay ASCII banner to w using profile p.
// termenv.Ascii disables colors.
func PrintBanner(w io.Writer, p termenv.Profile) {
	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, p.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
