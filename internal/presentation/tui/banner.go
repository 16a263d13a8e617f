package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner shown when an interactive
// session starts.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Teal-to-green gradient.
	s1 := termenv.String("            _     ").Foreground(p.Color("#2dd4bf"))
	s2 := termenv.String("  __ _ ___| |__  ").Foreground(p.Color("#34d399"))
	s3 := termenv.String(" / _` / __| '_ \\ ").Foreground(p.Color("#4ade80"))
	s4 := termenv.String("| (_| \\__ \\ | | |").Foreground(p.Color("#86efac"))
	s5 := termenv.String(" \\__, |___/_| |_|").Foreground(p.Color("#bbf7d0"))
	s6 := termenv.String(" |___/           ").Foreground(p.Color("#dcfce7"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(s6)
	fmt.Printf("  graph shell %s\n", version)
	fmt.Println()
}
