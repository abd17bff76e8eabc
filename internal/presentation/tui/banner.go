package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs an ASCII art banner for Espalier.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Green-to-teal gradient, one hue step per line
	s1 := termenv.String("  _____                 _ _            ").Foreground(p.Color("#4ade80"))
	s2 := termenv.String(" | ____|___ _ __   __ _| (_) ___ _ __  ").Foreground(p.Color("#34d399"))
	s3 := termenv.String(" |  _| / __| '_ \\ / _` | | |/ _ \\ '__| ").Foreground(p.Color("#2dd4bf"))
	s4 := termenv.String(" | |___\\__ \\ |_) | (_| | | |  __/ |    ").Foreground(p.Color("#22d3ee"))
	s5 := termenv.String(" |_____|___/ .__/ \\__,_|_|_|\\___|_|    ").Foreground(p.Color("#38bdf8"))
	s6 := termenv.String("           |_|                         ").Foreground(p.Color("#60a5fa"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(s6)
	fmt.Println()
}
