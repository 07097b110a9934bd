package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/milk9111/animake/anim"
	"github.com/milk9111/animake/animfile"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#c9a0ff"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#777"))
	cellStyle   = lipgloss.NewStyle().PaddingRight(2)
	loopStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7ee787"))
)

var columns = []string{"#", "name", "offset", "size", "loop", "patterns", "frames"}

func main() {
	dir := flag.String("dir", ".", "Directory catalog paths are relative to")
	text := flag.Bool("text", false, "Also print the copy-paste listing")
	plain := flag.Bool("plain", false, "Disable colors")
	flag.Parse()
	if flag.NArg() == 0 {
		log.Fatal("usage: animdump [flags] <catalog.anim|catalog.txt>...")
	}
	if *plain {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	store := animfile.Store{Dir: *dir}
	failed := false
	for _, path := range flag.Args() {
		cat, loc, err := store.Open(path)
		if err != nil {
			log.Printf("%s: %v", path, err)
			failed = true
			continue
		}
		printCatalog(os.Stdout, loc, cat)
		if *text {
			fmt.Fprintln(os.Stdout, animfile.DumpString(loc.Binary, cat))
			fmt.Fprintln(os.Stdout)
		}
	}
	if failed {
		os.Exit(1)
	}
}

func printCatalog(w io.Writer, loc animfile.Location, cat *anim.Catalog) {
	fmt.Fprintln(w, headerStyle.Render(loc.Binary))
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("texture %s  pointer %s  %d clips", cat.TextureFile, loc.Text, cat.Len())))

	rows := [][]string{columns}
	for i, clip := range cat.Clips {
		name := ""
		if i < len(cat.Names) {
			name = cat.Names[i]
		}
		rows = append(rows, []string{
			strconv.Itoa(i),
			name,
			fmt.Sprintf("%g,%g", clip.OffsetX, clip.OffsetY),
			fmt.Sprintf("%gx%g", clip.Width, clip.Height),
			strconv.FormatBool(clip.Loop),
			strconv.Itoa(len(clip.Patterns)),
			fmt.Sprintf("%g", totalWait(clip)),
		})
	}

	widths := make([]int, len(columns))
	for _, row := range rows {
		for c, v := range row {
			widths[c] = max(widths[c], lipgloss.Width(v))
		}
	}
	for r, row := range rows {
		cells := make([]string, len(row))
		for c, v := range row {
			style := cellStyle.Width(widths[c] + 2)
			switch {
			case r == 0:
				style = style.Inherit(dimStyle)
			case c == 4 && v == "true":
				style = style.Inherit(loopStyle)
			}
			cells[c] = style.Render(v)
		}
		fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	fmt.Fprintln(w)
}

// totalWait is the clip length in frames at a speed rate of 1.
func totalWait(clip anim.Clip) float64 {
	var sum float64
	for _, p := range clip.Patterns {
		sum += p.Wait
	}
	return sum
}
