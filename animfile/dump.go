package animfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/milk9111/animake/anim"
)

// WriteDump writes the pointer file for a catalog saved at binaryPath. Only
// the first line is ever read back; the rest is a literal listing meant to be
// pasted into game code.
func WriteDump(w io.Writer, binaryPath string, cat *anim.Catalog) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n", binaryPath)
	fmt.Fprintln(bw, "Removing the catalog path above stops animake from opening this file.")
	fmt.Fprintf(bw, "Texture: %s\n", cat.TextureFile)
	fmt.Fprintln(bw, "Copy-paste listing:")
	fmt.Fprintln(bw, "{")
	for i, clip := range cat.Clips {
		name := ""
		if i < len(cat.Names) {
			name = cat.Names[i]
		}
		fmt.Fprintln(bw, "\t{")
		fmt.Fprintf(bw, "\t\t%q,\n", name)
		fmt.Fprintf(bw, "\t\t%s,%s,\n", formatNumber(clip.OffsetX), formatNumber(clip.OffsetY))
		fmt.Fprintf(bw, "\t\t%s,%s,\n", formatNumber(clip.Width), formatNumber(clip.Height))
		fmt.Fprintf(bw, "\t\t%s,{%s}\n", loopLiteral(clip.Loop), patternList(clip.Patterns))
		fmt.Fprintln(bw, "\t},")
	}
	fmt.Fprint(bw, "};")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("animfile: write dump: %w", err)
	}
	return nil
}

// DumpString renders WriteDump into a string.
func DumpString(binaryPath string, cat *anim.Catalog) string {
	var sb strings.Builder
	_ = WriteDump(&sb, binaryPath, cat)
	return sb.String()
}

func patternList(ps []anim.Pattern) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = "{" + formatNumber(p.Wait) + "," + strconv.Itoa(p.Column) + "," + strconv.Itoa(p.Row) + "}"
	}
	return strings.Join(parts, ",")
}

func loopLiteral(loop bool) string {
	if loop {
		return "TRUE"
	}
	return "FALSE"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
