// Package render turns portfolio sections into one scrollable terminal
// document and measures where each section and link landed.
package render

import (
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Block is one section's Markdown source.
type Block struct {
	ID       string
	Markdown string
}

// Link is a Markdown link located in the rendered document.
type Link struct {
	Text   string
	Target string // url or #section
	Line   int    // rendered line, -1 if not found
}

// Options controls rendering.
type Options struct {
	Width int
	// Style is a glamour style: auto, dark, light, notty, dracula, pink,
	// or a JSON style file path.
	Style string
	// MinSectionRows pads short sections so each one is at least this tall.
	MinSectionRows int
}

// Document is the concatenated rendering of all blocks.
type Document struct {
	Lines []string
	Tops  map[string]int
	Links []Link
}

// ANSI: SGR sequences and OSC 8 hyperlinks
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]|\x1b\]8;;.*?\x1b\\|\x1b\\`)

func StripANSI(s string) string { return ansiRE.ReplaceAllString(s, "") }

var reLink = regexp.MustCompile(`\[(?P<text>[^\]]+)\]\((?P<dest>[^)]+)\)`)

func newRenderer(width int, style string) (*glamour.TermRenderer, error) {
	opts := []glamour.TermRendererOption{
		glamour.WithWordWrap(width),
	}

	switch strings.ToLower(strings.TrimSpace(style)) {
	case "", "auto":
		opts = append(opts, glamour.WithAutoStyle())
	case "dark", "light", "notty", "dracula", "pink":
		opts = append(opts, glamour.WithStylePath(style))
	default:
		// A JSON style file, else fall back to auto.
		if _, err := os.Stat(style); err == nil {
			opts = append(opts, glamour.WithStylesFromJSONFile(style))
		} else {
			opts = append(opts, glamour.WithAutoStyle())
		}
	}
	return glamour.NewTermRenderer(opts...)
}

// Build renders every block in order. A block's top is the document line
// its rendering starts on.
func Build(blocks []Block, opts Options) (*Document, error) {
	width := opts.Width
	if width < 20 {
		width = 20
	}
	r, err := newRenderer(width, opts.Style)
	if err != nil {
		return nil, err
	}

	doc := &Document{Tops: make(map[string]int, len(blocks))}
	for _, b := range blocks {
		out, err := r.Render(b.Markdown)
		if err != nil {
			return nil, err
		}
		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		for len(lines) < opts.MinSectionRows {
			lines = append(lines, "")
		}
		top := len(doc.Lines)
		doc.Tops[b.ID] = top
		doc.Links = append(doc.Links, indexLinks(b.Markdown, lines, top)...)
		doc.Lines = append(doc.Lines, lines...)
	}
	return doc, nil
}

func indexLinks(md string, lines []string, top int) []Link {
	plain := StripANSI(strings.Join(lines, "\n"))
	var out []Link
	for _, mm := range reLink.FindAllStringSubmatchIndex(md, -1) {
		text := md[mm[2]:mm[3]]
		dest := md[mm[4]:mm[5]]
		needle := dest
		if strings.HasPrefix(dest, "#") {
			needle = text
		}
		idx := lineOf(plain, needle)
		if idx < 0 && needle != text {
			idx = lineOf(plain, text)
		}
		if idx >= 0 {
			idx += top
		}
		out = append(out, Link{Text: text, Target: dest, Line: idx})
	}
	return out
}

// lineOf returns the zero-based line of the first occurrence of needle in
// text, or -1.
func lineOf(text, needle string) int {
	before, _, found := strings.Cut(text, needle)
	if needle == "" || !found {
		return -1
	}
	return strings.Count(before, "\n")
}

// LastTop is the greatest section top.
func (d *Document) LastTop() int {
	last := 0
	for _, top := range d.Tops {
		if top > last {
			last = top
		}
	}
	return last
}

// Padded returns the lines with blank rows appended so that scrolling a
// viewHeight-tall viewport can bring the last section to the top.
func (d *Document) Padded(viewHeight int) []string {
	need := d.LastTop() + viewHeight
	if len(d.Lines) >= need {
		return d.Lines
	}
	out := make([]string, len(d.Lines), need)
	copy(out, d.Lines)
	for len(out) < need {
		out = append(out, "")
	}
	return out
}

// SectionAt returns the id of the section containing line, or "".
func (d *Document) SectionAt(line int) string {
	best, bestTop := "", -1
	for id, top := range d.Tops {
		if top <= line && top > bestTop {
			best, bestTop = id, top
		}
	}
	return best
}
