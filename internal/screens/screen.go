package screens

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Screen is one entry of a tab's nested history.
type Screen interface {
	ID() string
	Title() string
	// Links lists the screens reachable from this one.
	Links() []string
	View(width, height int) string
}

// ScreenSpec is the static description of a screen in a graph.
type ScreenSpec struct {
	ID       string   `mapstructure:"id"`
	Title    string   `mapstructure:"title"`
	Body     string   `mapstructure:"body"`
	Children []string `mapstructure:"children"`
}

// MarkdownScreen renders its body as markdown. {{key}} placeholders in the
// title and body are filled from the arguments it was opened with.
type MarkdownScreen struct {
	spec  ScreenSpec
	args  map[string]string
	style string

	cacheWidth int
	cache      string
}

func NewMarkdownScreen(spec ScreenSpec, args map[string]string, style string) *MarkdownScreen {
	return &MarkdownScreen{spec: spec, args: args, style: style}
}

func (s *MarkdownScreen) ID() string { return s.spec.ID }

// Title falls back to the screen id when the expanded title is blank.
func (s *MarkdownScreen) Title() string {
	if t := strings.TrimSpace(expand(s.spec.Title, s.args)); t != "" {
		return t
	}
	return s.spec.ID
}

func (s *MarkdownScreen) Links() []string { return slices.Clone(s.spec.Children) }

func (s *MarkdownScreen) Arg(key string) string { return s.args[key] }

func (s *MarkdownScreen) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if s.cache == "" || s.cacheWidth != width {
		body := expand(s.spec.Body, s.args)
		out, err := renderMarkdown(body, width, s.style)
		if err != nil {
			out = fmt.Sprintf("%s\n\n(render failed: %v)", body, err)
		}
		s.cache = strings.TrimRight(out, "\n")
		s.cacheWidth = width
	}
	return clipHeight(s.cache, height)
}

var placeholder = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_.-]+)\s*\}\}`)

// expand fills {{key}} placeholders. Keys without a value expand to "".
func expand(text string, args map[string]string) string {
	if !strings.Contains(text, "{{") {
		return text
	}
	return placeholder.ReplaceAllStringFunc(text, func(m string) string {
		return args[placeholder.FindStringSubmatch(m)[1]]
	})
}

func renderMarkdown(input string, width int, style string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", nil
	}
	if width <= 0 {
		width = 80
	}
	if style == "" {
		style = "dark"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithWordWrap(width),
		glamour.WithStandardStyle(style),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(input)
}

func clipHeight(s string, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
