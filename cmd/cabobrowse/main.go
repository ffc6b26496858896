// Command cabobrowse interactively browses a CABO parameter file in the
// terminal.
//
// The comment header stays pinned at the top while one aligned
// "name kind value" row per parameter scrolls beneath it. The file is
// re-parsed whenever it changes on disk, so the view can sit next to an
// editor during calibration work. Parse warnings, such as duplicate
// parameter definitions, appear in the footer.
//
// # Usage
//
//	cabobrowse [flags] <file.cab>
//
// # Flags
//
//	-version   print version information and exit
//
// # Keys
//
//	up/k, down/j      scroll one row
//	pgup, pgdown      scroll one page
//	g/home, G/end     jump to top / bottom
//	q, esc, ctrl+c    quit
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/term"

	tea "charm.land/bubbletea/v2"

	"github.com/burggraaff/pcse/cabo"
	"github.com/burggraaff/pcse/log"
	"github.com/burggraaff/pcse/version"
)

// reloadDebounce coalesces the event bursts editors produce on save into a
// single re-parse.
const reloadDebounce = 200 * time.Millisecond

func main() {
	os.Exit(run0(os.Args[1:]))
}

func run0(args []string) int {
	fs := flag.NewFlagSet("cabobrowse", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: cabobrowse [flags] <file.cab>\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	showVersion := fs.Bool("version", false, "print version information and exit")

	err := fs.Parse(args)
	if err != nil {
		return 2
	}

	if *showVersion {
		fmt.Println(version.String())

		return 0
	}

	if fs.NArg() != 1 {
		fs.Usage()

		return 1
	}

	path := fs.Arg(0)

	// Route warnings into a feed consumed by the footer. Writing them to
	// stderr would corrupt the alternate screen.
	feed := log.NewFeed()
	defer feed.Close()

	tail := feed.Tail()

	slog.SetDefault(slog.New(log.NewHandler(feed, log.LevelWarn, log.FormatText)))

	ps, err := parseFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return 1
	}

	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unable to detect terminal size: %v\n", err)

		return 1
	}

	p := tea.NewProgram(newModel(path, ps, tail, width, height))

	watcher, err := watchFile(path, p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return 1
	}

	defer watcher.Close() //nolint:errcheck // nothing to do with a close error here

	_, err = p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return 1
	}

	return 0
}

func parseFile(path string) (*cabo.ParameterSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	ps, err := cabo.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return ps, nil
}

// reloadMsg carries the result of re-parsing the file after a change.
type reloadMsg struct {
	ps  *cabo.ParameterSet
	err error
}

// logMsg carries one line delivered by the log feed.
type logMsg string

// watchFile re-parses path whenever it changes on disk and delivers the
// result to the program as a [reloadMsg]. Closing the returned watcher stops
// the goroutine.
func watchFile(path string, p *tea.Program) (io.Closer, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	// Watch the parent directory rather than the file itself so atomic
	// saves (write temp file, rename over target) stay visible.
	err = watcher.Add(filepath.Dir(abs))
	if err != nil {
		watcher.Close() //nolint:errcheck // the add error is the one worth reporting

		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	go func() {
		var (
			timer  *time.Timer
			timerC <-chan time.Time
		)

		for {
			select {
			case <-timerC:
				timerC = nil

				ps, parseErr := parseFile(path)
				p.Send(reloadMsg{ps: ps, err: parseErr})

			case watchErr, ok := <-watcher.Errors:
				if !ok {
					return
				}

				slog.Warn("watcher error", slog.Any("error", watchErr))

			case event, ok := <-watcher.Events:
				if !ok {
					if timer != nil {
						timer.Stop()
					}

					return
				}

				if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}

				eventAbs, absErr := filepath.Abs(event.Name)
				if absErr != nil || eventAbs != abs {
					continue
				}

				if timer == nil {
					timer = time.NewTimer(reloadDebounce)
					timerC = timer.C

					continue
				}

				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}

				timer.Reset(reloadDebounce)
				timerC = timer.C
			}
		}
	}()

	return watcher, nil
}

// waitForLog blocks until the feed delivers a line, then hands it to Update.
func waitForLog(tail *log.Tail) tea.Cmd {
	return func() tea.Msg {
		line, ok := <-tail.C()
		if !ok {
			return nil
		}

		return logMsg(line)
	}
}

// model is the bubbletea model for the parameter browser.
type model struct {
	path   string
	ps     *cabo.ParameterSet
	tail   *log.Tail
	rows   []string
	status string
	width  int
	height int
	offset int
}

func newModel(path string, ps *cabo.ParameterSet, tail *log.Tail, width, height int) *model {
	return &model{
		path:   path,
		ps:     ps,
		tail:   tail,
		rows:   parameterRows(ps),
		width:  width,
		height: height,
	}
}

// Init starts the feed subscription.
func (m *model) Init() tea.Cmd {
	return waitForLog(m.tail)
}

// Update handles key, resize, reload, and log messages.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.scroll(-1)
		case "down", "j":
			m.scroll(1)
		case "pgup":
			m.scroll(-m.visibleRows())
		case "pgdown":
			m.scroll(m.visibleRows())
		case "g", "home":
			m.offset = 0
		case "G", "end":
			m.scroll(len(m.rows))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampOffset()

	case reloadMsg:
		// Keep the last good parse on a failed reload so the view never
		// goes blank mid-edit.
		if msg.err != nil {
			m.status = "reload failed: " + msg.err.Error()

			return m, nil
		}

		m.ps = msg.ps
		m.rows = parameterRows(msg.ps)
		m.status = fmt.Sprintf("reloaded: %d parameters", msg.ps.Len())
		m.clampOffset()

	case logMsg:
		m.status = string(msg)

		return m, waitForLog(m.tail)
	}

	return m, nil
}

// View renders the pinned header, the visible row window, and the footer.
func (m *model) View() tea.View {
	var sb strings.Builder

	header := m.ps.Header()
	for _, line := range header {
		sb.WriteString(truncate(line, m.width))
		sb.WriteByte('\n')
	}

	sb.WriteString(truncate(strings.Repeat("-", max(m.width, 1)), m.width))
	sb.WriteByte('\n')

	visible := m.visibleRows()
	end := min(m.offset+visible, len(m.rows))

	for _, row := range m.rows[m.offset:end] {
		sb.WriteString(truncate(row, m.width))
		sb.WriteByte('\n')
	}

	// Pad so the footer stays on the last line.
	for i := end - m.offset; i < visible; i++ {
		sb.WriteByte('\n')
	}

	sb.WriteString(truncate(m.footer(end), m.width))

	v := tea.NewView(sb.String())
	v.AltScreen = true

	return v
}

func (m *model) footer(end int) string {
	info := fmt.Sprintf("%s  %d-%d/%d", filepath.Base(m.path), m.offset+1, end, len(m.rows))
	if len(m.rows) == 0 {
		info = fmt.Sprintf("%s  0/0", filepath.Base(m.path))
	}

	if m.status != "" {
		return info + "  " + m.status
	}

	return info
}

func (m *model) scroll(delta int) {
	m.offset += delta
	m.clampOffset()
}

func (m *model) clampOffset() {
	maxOffset := len(m.rows) - m.visibleRows()
	if maxOffset < 0 {
		maxOffset = 0
	}

	if m.offset > maxOffset {
		m.offset = maxOffset
	}

	if m.offset < 0 {
		m.offset = 0
	}
}

// visibleRows is the row window height: everything not taken by the header,
// the separator, and the footer.
func (m *model) visibleRows() int {
	visible := m.height - len(m.ps.Header()) - 2
	if visible < 1 {
		return 1
	}

	return visible
}

// parameterRows renders one aligned "name kind value" line per parameter, in
// file order.
func parameterRows(ps *cabo.ParameterSet) []string {
	names := ps.Names()

	nameWidth := 0
	for _, name := range names {
		nameWidth = max(nameWidth, len(name))
	}

	rows := make([]string, 0, len(names))

	for _, name := range names {
		value, _ := ps.Get(name)
		rows = append(rows, fmt.Sprintf("%-*s  %-9T  %v", nameWidth, name, value, value))
	}

	return rows
}

// truncate hard-clips a line to the terminal width so long values cannot
// wrap and break the fixed layout.
func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}

	runes := []rune(s)
	if len(runes) <= width {
		return s
	}

	return string(runes[:width])
}
