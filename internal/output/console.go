// Package output provides console output while a benchmark run is in progress.
package output

import (
	"fmt"
	"io"
	"math"
	"os"
	"sync"
	"time"
)

// ANSI escape codes for cursor control
const (
	carriageReturn = "\r"
	clearToEnd     = "\033[K"
)

// BannerInfo describes the run shown before sampling starts.
type BannerInfo struct {
	Suite            string
	Tests            int
	Iterations       int
	TimePerIteration time.Duration
	Platform         string
	GoVersion        string
	MaxProcs         int
}

// TotalTimePerTest is the sampling time each test receives.
func (b BannerInfo) TotalTimePerTest() time.Duration {
	return time.Duration(b.Iterations) * b.TimePerIteration
}

// Console renders the banner and run progress.
type Console struct {
	writer io.Writer
	isTTY  bool
	quiet  bool
	colors *ColorScheme

	useColors bool

	mu       sync.Mutex
	lastStep int
	active   bool
}

// ConsoleConfig contains configuration for Console.
type ConsoleConfig struct {
	Writer      io.Writer
	Quiet       bool
	ForceColors bool
	ForceTTY    bool
	NoColor     bool
}

// NewConsole creates a new console output handler.
func NewConsole(config ConsoleConfig) *Console {
	if config.Writer == nil {
		config.Writer = os.Stdout
	}

	isTTY := config.ForceTTY || IsTerminal(config.Writer)
	useColors := !config.NoColor && (config.ForceColors || (isTTY && supportsColors()))

	colors := NoColorScheme()
	if useColors {
		colors = DefaultColorScheme()
		colors.Heading.EnableColor()
		colors.Label.EnableColor()
		colors.Value.EnableColor()
		colors.Progress.EnableColor()
		colors.Warning.EnableColor()
	}

	return &Console{
		writer:    config.Writer,
		isTTY:     isTTY,
		quiet:     config.Quiet,
		colors:    colors,
		useColors: useColors,
		lastStep:  -1,
	}
}

// IsTerminal checks if the writer is a terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isTerminalFile(f)
	}
	return false
}

func isTerminalFile(f *os.File) bool {
	if f == os.Stdout || f == os.Stderr {
		return checkIsTerminal(f)
	}
	return false
}

// supportsColors checks if the terminal supports colors.
func supportsColors() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	term := os.Getenv("TERM")
	return term != "" && term != "dumb"
}

// IsTTY returns whether the output is a terminal.
func (c *Console) IsTTY() bool {
	return c.isTTY
}

// Banner prints the run configuration.
func (c *Console) Banner(info BannerInfo) {
	if c.quiet {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	rows := [][2]string{
		{"platform", fmt.Sprintf("%s, %s, GOMAXPROCS %d", info.Platform, info.GoVersion, info.MaxProcs)},
		{"suite", fmt.Sprintf("%s (%d tests)", info.Suite, info.Tests)},
		{"iterations", fmt.Sprintf("%d", info.Iterations)},
		{"time per iteration", formatDuration(info.TimePerIteration)},
		{"total time per test", formatDuration(info.TotalTimePerTest())},
	}

	c.writeln(c.colors.Heading.Sprint("Micro benchmark"))
	for _, r := range rows {
		c.writeln(fmt.Sprintf("%s : %s",
			c.colors.Label.Sprint(fmt.Sprintf("%-19s", r[0])),
			c.colors.Value.Sprint(r[1])))
	}
	c.writeln("")
}

// Progress reports the fraction of the run completed, from 0 to 1.
//
// On a terminal the status line is rewritten in place. Otherwise a line is
// printed every 10%.
func (c *Console) Progress(done float64) {
	if c.quiet {
		return
	}

	done = math.Max(0, math.Min(1, done))

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isTTY {
		c.write(carriageReturn + clearToEnd)
		c.write(c.colors.Progress.Sprint(fmt.Sprintf("Running tests %.1f%%...", done*100)))
		c.active = true
		return
	}

	step := int(done * 10)
	if step <= c.lastStep {
		return
	}
	c.lastStep = step
	c.writeln(fmt.Sprintf("Running tests %d%%", step*10))
}

// Finish clears the in-place status line.
func (c *Console) Finish() {
	if c.quiet {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active {
		c.write(carriageReturn + clearToEnd)
		c.active = false
	}
}

// Warn prints a warning line.
func (c *Console) Warn(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.writeln(WarningIcon(!c.useColors) + " " + c.colors.Warning.Sprint(fmt.Sprintf(format, args...)))
}

func (c *Console) write(s string) {
	fmt.Fprint(c.writer, s)
}

func (c *Console) writeln(s string) {
	fmt.Fprintln(c.writer, s)
}

// formatDuration formats a duration in a human-readable format.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm %02ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh %02dm %02ds", h, m, s)
}
