// Package report formats benchmark-mode output.
package report

import (
	"io"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// printer formats numbers with English conventions regardless of the
// process locale, so the report line is stable for scripts.
var printer = message.NewPrinter(language.English)

// WriteRenderTime writes "Render time: S.SSS seconds" and a newline.
// The seconds always carry three decimals and never a digit separator.
func WriteRenderTime(w io.Writer, elapsed time.Duration) error {
	secs := number.Decimal(elapsed.Seconds(), number.NoSeparator(), number.Scale(3))
	_, err := printer.Fprintf(w, "Render time: %v seconds\n", secs)
	return err
}

// Time runs fn once and returns how long it took.
// The duration is returned even when fn fails.
func Time(fn func() error) (time.Duration, error) {
	start := time.Now()
	err := fn()
	return time.Since(start), err
}
