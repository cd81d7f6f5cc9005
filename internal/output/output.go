package output

import (
	"fmt"
	"io"
)

// Formatter writes terminal output for the interactive front-end
type Formatter struct {
	w io.Writer
}

func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

// Writer returns the underlying writer
func (f *Formatter) Writer() io.Writer {
	return f.w
}

func (f *Formatter) Error(msg string) {
	fmt.Fprintf(f.w, "❌ %s\n", msg)
}

func (f *Formatter) Info(msg string) {
	fmt.Fprintf(f.w, "ℹ️  %s\n", msg)
}

func (f *Formatter) Success(msg string) {
	fmt.Fprintf(f.w, "✅ %s\n", msg)
}

func (f *Formatter) Warning(msg string) {
	fmt.Fprintf(f.w, "⚠️  %s\n", msg)
}

// Alert shows a user notification raised by a view
func (f *Formatter) Alert(msg string) {
	fmt.Fprintf(f.w, "🔔 %s\n", msg)
}

func (f *Formatter) Recording() {
	fmt.Fprintf(f.w, "🎙️  Starting recording...\n")
}

func (f *Formatter) Transcribing() {
	fmt.Fprintf(f.w, "📝 Generating transcription...\n")
}

func (f *Formatter) Summarizing() {
	fmt.Fprintf(f.w, "🤖 Generating summary...\n")
}

// Screen prints a rendered view followed by a blank line
func (f *Formatter) Screen(rendered string) {
	fmt.Fprintf(f.w, "%s\n", rendered)
}

func (f *Formatter) Prompt(label string) {
	fmt.Fprintf(f.w, "%s> ", label)
}
