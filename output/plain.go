package output

import (
	"io"
	"strings"
)

var (
	_ Output = (*PlainTextOutput)(nil)
	_ Output = (*Recorder)(nil)
)

// DefaultIndent is the indentation written per level by PlainTextOutput.
const DefaultIndent = "    "

// PlainTextOutput renders tokens as plain text, indenting each line by the current
// level. Token kinds are not distinguished.
type PlainTextOutput struct {
	w           io.Writer
	buf         *strings.Builder
	err         error
	IndentToken string
	level       int
	needsIndent bool
	line        int
	column      int
}

// NewPlainTextOutput returns an output that buffers text in memory; read it back
// with String.
func NewPlainTextOutput() *PlainTextOutput {
	buf := &strings.Builder{}
	return &PlainTextOutput{w: buf, buf: buf, IndentToken: DefaultIndent, needsIndent: true, line: 1, column: 1}
}

// NewPlainTextOutputTo returns an output that writes through to w. The first write
// error is kept and reported by Err; later writes are dropped.
func NewPlainTextOutputTo(w io.Writer) *PlainTextOutput {
	return &PlainTextOutput{w: w, IndentToken: DefaultIndent, needsIndent: true, line: 1, column: 1}
}

func (o *PlainTextOutput) emit(text string) {
	if o.err != nil || text == "" {
		return
	}
	if o.needsIndent {
		o.needsIndent = false
		indent := strings.Repeat(o.IndentToken, o.level)
		o.column += len(indent)
		o.raw(indent)
	}
	o.column += len(text)
	o.raw(text)
}

func (o *PlainTextOutput) raw(text string) {
	if o.err != nil || text == "" {
		return
	}
	if _, err := io.WriteString(o.w, text); err != nil {
		o.err = err
	}
}

func (o *PlainTextOutput) Write(text string)            { o.emit(text) }
func (o *PlainTextOutput) WriteKeyword(text string)     { o.emit(text) }
func (o *PlainTextOutput) WriteLiteral(text string)     { o.emit(text) }
func (o *PlainTextOutput) WriteTextLiteral(text string) { o.emit(text) }
func (o *PlainTextOutput) WriteDelimiter(text string)   { o.emit(text) }
func (o *PlainTextOutput) WriteOperator(text string)    { o.emit(text) }
func (o *PlainTextOutput) WriteAttribute(text string)   { o.emit(text) }
func (o *PlainTextOutput) WriteLabel(text string)       { o.emit(text) }
func (o *PlainTextOutput) WriteComment(text string)     { o.emit(text) }
func (o *PlainTextOutput) WriteError(text string)       { o.emit(text) }

func (o *PlainTextOutput) WriteDefinition(text string, _ any, _ bool) { o.emit(text) }
func (o *PlainTextOutput) WriteReference(text string, _ any, _ bool)  { o.emit(text) }

func (o *PlainTextOutput) WriteLine() {
	o.raw("\n")
	o.needsIndent = true
	o.line++
	o.column = 1
}

func (o *PlainTextOutput) Indent() { o.level++ }

func (o *PlainTextOutput) Unindent() {
	if o.level > 0 {
		o.level--
	}
}

// Line returns the 1-based line of the next write.
func (o *PlainTextOutput) Line() int { return o.line }

// Column returns the 1-based column of the next write, counting bytes.
func (o *PlainTextOutput) Column() int { return o.column }

// Err returns the first error from the underlying writer.
func (o *PlainTextOutput) Err() error { return o.err }

// String returns the text written so far. It is empty for outputs created with
// NewPlainTextOutputTo.
func (o *PlainTextOutput) String() string {
	if o.buf == nil {
		return ""
	}
	return o.buf.String()
}
