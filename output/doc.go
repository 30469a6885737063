// Package output defines the sink that formatters and renderers write to.
//
// Writers classify every token (keyword, literal, delimiter, definition, reference,
// label, error and so on); the sink decides only how to present it. PlainTextOutput
// renders tokens as indented text. Recorder keeps the token stream for inspection.
package output
