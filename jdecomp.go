package jdecomp

import (
	"io"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/wippyai/jdecomp/bytecode"
	"github.com/wippyai/jdecomp/errors"
	"github.com/wippyai/jdecomp/format"
	"github.com/wippyai/jdecomp/metadata"
	"github.com/wippyai/jdecomp/output"
	"github.com/wippyai/jdecomp/render"
)

// Disassemble writes the bytecode listing of body to w. Render faults and the
// first write error are returned together.
func Disassemble(w io.Writer, body *bytecode.MethodBody, settings render.Settings) error {
	out := output.NewPlainTextOutputTo(w)
	err := render.NewPrinter(out, settings).PrintMethod(body)
	if werr := out.Err(); werr != nil {
		err = multierr.Append(err, errors.Wrap(errors.PhaseRender, errors.KindInvalidInput, werr, "write listing"))
	}
	return err
}

// FormatType returns t written in syntax.
func FormatType(t metadata.TypeReference, syntax format.NameSyntax) (string, error) {
	var out output.Recorder
	if err := format.WriteType(&out, t, syntax); err != nil {
		return "", err
	}
	return out.String(), nil
}

// FormatMethod returns the descriptor-style form of m: "java/lang/Integer.parseInt:(Ljava/lang/String;)I".
func FormatMethod(m *metadata.MethodReference) (string, error) {
	var out output.Recorder
	if err := format.WriteMethod(&out, m); err != nil {
		return "", err
	}
	return out.String(), nil
}

// SetLogger installs logger in every package that logs.
func SetLogger(logger *zap.Logger) {
	bytecode.SetLogger(logger)
	format.SetLogger(logger)
	render.SetLogger(logger)
}
