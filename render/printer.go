package render

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/wippyai/jdecomp/bytecode"
	"github.com/wippyai/jdecomp/errors"
	"github.com/wippyai/jdecomp/format"
	"github.com/wippyai/jdecomp/metadata"
	"github.com/wippyai/jdecomp/output"
)

const (
	lineNumberCode = "linenumber"
	errorMarker    = "!!! ERROR"
	// lineIndent lines up continuation lines with the mnemonic column.
	lineIndent = "          "
	caseIndent = "            "
)

// mnemonicWidth is the padded width of the mnemonic column.
var mnemonicWidth = max(len(lineNumberCode), bytecode.MaxMnemonicLength())

// Printer writes bytecode listings.
type Printer struct {
	out      output.Output
	settings Settings
}

// NewPrinter creates a printer writing to out.
func NewPrinter(out output.Output, settings Settings) *Printer {
	if settings.OffsetWidth <= 0 {
		settings.OffsetWidth = DefaultSettings().OffsetWidth
	}
	return &Printer{out: out, settings: settings}
}

// PrintMethod writes the Code section of body: an optional stack summary followed
// by every instruction. Instructions that fail to render are marked in the output
// and their errors are returned together once the listing is complete.
func (p *Printer) PrintMethod(body *bytecode.MethodBody) error {
	if p.out == nil {
		return errors.NilPointer(errors.PhaseRender, []string{"output"}, "Output")
	}
	if body == nil {
		return errors.NilPointer(errors.PhaseRender, []string{"body"}, "MethodBody")
	}

	p.out.Indent()
	defer p.out.Unindent()

	p.out.WriteAttribute("Code")
	p.out.Write(":")
	p.out.WriteLine()

	if p.settings.ShowMethodStack {
		p.out.Indent()
		p.out.Write("stack=")
		p.out.WriteLiteral(strconv.Itoa(body.MaxStack))
		p.out.Write(", locals=")
		p.out.WriteLiteral(strconv.Itoa(body.MaxLocals))
		p.out.Write(", arguments=")
		p.out.WriteLiteral(strconv.Itoa(argumentCount(body)))
		p.out.WriteLine()
		p.out.Unindent()
	}

	var errs error
	for _, instr := range body.Instructions {
		errs = multierr.Append(errs, p.PrintInstruction(body, instr))
	}
	return errs
}

func argumentCount(body *bytecode.MethodBody) int {
	if body.Method == nil {
		return 0
	}
	return len(body.Method.Parameters())
}

// PrintInstruction writes one listing line for instr, preceded by its source line
// when line numbers are enabled. On failure the line holds the mnemonic and an
// error marker, and the fault is returned.
func (p *Printer) PrintInstruction(body *bytecode.MethodBody, instr *bytecode.Instruction) error {
	if p.out == nil {
		return errors.NilPointer(errors.PhaseRender, []string{"output"}, "Output")
	}
	if instr == nil {
		return errors.NilPointer(errors.PhaseRender, []string{"instruction"}, "Instruction")
	}

	if p.settings.ShowLineNumbers {
		if line, ok := body.LineNumber(instr.Offset); ok {
			p.out.Write(lineIndent)
			p.out.Write(padMnemonic(lineNumberCode))
			p.out.Write(" ")
			p.out.WriteLiteral(strconv.Itoa(line))
			p.out.WriteLine()
		}
	}

	p.out.WriteLabel(fmt.Sprintf("%*d", p.settings.OffsetWidth, instr.Offset))
	p.out.Write(": ")

	// Render into a recorder first so a fault leaves no partial operands behind.
	rec := output.NewRecorder()
	v := &visitor{out: rec, body: body, instr: instr, unicode: p.settings.UnicodeOutput}
	err := v.visit()
	if err != nil {
		Logger().Debug("instruction render failed",
			zap.Int("offset", instr.Offset),
			zap.String("opcode", instr.OpCode.String()),
			zap.Error(err))
		printOpCode(p.out, instr.OpCode)
		p.out.WriteError(errorMarker)
		p.out.WriteLine()
		return withOpcode(err, instr.OpCode)
	}
	rec.Replay(p.out)

	var effectErr error
	if p.settings.ShowStackEffects {
		effectErr = p.writeStackEffect(body, instr)
	}
	p.out.WriteLine()
	return effectErr
}

func (p *Printer) writeStackEffect(body *bytecode.MethodBody, instr *bytecode.Instruction) error {
	effect, err := bytecode.StackEffectOf(instr, body)
	if err != nil {
		Logger().Debug("stack effect unavailable",
			zap.Int("offset", instr.Offset),
			zap.String("opcode", instr.OpCode.String()),
			zap.Error(err))
		p.out.WriteComment(" // pop ? push ?")
		return err
	}
	p.out.WriteComment(fmt.Sprintf(" // pop %d push %d", effect.Pops, effect.Pushes))
	return nil
}

func padMnemonic(s string) string {
	if len(s) >= mnemonicWidth {
		return s
	}
	return s + strings.Repeat(" ", mnemonicWidth-len(s))
}

// printOpCode writes the mnemonic padded to the operand column. Switches are not
// padded because their operands start on the next line.
func printOpCode(out output.Output, op bytecode.OpCode) {
	if op == bytecode.OpTableswitch || op == bytecode.OpLookupswitch {
		out.WriteReference(op.String(), op, false)
		return
	}
	out.WriteReference(padMnemonic(op.String()), op, false)
}

// visitor writes the mnemonic and operands of one instruction. It writes no
// trailing newline.
type visitor struct {
	out     output.Output
	body    *bytecode.MethodBody
	instr   *bytecode.Instruction
	unicode bool
}

func (v *visitor) visit() error {
	op := v.instr.OpCode
	if !op.IsValid() {
		return errors.New(errors.PhaseRender, errors.KindUnsupported).
			Opcode(op.String()).
			Detail("unknown opcode").
			Build()
	}

	switch op.OperandType() {
	case bytecode.OperandNone:
		return v.visitNone()
	case bytecode.OperandI1, bytecode.OperandI2:
		return v.visitImmediate()
	case bytecode.OperandConstant, bytecode.OperandWideConstant:
		return v.visitConstant()
	case bytecode.OperandLocal:
		return v.visitVariable(false)
	case bytecode.OperandLocalI1, bytecode.OperandLocalI2:
		return v.visitVariable(true)
	case bytecode.OperandBranchTarget, bytecode.OperandBranchTargetWide:
		return v.visitBranch()
	case bytecode.OperandSwitch:
		return v.visitSwitch()
	case bytecode.OperandFieldReference:
		return v.visitField()
	case bytecode.OperandMethodReference:
		return v.visitMethod()
	case bytecode.OperandDynamicCallSite:
		return v.visitDynamicCallSite()
	case bytecode.OperandTypeReference, bytecode.OperandTypeReferenceU1, bytecode.OperandPrimitiveTypeCode:
		return v.visitType()
	}
	return errors.Unsupported(errors.PhaseRender, "operand type "+op.OperandType().String())
}

func (v *visitor) operand(n int) (metadata.Operand, error) {
	operand, err := v.instr.Operand(n)
	if err != nil {
		return nil, errors.New(errors.PhaseRender, errors.KindOutOfBounds).
			Opcode(v.instr.OpCode.String()).
			Cause(err).
			Detail("missing operand %d", n).
			Build()
	}
	return operand, nil
}

func (v *visitor) unsupported(operand metadata.Operand) error {
	return errors.UnsupportedOperand(errors.PhaseRender, v.instr.OpCode.String(), operand)
}

func (v *visitor) opcode() {
	printOpCode(v.out, v.instr.OpCode)
}

// findVariable looks the slot up at the instruction, and for stores also just
// past it, where the stored variable's scope begins.
func (v *visitor) findVariable(slot int) *bytecode.LocalVariable {
	local := v.body.FindVariable(slot, v.instr.Offset)
	if local == nil && v.instr.OpCode.IsStore() {
		local = v.body.FindVariable(slot, v.instr.Next())
	}
	if local == nil || local.Variable == nil || !local.Variable.HasName() || !local.FromMetadata {
		return nil
	}
	return local
}

func (v *visitor) visitNone() error {
	v.opcode()
	if slot, ok := v.instr.OpCode.LoadStoreMacroSlot(); ok {
		if local := v.findVariable(slot); local != nil {
			v.out.WriteComment(" /* " + format.Escape(local.Variable.Name, 0, v.unicode) + " */")
		}
	}
	return nil
}

func (v *visitor) visitImmediate() error {
	operand, err := v.operand(0)
	if err != nil {
		return err
	}
	value, ok := operand.(metadata.IntConstant)
	if !ok {
		return v.unsupported(operand)
	}
	v.opcode()
	v.out.Write(" ")
	v.out.WriteLiteral(strconv.Itoa(int(value)))
	return nil
}

func (v *visitor) visitConstant() error {
	operand, err := v.operand(0)
	if err != nil {
		return err
	}

	v.opcode()
	v.out.Write(" ")

	switch c := operand.(type) {
	case metadata.IntConstant:
		v.out.WriteLiteral(strconv.Itoa(int(c)))
	case metadata.LongConstant:
		v.out.WriteLiteral(strconv.FormatInt(int64(c), 10))
	case metadata.FloatConstant:
		v.out.WriteLiteral(format.FloatString(float32(c)))
	case metadata.DoubleConstant:
		v.out.WriteLiteral(format.DoubleString(float64(c)))
	case metadata.StringConstant:
		v.out.WriteTextLiteral(format.Escape(string(c), '"', v.unicode))
	case metadata.TypeReference:
		if err := format.WriteType(v.out, c, format.ErasedSignature); err != nil {
			return err
		}
		v.out.Write(".class")
	default:
		return WriteOperand(v.out, operand, v.unicode)
	}
	return nil
}

func (v *visitor) visitVariable(withImmediate bool) error {
	operand, err := v.operand(0)
	if err != nil {
		return err
	}
	variable, ok := operand.(*metadata.VariableReference)
	if !ok || variable == nil {
		return v.unsupported(operand)
	}

	var increment metadata.IntConstant
	if withImmediate {
		second, err := v.operand(1)
		if err != nil {
			return err
		}
		if increment, ok = second.(metadata.IntConstant); !ok {
			return v.unsupported(second)
		}
	}

	v.opcode()
	v.out.Write(" ")
	if local := v.findVariable(variable.Slot); local != nil {
		v.out.WriteReference(local.Variable.Name, variable, true)
	} else {
		v.out.WriteLiteral(strconv.Itoa(variable.Slot))
	}
	if withImmediate {
		v.out.Write(", ")
		v.out.WriteLiteral(strconv.Itoa(int(increment)))
	}
	return nil
}

func (v *visitor) visitBranch() error {
	operand, err := v.operand(0)
	if err != nil {
		return err
	}
	target, ok := operand.(*bytecode.Instruction)
	if !ok || target == nil {
		return v.unsupported(operand)
	}
	v.opcode()
	v.out.Write(" ")
	v.out.WriteLabel(strconv.Itoa(target.Offset))
	return nil
}

func (v *visitor) visitSwitch() error {
	operand, err := v.operand(0)
	if err != nil {
		return err
	}
	sw, ok := operand.(*bytecode.SwitchInfo)
	if !ok || sw == nil {
		return v.unsupported(operand)
	}
	if sw.Default == nil {
		return errors.NilPointer(errors.PhaseRender, []string{"switch", "default"}, "Instruction")
	}
	if v.instr.OpCode == bytecode.OpLookupswitch && len(sw.Keys) != len(sw.Targets) {
		return errors.InvalidData(errors.PhaseRender, []string{"switch", "keys"},
			fmt.Sprintf("%d keys for %d targets", len(sw.Keys), len(sw.Targets)))
	}
	for i, target := range sw.Targets {
		if target == nil {
			return errors.NilPointer(errors.PhaseRender, []string{"switch", strconv.Itoa(i)}, "Instruction")
		}
	}

	v.opcode()
	v.out.Write(" {")
	v.out.WriteLine()
	for i, target := range sw.Targets {
		v.out.Write(caseIndent)
		v.out.WriteLiteral(fmt.Sprintf("%7d", sw.Key(i)))
		v.out.Write(": ")
		v.out.WriteLabel(strconv.Itoa(target.Offset))
		v.out.WriteLine()
	}
	v.out.Write(caseIndent)
	v.out.WriteKeyword("default")
	v.out.Write(": ")
	v.out.WriteLabel(strconv.Itoa(sw.Default.Offset))
	v.out.WriteLine()
	v.out.Write(lineIndent + "}")
	return nil
}

func (v *visitor) visitField() error {
	operand, err := v.operand(0)
	if err != nil {
		return err
	}
	field, ok := operand.(*metadata.FieldReference)
	if !ok {
		return v.unsupported(operand)
	}
	v.opcode()
	v.out.Write(" ")
	return format.WriteField(v.out, field)
}

func (v *visitor) visitMethod() error {
	operand, err := v.operand(0)
	if err != nil {
		return err
	}
	method, ok := operand.(*metadata.MethodReference)
	if !ok {
		return v.unsupported(operand)
	}
	v.opcode()
	v.out.Write(" ")
	return format.WriteMethod(v.out, method)
}

func (v *visitor) visitDynamicCallSite() error {
	operand, err := v.operand(0)
	if err != nil {
		return err
	}
	site, ok := operand.(*metadata.DynamicCallSite)
	if !ok || site == nil {
		return v.unsupported(operand)
	}
	if site.Type == nil {
		return errors.MissingSignature(errors.PhaseRender, v.instr.OpCode.String(), site)
	}

	v.opcode()
	v.out.Write(" ")
	v.out.WriteAttribute("BootstrapMethod ")
	v.out.WriteDelimiter("#")
	v.out.WriteLiteral(strconv.Itoa(site.BootstrapMethodIndex))
	v.out.WriteDelimiter(", ")
	v.out.WriteReference(site.Name, site.Type, false)
	v.out.WriteDelimiter(":")
	return format.WriteMethodSignature(v.out, site.Type)
}

func (v *visitor) visitType() error {
	operand, err := v.operand(0)
	if err != nil {
		return err
	}
	t, ok := operand.(metadata.TypeReference)
	if !ok {
		return v.unsupported(operand)
	}

	v.opcode()
	v.out.Write(" ")
	if err := format.WriteType(v.out, t, format.Signature); err != nil {
		return err
	}

	if v.instr.OpCode == bytecode.OpMultianewarray && v.instr.OperandCount() > 1 {
		dims, ok := v.instr.Operands[1].(metadata.IntConstant)
		if !ok {
			return v.unsupported(v.instr.Operands[1])
		}
		v.out.Write(", ")
		v.out.WriteLiteral(strconv.Itoa(int(dims)))
	}
	return nil
}
