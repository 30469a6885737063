package metadata

// OperandKind classifies instruction operands.
type OperandKind uint8

const (
	OperandBranchTarget OperandKind = iota + 1
	OperandBranchTargets
	OperandSwitch
	OperandVariable
	OperandParameter
	OperandMethod
	OperandMethodSignature
	OperandMethodHandle
	OperandField
	OperandType
	OperandDynamicCallSite
	OperandConstant
)

var operandKindNames = [...]string{
	OperandBranchTarget:    "branch_target",
	OperandBranchTargets:   "branch_targets",
	OperandSwitch:          "switch",
	OperandVariable:        "variable",
	OperandParameter:       "parameter",
	OperandMethod:          "method",
	OperandMethodSignature: "method_signature",
	OperandMethodHandle:    "method_handle",
	OperandField:           "field",
	OperandType:            "type",
	OperandDynamicCallSite: "dynamic_call_site",
	OperandConstant:        "constant",
}

func (k OperandKind) String() string {
	if int(k) < len(operandKindNames) && operandKindNames[k] != "" {
		return operandKindNames[k]
	}
	return "unknown"
}

// Operand is a resolved instruction operand.
type Operand interface {
	OperandKind() OperandKind
}

// Constant is a literal operand.
type Constant interface {
	Operand
	constant()
}

// Literal operands. Byte and short immediates are carried as IntConstant.
type (
	NullConstant   struct{}
	BoolConstant   bool
	IntConstant    int32
	LongConstant   int64
	FloatConstant  float32
	DoubleConstant float64
	CharConstant   uint16
	StringConstant string
)

func (NullConstant) OperandKind() OperandKind   { return OperandConstant }
func (BoolConstant) OperandKind() OperandKind   { return OperandConstant }
func (IntConstant) OperandKind() OperandKind    { return OperandConstant }
func (LongConstant) OperandKind() OperandKind   { return OperandConstant }
func (FloatConstant) OperandKind() OperandKind  { return OperandConstant }
func (DoubleConstant) OperandKind() OperandKind { return OperandConstant }
func (CharConstant) OperandKind() OperandKind   { return OperandConstant }
func (StringConstant) OperandKind() OperandKind { return OperandConstant }

func (NullConstant) constant()   {}
func (BoolConstant) constant()   {}
func (IntConstant) constant()    {}
func (LongConstant) constant()   {}
func (FloatConstant) constant()  {}
func (DoubleConstant) constant() {}
func (CharConstant) constant()   {}
func (StringConstant) constant() {}
