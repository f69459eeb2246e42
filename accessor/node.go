// Package accessor represents parameterless accessor expressions such as
// "read field Email off the captured model" as small expression trees, and
// analyzes them statically to recover the (model, field name) pair.
//
// The closed set of node kinds:
//   - Member: a terminal property/field read off a target operand
//   - Convert: the implicit boxing conversion a value-typed member picks up
//   - Constant: a closed-over reference known at tree-construction time
//   - Thunk: a deferred closed-over local, evaluated during analysis
package accessor

//go:generate go tool stringer -type=NodeEnum -output=node_string.go

type NodeEnum int

const (
	_ NodeEnum = iota // skip zero value, use it as a default (invalid) value for NodeEnum

	NodeMember
	NodeConvert
	NodeConstant
	NodeThunk

	// NodeTotal is a constant that represents the total number of node kinds defined
	NodeTotal = int(iota)
)

// Expr is a node of an accessor expression tree.
type Expr interface {
	NodeKind() NodeEnum
}

// Member reads the field named Name off the value of Target.
type Member struct {
	Target Expr
	Name   string
}

func (*Member) NodeKind() NodeEnum { return NodeMember }

// Convert wraps an operand in a widening conversion. A value-typed member
// read acquires exactly one of these on its way into an any-typed tree.
type Convert struct {
	Operand Expr
}

func (*Convert) NodeKind() NodeEnum { return NodeConvert }

// Constant holds a closed-over reference, typically the captured model
// variable or an enclosing context object.
type Constant struct {
	Value any
}

func (*Constant) NodeKind() NodeEnum { return NodeConstant }

// Thunk defers a closed-over local. Eval runs at most once, when the tree
// is analyzed.
type Thunk struct {
	Eval func() any
}

func (*Thunk) NodeKind() NodeEnum { return NodeThunk }
