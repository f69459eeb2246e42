package accessor

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrNilExpr         = errors.New("accessor expression is nil")
	ErrUnsupportedExpr = errors.New("unsupported accessor expression shape")
)

// Parse extracts the accessed member name and the model instance it is
// accessed on from a restricted accessor shape: a Member node, optionally
// wrapped in a single Convert node. Every other top-level shape fails with
// ErrUnsupportedExpr.
//
// The member's target operand may be an arbitrary sub-expression (constant,
// thunk, or a nested member access on an enclosing context); it is evaluated
// exactly once and its result becomes the model. The identified member
// itself is never read.
func Parse(e Expr) (model any, name string, err error) {
	if e == nil {
		return nil, "", ErrNilExpr
	}

	if conv, ok := e.(*Convert); ok {
		e = conv.Operand
		if e == nil {
			return nil, "", fmt.Errorf("%w: conversion of nothing", ErrUnsupportedExpr)
		}
	}

	member, ok := e.(*Member)
	if !ok {
		return nil, "", fmt.Errorf("%w: %s is not a member access", ErrUnsupportedExpr, e.NodeKind())
	}

	model, err = evaluate(member.Target)
	if err != nil {
		return nil, "", err
	}

	return model, member.Name, nil
}

// evaluate resolves the target operand of a member access. Unlike the
// top-level shape it may nest arbitrarily.
func evaluate(e Expr) (any, error) {
	switch t := e.(type) {
	default:
		return nil, fmt.Errorf("%w: %s as a member target", ErrUnsupportedExpr, e.NodeKind())

	case nil:
		return nil, fmt.Errorf("%w: member access without a target", ErrUnsupportedExpr)

	case *Constant:
		return t.Value, nil

	case *Thunk:
		if t.Eval == nil {
			return nil, fmt.Errorf("%w: thunk without a body", ErrUnsupportedExpr)
		}
		return t.Eval(), nil

	case *Convert:
		if t.Operand == nil {
			return nil, fmt.Errorf("%w: conversion of nothing", ErrUnsupportedExpr)
		}
		return evaluate(t.Operand)

	case *Member:
		target, err := evaluate(t.Target)
		if err != nil {
			return nil, err
		}
		return readField(target, t.Name)
	}
}

func readField(target any, name string) (any, error) {
	v := reflect.Indirect(reflect.ValueOf(target))
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: member %q accessed on non-struct %T", ErrUnsupportedExpr, name, target)
	}

	field := v.FieldByName(name)
	if !field.IsValid() || !field.CanInterface() {
		return nil, fmt.Errorf("%w: member %q not readable on %T", ErrUnsupportedExpr, name, target)
	}

	return field.Interface(), nil
}
