// FILE: lixenwraith/railtie/middleware.go
package railtie

import "fmt"

// Middleware names a stack entry and the arguments it is built with.
type Middleware struct {
	Name string
	Args []any
}

// OpKind is the kind of a recorded stack edit.
type OpKind string

const (
	OpUse          OpKind = "use"
	OpUnshift      OpKind = "unshift"
	OpInsertBefore OpKind = "insert_before"
	OpInsertAfter  OpKind = "insert_after"
	OpSwap         OpKind = "swap"
	OpMoveBefore   OpKind = "move_before"
	OpMoveAfter    OpKind = "move_after"
	OpDelete       OpKind = "delete"
)

// Operation is one recorded stack edit. Target is empty for use and unshift.
type Operation struct {
	Kind       OpKind
	Target     string
	Middleware Middleware
}

// Stack is the real middleware stack edits are replayed against.
type Stack interface {
	Use(m Middleware)
	Unshift(m Middleware)
	InsertBefore(target string, m Middleware) error
	InsertAfter(target string, m Middleware) error
	Swap(target string, m Middleware) error
	MoveBefore(target, name string) error
	MoveAfter(target, name string) error
	Delete(target string) error
}

// MiddlewareProxy records middleware stack edits made before the application
// stack exists. Deletes are replayed after every other edit.
type MiddlewareProxy struct {
	operations []Operation
	deletes    []Operation
}

// NewMiddlewareProxy returns an empty proxy.
func NewMiddlewareProxy() *MiddlewareProxy {
	return &MiddlewareProxy{}
}

// Use appends name to the end of the stack.
func (p *MiddlewareProxy) Use(name string, args ...any) {
	p.record(OpUse, "", name, args)
}

// Unshift puts name at the front of the stack.
func (p *MiddlewareProxy) Unshift(name string, args ...any) {
	p.record(OpUnshift, "", name, args)
}

// InsertBefore places name before target.
func (p *MiddlewareProxy) InsertBefore(target, name string, args ...any) {
	p.record(OpInsertBefore, target, name, args)
}

// InsertAfter places name after target.
func (p *MiddlewareProxy) InsertAfter(target, name string, args ...any) {
	p.record(OpInsertAfter, target, name, args)
}

// Swap replaces target with name.
func (p *MiddlewareProxy) Swap(target, name string, args ...any) {
	p.record(OpSwap, target, name, args)
}

// MoveBefore moves the existing entry name before target.
func (p *MiddlewareProxy) MoveBefore(target, name string) {
	p.record(OpMoveBefore, target, name, nil)
}

// MoveAfter moves the existing entry name after target.
func (p *MiddlewareProxy) MoveAfter(target, name string) {
	p.record(OpMoveAfter, target, name, nil)
}

// Delete removes target.
func (p *MiddlewareProxy) Delete(target string) {
	p.deletes = append(p.deletes, Operation{Kind: OpDelete, Target: target})
}

// Operations returns the recorded edits in replay order.
func (p *MiddlewareProxy) Operations() []Operation {
	ops := make([]Operation, 0, len(p.operations)+len(p.deletes))
	ops = append(ops, p.operations...)
	return append(ops, p.deletes...)
}

// Len returns the number of recorded edits.
func (p *MiddlewareProxy) Len() int {
	return len(p.operations) + len(p.deletes)
}

// MergeInto replays the recorded edits against stack, stopping at the first failure.
func (p *MiddlewareProxy) MergeInto(stack Stack) error {
	for i, op := range p.Operations() {
		if err := applyOperation(stack, op); err != nil {
			return fmt.Errorf("middleware edit #%d (%s %s): %w", i, op.Kind, op.Target, err)
		}
	}
	return nil
}

func (p *MiddlewareProxy) record(kind OpKind, target, name string, args []any) {
	p.operations = append(p.operations, Operation{
		Kind:       kind,
		Target:     target,
		Middleware: Middleware{Name: name, Args: args},
	})
}

func applyOperation(stack Stack, op Operation) error {
	switch op.Kind {
	case OpUse:
		stack.Use(op.Middleware)
		return nil
	case OpUnshift:
		stack.Unshift(op.Middleware)
		return nil
	case OpInsertBefore:
		return stack.InsertBefore(op.Target, op.Middleware)
	case OpInsertAfter:
		return stack.InsertAfter(op.Target, op.Middleware)
	case OpSwap:
		return stack.Swap(op.Target, op.Middleware)
	case OpMoveBefore:
		return stack.MoveBefore(op.Target, op.Middleware.Name)
	case OpMoveAfter:
		return stack.MoveAfter(op.Target, op.Middleware.Name)
	case OpDelete:
		return stack.Delete(op.Target)
	default:
		return fmt.Errorf("unknown middleware operation %q", op.Kind)
	}
}
