// ==============================================================================================
// FILE: object/object.go
// ==============================================================================================
// PACKAGE: object
// PURPOSE: Defines the runtime value algebra of the interpreter. It provides the
//          structures for every value that can flow through evaluation (integers,
//          functions, arrays, hashes, ...) and the interfaces required to interact
//          with them.
// ==============================================================================================

package object

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/amogh-monkey/interpreter/ast"
)

// ObjectType is a string alias for identifying the type of an object at runtime.
type ObjectType string

const (
	// Primitive Types
	INTEGER_OBJ = "INTEGER"
	BOOLEAN_OBJ = "BOOLEAN"
	STRING_OBJ  = "STRING"
	NULL_OBJ    = "NULL"

	// Internal Control Flow Types
	RETURN_OBJ = "RETURN" // Wraps a return value to bubble up through the AST
	ERROR_OBJ  = "ERROR"  // Wraps a runtime error message, in-band and non-unwrapping

	// Composite Types
	FUNCTION_OBJ = "FUNCTION"
	ARRAY_OBJ    = "ARRAY"
	HASH_OBJ     = "HASH"

	// Builtin Functions
	BUILTIN_OBJ = "BUILTIN"
)

// Object is the base interface that every runtime value must implement.
type Object interface {
	Type() ObjectType // Returns the type constant
	Inspect() string  // Returns a string representation for display
}

// ==============================================================================================
// PRIMITIVE OBJECTS
// ==============================================================================================

type Integer struct {
	Value int64
}

func (i *Integer) Type() ObjectType { return INTEGER_OBJ }
func (i *Integer) Inspect() string  { return fmt.Sprintf("%d", i.Value) }

type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ObjectType { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string  { return fmt.Sprintf("%t", b.Value) }

type String struct {
	Value string
}

func (s *String) Type() ObjectType { return STRING_OBJ }
func (s *String) Inspect() string  { return s.Value }

type Null struct{}

func (n *Null) Type() ObjectType { return NULL_OBJ }
func (n *Null) Inspect() string  { return "null" }

// ==============================================================================================
// INTERNAL WRAPPERS
// ==============================================================================================

// Return wraps the value passed to a return statement so it can bubble up
// through Eval unchanged until it reaches the enclosing function call
// boundary, where it is unwrapped. It is never observable as a user value.
type Return struct {
	Value Object
}

func (rv *Return) Type() ObjectType { return RETURN_OBJ }
func (rv *Return) Inspect() string  { return rv.Value.Inspect() }

// Error wraps a runtime error message. Unlike Return, an Error is never
// unwrapped at a function call boundary — it poisons every enclosing
// expression and surfaces all the way to the top level.
type Error struct {
	Message string
}

func (e *Error) Type() ObjectType { return ERROR_OBJ }
func (e *Error) Inspect() string  { return "Error: " + e.Message }

// ==============================================================================================
// COMPLEX OBJECTS
// ==============================================================================================

// Function is a closure: it carries the environment that was current at the
// point it was defined, not the environment of whoever calls it.
type Function struct {
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *Environment
}

func (f *Function) Type() ObjectType { return FUNCTION_OBJ }
func (f *Function) Inspect() string  { return "[function]" }

type Array struct {
	Elements []Object
}

func (a *Array) Type() ObjectType { return ARRAY_OBJ }
func (a *Array) Inspect() string {
	var out bytes.Buffer
	parts := make([]string, 0, len(a.Elements))
	for _, el := range a.Elements {
		parts = append(parts, el.Inspect())
	}
	out.WriteString("[")
	out.WriteString(strings.Join(parts, ", "))
	out.WriteString("]")
	return out.String()
}

// ==============================================================================================
// HASH & HASHING SYSTEM
// ==============================================================================================

// HashKey is a distinct key for identifying objects inside a Hash. It
// combines the object's type with a 64-bit digest so that, e.g., Integer(1)
// and Boolean(true) never collide even if their digests matched.
type HashKey struct {
	Type  ObjectType
	Value uint64
}

// HashPair connects the original key object with its stored value, so
// Inspect() can render the key's own representation rather than its digest.
type HashPair struct {
	Key   Object
	Value Object
}

// Hashable is implemented only by the object types the language allows as
// hash keys: Integer, Boolean, and String. Any other object used as a key,
// whether in a literal or an index expression, is a runtime Error.
type Hashable interface {
	HashKey() HashKey
}

func (i *Integer) HashKey() HashKey {
	return HashKey{Type: INTEGER_OBJ, Value: uint64(i.Value)}
}

func (b *Boolean) HashKey() HashKey {
	var v uint64
	if b.Value {
		v = 1
	}
	return HashKey{Type: BOOLEAN_OBJ, Value: v}
}

func (s *String) HashKey() HashKey {
	h := fnv.New64a()
	h.Write([]byte(s.Value))
	return HashKey{Type: STRING_OBJ, Value: h.Sum64()}
}

// Hash maps hashable keys to values.
type Hash struct {
	Pairs map[HashKey]HashPair
}

func (h *Hash) Type() ObjectType { return HASH_OBJ }
func (h *Hash) Inspect() string {
	var out bytes.Buffer
	pairs := make([]string, 0, len(h.Pairs))
	for _, pair := range h.Pairs {
		pairs = append(pairs, fmt.Sprintf("%s : %s", pair.Key.Inspect(), pair.Value.Inspect()))
	}
	out.WriteString("{")
	out.WriteString(strings.Join(pairs, ", "))
	out.WriteString("}")
	return out.String()
}

// ==============================================================================================
// BUILTIN FUNCTIONS
// ==============================================================================================

// Builtin wraps a native Go function exposed to evaluated code under a
// fixed name and arity, registered in object.Builtins.
type Builtin struct {
	Name  string
	Arity int
	Fn    func(args ...Object) Object
}

func (b *Builtin) Type() ObjectType { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string  { return "[built-in function: " + b.Name + "]" }
