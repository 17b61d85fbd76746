// ==============================================================================================
// FILE: object/builtins.go
// ==============================================================================================
package object

import "fmt"

// Builtins is the registry of native functions available in every
// environment's root frame.
var Builtins = []struct {
	Name    string
	Builtin *Builtin
}{
	{
		"len",
		&Builtin{Name: "len", Arity: 1, Fn: func(args ...Object) Object {
			if len(args) != 1 {
				return newBuiltinError("invalid arguments for len")
			}
			switch arg := args[0].(type) {
			case *Array:
				return &Integer{Value: int64(len(arg.Elements))}
			case *String:
				return &Integer{Value: int64(len(arg.Value))}
			default:
				return newBuiltinError("invalid arguments for len")
			}
		}},
	},
	{
		"head",
		&Builtin{Name: "head", Arity: 1, Fn: func(args ...Object) Object {
			if len(args) != 1 {
				return newBuiltinError("invalid arguments for head")
			}
			arr, ok := args[0].(*Array)
			if !ok {
				return newBuiltinError("invalid arguments for head")
			}
			if len(arr.Elements) == 0 {
				return newBuiltinError("empty array")
			}
			return arr.Elements[0]
		}},
	},
	{
		"tail",
		&Builtin{Name: "tail", Arity: 1, Fn: func(args ...Object) Object {
			if len(args) != 1 {
				return newBuiltinError("invalid arguments for tail")
			}
			arr, ok := args[0].(*Array)
			if !ok {
				return newBuiltinError("invalid arguments for tail")
			}
			if len(arr.Elements) == 0 {
				return newBuiltinError("empty array")
			}
			rest := make([]Object, len(arr.Elements)-1)
			copy(rest, arr.Elements[1:])
			return &Array{Elements: rest}
		}},
	},
	{
		"cons",
		&Builtin{Name: "cons", Arity: 2, Fn: func(args ...Object) Object {
			if len(args) != 2 {
				return newBuiltinError("invalid arguments for cons")
			}
			arr, ok := args[1].(*Array)
			if !ok {
				return newBuiltinError("invalid arguments for cons")
			}
			elements := make([]Object, 0, len(arr.Elements)+1)
			elements = append(elements, args[0])
			elements = append(elements, arr.Elements...)
			return &Array{Elements: elements}
		}},
	},
}

// GetBuiltin looks up a registered builtin by name.
func GetBuiltin(name string) (*Builtin, bool) {
	for _, def := range Builtins {
		if def.Name == name {
			return def.Builtin, true
		}
	}
	return nil, false
}

func newBuiltinError(format string, a ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, a...)}
}
