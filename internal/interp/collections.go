package interp

import "strings"

// listMethod resolves a built-in method name off a list receiver (§4.7:
// `.append()`, `.remove()`, `.copy()`).
func listMethod(recv *ListValue, name string) Value {
	switch name {
	case "append":
		return &BoundBuiltinMethod{Receiver: recv, Name: name, Fn: func(i *Interpreter, r Value, args []Value) Value {
			l := r.(*ListValue)
			if len(args) != 1 {
				return typeError("append() takes exactly one argument (%d given)", len(args))
			}
			l.Elements = append(l.Elements, args[0])
			return None
		}}
	case "remove":
		return &BoundBuiltinMethod{Receiver: recv, Name: name, Fn: func(i *Interpreter, r Value, args []Value) Value {
			l := r.(*ListValue)
			if len(args) != 1 {
				return typeError("remove() takes exactly one argument (%d given)", len(args))
			}
			for idx, e := range l.Elements {
				if valuesEqual(e, args[0]) {
					l.Elements = append(l.Elements[:idx], l.Elements[idx+1:]...)
					return None
				}
			}
			return valueError("list.remove(x): x not in list")
		}}
	case "copy":
		return &BoundBuiltinMethod{Receiver: recv, Name: name, Fn: func(i *Interpreter, r Value, args []Value) Value {
			l := r.(*ListValue)
			return &ListValue{Elements: append([]Value(nil), l.Elements...)}
		}}
	default:
		return typeError("%q object has no attribute %q", recv.Type(), name)
	}
}

// dictMethod resolves a built-in method name off a dict receiver.
func dictMethod(recv *DictValue, name string) Value {
	switch name {
	case "copy":
		return &BoundBuiltinMethod{Receiver: recv, Name: name, Fn: func(i *Interpreter, r Value, args []Value) Value {
			d := r.(*DictValue)
			out := NewDictValue()
			for _, k := range d.Order {
				out.Set(k, d.Entries[k])
			}
			return out
		}}
	case "keys":
		return &BoundBuiltinMethod{Receiver: recv, Name: name, Fn: func(i *Interpreter, r Value, args []Value) Value {
			d := r.(*DictValue)
			elems := make([]Value, len(d.Order))
			for idx, k := range d.Order {
				elems[idx] = &StringValue{Value: k}
			}
			return &ListValue{Elements: elems}
		}}
	case "get":
		return &BoundBuiltinMethod{Receiver: recv, Name: name, Fn: func(i *Interpreter, r Value, args []Value) Value {
			d := r.(*DictValue)
			if len(args) < 1 || len(args) > 2 {
				return typeError("get() takes one or two arguments (%d given)", len(args))
			}
			key, errVal := dictKeyString(args[0])
			if errVal != nil {
				return errVal
			}
			if v, ok := d.Entries[key]; ok {
				return v
			}
			if len(args) == 2 {
				return args[1]
			}
			return None
		}}
	default:
		return typeError("%q object has no attribute %q", recv.Type(), name)
	}
}

// stringMethod resolves a built-in method name off a str receiver
// (§4.7: `.lower()`, `.split()`).
func stringMethod(recv *StringValue, name string) Value {
	switch name {
	case "lower":
		return &BoundBuiltinMethod{Receiver: recv, Name: name, Fn: func(i *Interpreter, r Value, args []Value) Value {
			return &StringValue{Value: strings.ToLower(r.(*StringValue).Value)}
		}}
	case "upper":
		return &BoundBuiltinMethod{Receiver: recv, Name: name, Fn: func(i *Interpreter, r Value, args []Value) Value {
			return &StringValue{Value: strings.ToUpper(r.(*StringValue).Value)}
		}}
	case "strip":
		return &BoundBuiltinMethod{Receiver: recv, Name: name, Fn: func(i *Interpreter, r Value, args []Value) Value {
			return &StringValue{Value: strings.TrimSpace(r.(*StringValue).Value)}
		}}
	case "split":
		return &BoundBuiltinMethod{Receiver: recv, Name: name, Fn: func(i *Interpreter, r Value, args []Value) Value {
			s := r.(*StringValue).Value
			sep := " "
			if len(args) == 1 {
				sv, ok := args[0].(*StringValue)
				if !ok {
					return typeError("split() separator must be str")
				}
				sep = sv.Value
			} else if len(args) > 1 {
				return typeError("split() takes at most one argument (%d given)", len(args))
			}
			var parts []string
			if sep == " " {
				parts = strings.Fields(s)
			} else {
				parts = strings.Split(s, sep)
			}
			elems := make([]Value, len(parts))
			for idx, p := range parts {
				elems[idx] = &StringValue{Value: p}
			}
			return &ListValue{Elements: elems}
		}}
	case "join":
		return &BoundBuiltinMethod{Receiver: recv, Name: name, Fn: func(i *Interpreter, r Value, args []Value) Value {
			sep := r.(*StringValue).Value
			if len(args) != 1 {
				return typeError("join() takes exactly one argument (%d given)", len(args))
			}
			items, errVal := iterableElements(args[0])
			if errVal != nil {
				return errVal
			}
			parts := make([]string, len(items))
			for idx, item := range items {
				sv, ok := item.(*StringValue)
				if !ok {
					return typeError("sequence item %d: expected str, got %q", idx, item.Type())
				}
				parts[idx] = sv.Value
			}
			return &StringValue{Value: strings.Join(parts, sep)}
		}}
	default:
		return typeError("%q object has no attribute %q", recv.Type(), name)
	}
}
