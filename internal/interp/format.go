package interp

import "fmt"

// formatValue renders v for f-string interpolation, applying the parsed
// format spec (§4.7): "" is bare str()/repr, "f" is fixed-point with
// SpecPrecision digits, "%" is percent with SpecPrecision fractional
// digits (value * 100, per Python's own `%` format type).
func formatValue(v Value, kind string, precision int) (string, Value) {
	switch kind {
	case "":
		return v.String(), nil
	case "f":
		f, errVal := asFloat(v)
		if errVal != nil {
			return "", errVal
		}
		return fmt.Sprintf("%.*f", precision, f), nil
	case "%":
		f, errVal := asFloat(v)
		if errVal != nil {
			return "", errVal
		}
		return fmt.Sprintf("%.*f%%", precision, f*100), nil
	default:
		return "", typeError("unsupported format spec kind %q", kind)
	}
}

func asFloat(v Value) (float64, Value) {
	switch v := v.(type) {
	case *IntValue:
		return float64(v.Value), nil
	case *FloatValue:
		return v.Value, nil
	default:
		return 0, typeError("unsupported format argument type %q", v.Type())
	}
}
