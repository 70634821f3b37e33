package dsl

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// propertyLines renders one declaration line per property in parse
// order. The type alias and interface generators share these lines so
// the two artifacts can never drift apart.
func propertyLines(props []Property) []string {
	lines := make([]string, 0, len(props))
	for _, p := range props {
		optional := ""
		if !p.IsRequired {
			optional = "?"
		}
		lines = append(lines, fmt.Sprintf("  %s%s: %s;", p.Name, optional, p.ResolvedType))
	}
	return lines
}

// GenerateType emits a TypeScript type alias declaration
func GenerateType(typeName string, props []Property) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "export type %s = {\n", typeName)
	for _, line := range propertyLines(props) {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("};\n")
	return sb.String()
}

// GenerateInterface emits a TypeScript interface declaration with the
// same member lines as GenerateType
func GenerateInterface(typeName string, props []Property) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "export interface %s {\n", typeName)
	for _, line := range propertyLines(props) {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("}\n")
	return sb.String()
}

// zodExpr maps a resolved type to a Zod validator expression. Array
// suffixes recurse into z.array(...); types outside the table fall back
// to z.unknown() because the DSL lets custom type names pass through.
func zodExpr(resolvedType string) string {
	if strings.HasSuffix(resolvedType, "[]") {
		return fmt.Sprintf("z.array(%s)", zodExpr(strings.TrimSuffix(resolvedType, "[]")))
	}
	switch resolvedType {
	case "string":
		return "z.string()"
	case "number":
		return "z.number()"
	case "boolean":
		return "z.boolean()"
	case "Date":
		return "z.coerce.date()"
	case "unknown":
		return "z.unknown()"
	case "any":
		return "z.any()"
	default:
		return "z.unknown()"
	}
}

// GenerateSchema emits a Zod schema module for the model plus an
// inferred type alias bound to it. With strict set, the object rejects
// keys that are not declared in the model.
func GenerateSchema(typeName string, props []Property, strict bool) string {
	var sb strings.Builder
	sb.WriteString("import { z } from 'zod';\n\n")
	fmt.Fprintf(&sb, "export const %sSchema = z.object({\n", typeName)
	for _, p := range props {
		expr := zodExpr(p.ResolvedType)
		if !p.IsRequired {
			expr += ".optional()"
		}
		fmt.Fprintf(&sb, "  %s: %s,\n", p.Name, expr)
	}
	sb.WriteString("})")
	if strict {
		sb.WriteString(".strict()")
	}
	sb.WriteString(";\n\n")
	fmt.Fprintf(&sb, "export type %s = z.infer<typeof %sSchema>;\n", typeName, typeName)
	return sb.String()
}

// exampleValue returns the placeholder default for a resolved type.
// Unrecognized passthrough types get an explicit null.
func exampleValue(resolvedType string) any {
	if strings.HasSuffix(resolvedType, "[]") {
		return []any{}
	}
	switch resolvedType {
	case "string":
		return ""
	case "number":
		return float64(0)
	case "boolean":
		return false
	case "Date":
		return time.Now().UTC().Format(time.RFC3339)
	default:
		return nil
	}
}

// GenerateExample builds a sample object holding defaults for the
// required properties only. Optional properties are omitted entirely;
// the example shows the minimal valid shape, so leaving them out is the
// point, not an oversight.
func GenerateExample(props []Property) map[string]any {
	example := make(map[string]any)
	for _, p := range props {
		if !p.IsRequired {
			continue
		}
		example[p.Name] = exampleValue(p.ResolvedType)
	}
	return example
}

// GenerateExampleJSON renders the example object as JSON with keys in
// parse order. encoding/json sorts map keys alphabetically, which would
// break the order-preservation guarantee the other generators give, so
// this writes the object manually.
func GenerateExampleJSON(props []Property) string {
	var sb strings.Builder
	sb.WriteString("{")

	first := true
	for _, p := range props {
		if !p.IsRequired {
			continue
		}
		if !first {
			sb.WriteString(",")
		}
		first = false

		key, _ := json.Marshal(p.Name)
		value, _ := json.Marshal(exampleValue(p.ResolvedType))
		fmt.Fprintf(&sb, "\n  %s: %s", key, value)
	}

	if first {
		sb.WriteString("}\n")
		return sb.String()
	}
	sb.WriteString("\n}\n")
	return sb.String()
}
