package jsonvalue

import "strings"

// escaper rewrites the characters that must not appear raw in serialized
// output. The forward slash escape is not required by the JSON grammar but
// is part of the output contract, for embedding JSON inside markup and
// script contexts.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	"\f", `\f`,
	"\b", `\b`,
	"/", `\/`,
)

// Serialize renders the value as canonical JSON text: minimal form, no
// insignificant whitespace, object members in insertion order, numeric
// text emitted verbatim as it appeared in the source.
func (v *Value) Serialize() string {
	var sb strings.Builder
	v.serialize(&sb)
	return sb.String()
}

// String makes values print as their canonical JSON form.
func (v *Value) String() string {
	return v.Serialize()
}

func (v *Value) serialize(sb *strings.Builder) {
	switch v.typ {
	case TypeNumber:
		sb.WriteString(v.text)
	case TypeString:
		sb.WriteByte('"')
		escaper.WriteString(sb, v.text)
		sb.WriteByte('"')
	case TypeBool:
		if v.boolean {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case TypeNull:
		sb.WriteString("null")
	case TypeArray:
		sb.WriteByte('[')
		for i, element := range v.elements {
			if i > 0 {
				sb.WriteByte(',')
			}
			element.serialize(sb)
		}
		sb.WriteByte(']')
	case TypeObject:
		sb.WriteByte('{')
		for i, key := range v.keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteByte('"')
			escaper.WriteString(sb, key)
			sb.WriteByte('"')
			sb.WriteByte(':')
			v.members[key].serialize(sb)
		}
		sb.WriteByte('}')
	}
}
