package console

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/harmonyeval/harmony-verifier/pkg/logger"
	"github.com/harmonyeval/harmony-verifier/pkg/stringutil"
)

var renderLog = logger.New("console:render")

// RenderStruct renders a struct as aligned key-value lines. Slice fields
// holding structs become tables via RenderTable; slices of simple values
// become bullet lists. Presentation is driven by `console:` struct tags:
//
//	console:"header:Label"  field label or table column name
//	console:"title:Title"   section title for a nested slice
//	console:"maxlen:N"      truncate the rendered value to N characters
//	console:"omitempty"     skip zero values
//	console:"-"             skip the field
func RenderStruct(v any) string {
	renderLog.Printf("rendering %T", v)
	var out strings.Builder
	renderValue(reflect.ValueOf(v), "", &out, 0)
	return out.String()
}

func renderValue(val reflect.Value, title string, out *strings.Builder, depth int) {
	for val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return
		}
		val = val.Elem()
	}

	switch val.Kind() {
	case reflect.Struct:
		renderStructValue(val, title, out, depth)
	case reflect.Slice, reflect.Array:
		renderSlice(val, title, out, depth)
	}
}

func writeTitle(title string, out *strings.Builder, depth int) {
	if title == "" {
		return
	}
	fmt.Fprintf(out, "%s %s\n\n", strings.Repeat("#", depth+1), title)
}

func renderStructValue(val reflect.Value, title string, out *strings.Builder, depth int) {
	typ := val.Type()
	writeTitle(title, out, depth)

	// Label width for aligned key-value lines.
	maxLabel := 0
	for i := range val.NumField() {
		tag := parseConsoleTag(typ.Field(i).Tag.Get("console"))
		if tag.skip || (tag.omitempty && val.Field(i).IsZero()) {
			continue
		}
		if isNested(val.Field(i)) {
			continue
		}
		if n := len(fieldLabel(typ.Field(i), tag)); n > maxLabel {
			maxLabel = n
		}
	}

	for i := range val.NumField() {
		field := val.Field(i)
		fieldType := typ.Field(i)
		tag := parseConsoleTag(fieldType.Tag.Get("console"))
		if tag.skip || (tag.omitempty && field.IsZero()) {
			continue
		}

		label := fieldLabel(fieldType, tag)
		if isNested(field) {
			sectionTitle := tag.title
			if sectionTitle == "" {
				sectionTitle = label
			}
			renderValue(field, sectionTitle, out, depth+1)
			continue
		}

		fmt.Fprintf(out, "  %-*s: %s\n", maxLabel, label, formatFieldValue(field, tag))
	}
	out.WriteString("\n")
}

func renderSlice(val reflect.Value, title string, out *strings.Builder, depth int) {
	if val.Len() == 0 {
		return
	}
	writeTitle(title, out, depth)

	elemType := val.Type().Elem()
	for elemType.Kind() == reflect.Ptr {
		elemType = elemType.Elem()
	}

	if elemType.Kind() != reflect.Struct {
		for i := range val.Len() {
			fmt.Fprintf(out, "  • %s\n", formatFieldValue(val.Index(i), consoleTag{}))
		}
		out.WriteString("\n")
		return
	}

	out.WriteString(RenderTable(sliceTableConfig(val, elemType)))
}

// sliceTableConfig turns a slice of structs into a table, one column per
// rendered field.
func sliceTableConfig(val reflect.Value, elemType reflect.Type) TableConfig {
	var config TableConfig
	var indices []int
	var tags []consoleTag

	for i := range elemType.NumField() {
		fieldType := elemType.Field(i)
		tag := parseConsoleTag(fieldType.Tag.Get("console"))
		if tag.skip {
			continue
		}
		config.Headers = append(config.Headers, fieldLabel(fieldType, tag))
		indices = append(indices, i)
		tags = append(tags, tag)
	}

	for i := range val.Len() {
		elem := val.Index(i)
		for elem.Kind() == reflect.Ptr && !elem.IsNil() {
			elem = elem.Elem()
		}
		if elem.Kind() != reflect.Struct {
			continue
		}
		var row []string
		for j, idx := range indices {
			row = append(row, formatFieldValue(elem.Field(idx), tags[j]))
		}
		config.Rows = append(config.Rows, row)
	}

	return config
}

func isNested(val reflect.Value) bool {
	for val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return false
		}
		val = val.Elem()
	}
	switch val.Kind() {
	case reflect.Struct, reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

func fieldLabel(fieldType reflect.StructField, tag consoleTag) string {
	if tag.header != "" {
		return tag.header
	}
	return fieldType.Name
}

func formatFieldValue(val reflect.Value, tag consoleTag) string {
	for val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return "-"
		}
		val = val.Elem()
	}
	if !val.IsValid() || (val.Kind() == reflect.String && val.Len() == 0) {
		return "-"
	}

	rendered := fmt.Sprintf("%v", val.Interface())
	if tag.maxLen > 0 {
		rendered = stringutil.Truncate(rendered, tag.maxLen)
	}
	return rendered
}

// consoleTag is the parsed form of a `console:` struct tag.
type consoleTag struct {
	title     string
	header    string
	maxLen    int
	omitempty bool
	skip      bool
}

func parseConsoleTag(tag string) consoleTag {
	var result consoleTag
	if tag == "-" {
		result.skip = true
		return result
	}
	for part := range strings.SplitSeq(tag, ",") {
		part = strings.TrimSpace(part)
		switch {
		case part == "omitempty":
			result.omitempty = true
		default:
			if after, ok := strings.CutPrefix(part, "title:"); ok {
				result.title = after
			} else if after, ok := strings.CutPrefix(part, "header:"); ok {
				result.header = after
			} else if after, ok := strings.CutPrefix(part, "maxlen:"); ok {
				if n, err := strconv.Atoi(after); err == nil {
					result.maxLen = n
				}
			}
		}
	}
	return result
}
