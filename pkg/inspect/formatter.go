package inspect

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/multiroom/fsapi-go/pkg/model"
	"github.com/multiroom/fsapi-go/pkg/wire"
)

// Formatter formats inspection output.
type Formatter struct {
	// ShowMetadata includes access and type information
	ShowMetadata bool

	// ShowLabels appends known enum labels to integer values
	ShowLabels bool

	// IndentWidth is the number of spaces per indent level
	IndentWidth int
}

// NewFormatter creates a new Formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		ShowMetadata: false,
		ShowLabels:   true,
		IndentWidth:  2,
	}
}

// Indent returns the content with indentation.
func (f *Formatter) Indent(depth int, content string) string {
	width := f.IndentWidth
	if width == 0 {
		width = 2
	}
	return strings.Repeat(" ", depth*width) + content
}

// FormatValue formats a scalar value. Strings are quoted.
func (f *Formatter) FormatValue(v wire.Value) string {
	switch v.Kind() {
	case wire.ValueInt:
		return v.String()
	case wire.ValueString:
		s, _ := v.Str()
		return fmt.Sprintf("%q", s)
	default:
		return "<none>"
	}
}

// FormatReading formats one resource value as "name = value".
func (f *Formatter) FormatReading(r Reading) string {
	var sb strings.Builder
	sb.WriteString(r.Resource.Name)
	sb.WriteString(" = ")
	if r.Err != nil {
		sb.WriteString("error: " + r.Err.Error())
		return sb.String()
	}
	sb.WriteString(f.FormatValue(r.Value))
	if f.ShowLabels {
		if i, ok := r.Value.Int(); ok {
			if label, ok := EnumLabel(r.Resource.Path, i); ok {
				fmt.Fprintf(&sb, " (%s)", label)
			}
		}
	}
	if f.ShowMetadata {
		fmt.Fprintf(&sb, " [%s, %s]", FormatAccess(r.Resource.Access), r.Resource.Type)
	}
	return sb.String()
}

// FormatRecords formats list records, one per line. Schema fields come
// first in schema order, any others follow sorted by name.
func (f *Formatter) FormatRecords(res model.Resource, records []wire.Record) string {
	if len(records) == 0 {
		return f.Indent(1, "(no records)")
	}

	var sb strings.Builder
	for i, rec := range records {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(f.Indent(1, "["+rec.Key+"]"))
		for _, name := range fieldOrder(res.Schema, rec) {
			fmt.Fprintf(&sb, " %s=%s", name, formatField(rec.Fields[name]))
		}
	}
	return sb.String()
}

func fieldOrder(schema wire.Schema, rec wire.Record) []string {
	var names []string
	known := make(map[string]bool, len(schema))
	for _, spec := range schema {
		known[spec.Name] = true
		if rec.Has(spec.Name) {
			names = append(names, spec.Name)
		}
	}
	var extra []string
	for name := range rec.Fields {
		if !known[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}

func formatField(v any) string {
	switch x := v.(type) {
	case string:
		return fmt.Sprintf("%q", x)
	case bool:
		if x {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", x)
	}
}

// FormatCatalog formats resources as an aligned table.
func (f *Formatter) FormatCatalog(resources []model.Resource) string {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tACCESS\tTYPE\tPATH\tDESCRIPTION")
	for _, r := range resources {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.Name, r.Access, r.Type, r.Path, r.Description)
	}
	tw.Flush()
	return strings.TrimRight(sb.String(), "\n")
}

// FormatNode formats an XML document tree, one element per line.
func (f *Formatter) FormatNode(n *wire.Node) string {
	var sb strings.Builder
	f.writeNode(&sb, n, 0)
	return strings.TrimRight(sb.String(), "\n")
}

func (f *Formatter) writeNode(sb *strings.Builder, n *wire.Node, depth int) {
	if n == nil {
		return
	}
	line := n.Tag()
	for _, a := range n.Attrs {
		line += fmt.Sprintf(" %s=%q", a.Name.Local, a.Value)
	}
	if text := strings.TrimSpace(n.Text); text != "" && len(n.Children) == 0 {
		line += ": " + text
	}
	sb.WriteString(f.Indent(depth, line))
	sb.WriteString("\n")
	for _, c := range n.Children {
		f.writeNode(sb, c, depth+1)
	}
}

// FormatAccess formats access flags for display.
func FormatAccess(access model.Access) string {
	switch access {
	case model.AccessReadOnly:
		return "read-only"
	case model.AccessWriteOnly:
		return "write-only"
	case model.AccessReadWrite:
		return "read-write"
	case model.AccessList:
		return "list"
	default:
		return fmt.Sprintf("access(%s)", access)
	}
}

// EnumLabel returns the display label of a known enum value.
func EnumLabel(path string, v int64) (string, bool) {
	var label string
	switch path {
	case model.PathPlayStatus:
		label = FormatPlayStatus(v)
	case model.PathGroupState:
		label = FormatGroupState(v)
	case model.PathPower:
		label = FormatPower(v)
	case model.PathMute:
		label = FormatMute(v)
	case model.PathPlayShuffle, model.PathPlayRepeat:
		label = FormatOnOff(v)
	default:
		return "", false
	}
	return label, true
}

// FormatPlayStatus formats a play status value.
func FormatPlayStatus(v int64) string {
	switch v {
	case 0:
		return "IDLE"
	case 2:
		return "PLAYING"
	case 3:
		return "PAUSED"
	case 6:
		return "STOPPED"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", v)
	}
}

// FormatGroupState formats a multi-room group state value.
func FormatGroupState(v int64) string {
	switch v {
	case 0:
		return "NO_GROUP"
	case 1:
		return "CLIENT"
	case 2:
		return "SERVER"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", v)
	}
}

// FormatPower formats a power value.
func FormatPower(v int64) string {
	switch v {
	case 0:
		return "STANDBY"
	case 1:
		return "ON"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", v)
	}
}

// FormatMute formats a mute value.
func FormatMute(v int64) string {
	switch v {
	case 0:
		return "UNMUTED"
	case 1:
		return "MUTED"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", v)
	}
}

// FormatOnOff formats a shuffle or repeat value.
func FormatOnOff(v int64) string {
	switch v {
	case 0:
		return "OFF"
	case 1:
		return "ON"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", v)
	}
}
