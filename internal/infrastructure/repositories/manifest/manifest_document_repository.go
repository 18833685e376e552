package manifest

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rios0rios0/autobump/internal/domain/entities"
	"github.com/rios0rios0/autobump/internal/domain/repositories"
)

const (
	documentName = "manifest"
	groupElement = "PropertyGroup"
	versionField = "Version"

	// element depths below the document: root, property group, field
	groupDepth = 2
	fieldDepth = 3
)

// target is a field rewritten on bump and the suffix appended to the new version.
type target struct {
	name   string
	suffix string
}

// targets are visited in this order inside every property group.
var targets = []target{ //nolint:gochecknoglobals // read-only table
	{name: versionField},
	{name: "PackageVersion"},
	{name: "AssemblyVersion", suffix: ".0"},
	{name: "FileVersion", suffix: ".0"},
}

// ManifestDocumentRepository reads and writes the version properties of an
// MSBuild project file. Writes splice the new values into the original bytes,
// so everything outside the rewritten text ranges is preserved exactly.
type ManifestDocumentRepository struct{}

// NewDocumentRepository creates a manifest document repository.
func NewDocumentRepository() repositories.DocumentRepository {
	return &ManifestDocumentRepository{}
}

func (r *ManifestDocumentRepository) Name() string      { return documentName }
func (r *ManifestDocumentRepository) Aliases() []string { return []string{"csproj"} }

// ReadVersion returns the first unambiguous, text-only Version field in document order.
func (r *ManifestDocumentRepository) ReadVersion(content string) (string, bool, error) {
	groups, err := parse(content)
	if err != nil {
		return "", false, err
	}

	for _, g := range groups {
		f, ok := g.single(versionField)
		if !ok || !f.textOnly {
			continue
		}
		if value := strings.TrimSpace(f.value); value != "" {
			return value, true, nil
		}
	}
	return "", false, nil
}

// WriteVersion rewrites every unambiguous version field of every property group.
// When no group declares a Version, one is added to the first group.
func (r *ManifestDocumentRepository) WriteVersion(content, version string) (string, error) {
	groups, err := parse(content)
	if err != nil {
		return "", err
	}

	var edits []edit
	versionSeen := false
	versionWritten := false
	for _, g := range groups {
		for _, t := range targets {
			count := g.count(t.name)
			if t.name == versionField && count > 0 {
				versionSeen = true
			}
			if count != 1 {
				continue
			}
			f, _ := g.single(t.name)
			if !f.textOnly {
				continue
			}
			edits = append(edits, f.replacement(version+t.suffix))
			if t.name == versionField {
				versionWritten = true
			}
		}
	}

	switch {
	case !versionSeen && len(groups) == 0:
		return content, nil
	case !versionSeen:
		edits = append(edits, groups[0].insertion(content, version))
	case !versionWritten:
		return "", fmt.Errorf("%w: every %s field is duplicated or nested", entities.ErrAmbiguousField, versionField)
	}

	return apply(content, edits), nil
}

// field is a direct child of a property group, located by byte offsets.
type field struct {
	name         string
	rawName      string
	openTag      string
	start        int
	end          int
	contentStart int
	contentEnd   int
	selfClosing  bool
	textOnly     bool
	value        string
}

func (f field) replacement(value string) edit {
	if f.selfClosing {
		return edit{
			start: f.start,
			end:   f.end,
			text:  expand(f.openTag) + escape(value) + "</" + f.rawName + ">",
		}
	}
	return edit{start: f.contentStart, end: f.contentEnd, text: escape(value)}
}

// group is a PropertyGroup element directly under the root.
type group struct {
	rawName     string
	openTag     string
	start       int
	startTagEnd int
	closeStart  int
	end         int
	selfClosing bool
	fields      []field
}

func (g group) count(name string) int {
	n := 0
	for _, f := range g.fields {
		if f.name == name {
			n++
		}
	}
	return n
}

func (g group) single(name string) (field, bool) {
	if g.count(name) != 1 {
		return field{}, false
	}
	for _, f := range g.fields {
		if f.name == name {
			return f, true
		}
	}
	return field{}, false
}

// insertion adds a Version field right before the group's closing tag. When the
// closing tag sits on its own line, the new field gets a line of its own with
// the indentation of its siblings.
func (g group) insertion(content, version string) edit {
	element := "<" + versionField + ">" + escape(version) + "</" + versionField + ">"
	if g.selfClosing {
		return edit{start: g.start, end: g.end, text: expand(g.openTag) + element + "</" + g.rawName + ">"}
	}

	closeIndent, lineStart, ownLine := indentBefore(content, g.closeStart)
	if !ownLine || lineStart-1 < g.startTagEnd {
		return edit{start: g.closeStart, end: g.closeStart, text: element}
	}

	newline := "\n"
	if lineStart >= 2 && content[lineStart-2] == '\r' {
		newline = "\r\n"
	}

	fieldIndent := closeIndent + "  "
	if strings.Contains(closeIndent, "\t") {
		fieldIndent = closeIndent + "\t"
	}
	if len(g.fields) > 0 {
		if indent, _, ok := indentBefore(content, g.fields[len(g.fields)-1].start); ok {
			fieldIndent = indent
		}
	}

	return edit{start: lineStart, end: lineStart, text: fieldIndent + element + newline}
}

// indentBefore returns the text between the start of the line and offset, that
// line's start, and whether that text is only blanks.
func indentBefore(content string, offset int) (string, int, bool) {
	lineStart := strings.LastIndexByte(content[:offset], '\n') + 1
	indent := content[lineStart:offset]
	return indent, lineStart, strings.Trim(indent, " \t") == ""
}

// parse walks the document tokens and records the byte ranges of every
// property group and of its fields.
func parse(content string) ([]group, error) {
	decoder := xml.NewDecoder(strings.NewReader(content))

	var groups []group
	var current *group
	var currentField *field
	depth := 0

	for {
		before := int(decoder.InputOffset())
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", entities.ErrMalformedDocument, err)
		}
		after := int(decoder.InputOffset())

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			tag := content[before:after]
			switch {
			case depth == groupDepth && t.Name.Local == groupElement:
				groups = append(groups, group{
					rawName:     rawName(tag),
					openTag:     tag,
					start:       before,
					startTagEnd: after,
					selfClosing: strings.HasSuffix(tag, "/>"),
				})
				current = &groups[len(groups)-1]
			case depth == fieldDepth && current != nil:
				currentField = &field{
					name:         t.Name.Local,
					rawName:      rawName(tag),
					openTag:      tag,
					start:        before,
					contentStart: after,
					selfClosing:  strings.HasSuffix(tag, "/>"),
					textOnly:     true,
				}
			case depth > fieldDepth && currentField != nil:
				currentField.textOnly = false
			}
		case xml.EndElement:
			switch {
			case depth == fieldDepth && currentField != nil:
				currentField.contentEnd = before
				currentField.end = after
				current.fields = append(current.fields, *currentField)
				currentField = nil
			case depth == groupDepth && current != nil:
				current.closeStart = before
				current.end = after
				current = nil
			}
			depth--
		case xml.CharData:
			if depth == fieldDepth && currentField != nil {
				currentField.value += string(t)
			}
		case xml.Comment, xml.ProcInst, xml.Directive:
			if depth >= fieldDepth && currentField != nil {
				currentField.textOnly = false
			}
		}
	}

	return groups, nil
}

// rawName returns the element name exactly as written in its start tag.
func rawName(tag string) string {
	name := strings.TrimPrefix(tag, "<")
	if i := strings.IndexAny(name, " \t\r\n/>"); i >= 0 {
		name = name[:i]
	}
	return name
}

// expand turns a self-closing start tag into a regular one.
func expand(tag string) string {
	return strings.TrimRight(strings.TrimSuffix(tag, "/>"), " \t\r\n") + ">"
}

func escape(value string) string {
	var builder strings.Builder
	_ = xml.EscapeText(&builder, []byte(value))
	return builder.String()
}

// edit replaces content[start:end] with text.
type edit struct {
	start int
	end   int
	text  string
}

func apply(content string, edits []edit) string {
	sort.SliceStable(edits, func(i, j int) bool { return edits[i].start < edits[j].start })

	var builder strings.Builder
	builder.Grow(len(content))
	last := 0
	for _, e := range edits {
		builder.WriteString(content[last:e.start])
		builder.WriteString(e.text)
		last = e.end
	}
	builder.WriteString(content[last:])
	return builder.String()
}
