package attribute

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rios0rios0/autobump/internal/domain/entities"
	"github.com/rios0rios0/autobump/internal/domain/repositories"
)

const (
	documentName = "attribute"

	// major.minor.build.revision
	attributeComponents = 4
	semverComponents    = 3
)

var (
	declarationPattern = regexp.MustCompile(`\[assembly: AssemblyVersion\("([^"]*)"\)\]`)

	// declarationLinePattern matches a line that holds a declaration and nothing else.
	declarationLinePattern = regexp.MustCompile(`(?m)^[ \t]*\[assembly: AssemblyVersion\("[^"]*"\)\][ \t]*\r?(\n|$)`)
)

// AttributeDocumentRepository handles source files carrying an assembly version
// declaration such as [assembly: AssemblyVersion("1.2.0.3")].
type AttributeDocumentRepository struct{}

// NewDocumentRepository creates an attribute document repository.
func NewDocumentRepository() repositories.DocumentRepository {
	return &AttributeDocumentRepository{}
}

func (r *AttributeDocumentRepository) Name() string      { return documentName }
func (r *AttributeDocumentRepository) Aliases() []string { return []string{"assembly"} }

// ReadVersion maps the last declaration A.B.C.D to A.B.D.
func (r *AttributeDocumentRepository) ReadVersion(content string) (string, bool, error) {
	matches := declarationPattern.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return "", false, nil
	}

	raw := matches[len(matches)-1][1]
	parts := strings.Split(raw, ".")
	if len(parts) != attributeComponents {
		return "", false, &entities.InvalidVersionError{Input: raw, Reason: "expected MAJOR.MINOR.BUILD.REVISION"}
	}
	for _, part := range parts {
		if part == "" || strings.Trim(part, "0123456789") != "" {
			return "", false, &entities.InvalidVersionError{
				Input:  raw,
				Reason: fmt.Sprintf("non-numeric component %q", part),
			}
		}
	}

	return strings.Join([]string{parts[0], parts[1], parts[3]}, "."), true, nil
}

// WriteVersion removes every declaration and appends A.B.0.<rest> on the last line.
func (r *AttributeDocumentRepository) WriteVersion(content, version string) (string, error) {
	parts := strings.Split(version, ".")
	if len(parts) < semverComponents {
		return "", &entities.InvalidVersionError{Input: version, Reason: "expected MAJOR.MINOR.PATCH"}
	}
	declaration := fmt.Sprintf(`[assembly: AssemblyVersion("%s.%s.0.%s")]`,
		parts[0], parts[1], strings.Join(parts[2:], "."))

	newline := "\n"
	if strings.Contains(content, "\r\n") {
		newline = "\r\n"
	}

	result := declarationLinePattern.ReplaceAllString(content, "")
	result = declarationPattern.ReplaceAllString(result, "")
	if result != "" && !strings.HasSuffix(result, "\n") {
		result += newline
	}

	return result + declaration + newline, nil
}
