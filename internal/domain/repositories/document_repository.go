package repositories

// DocumentRepository reads and rewrites the version fields of one document format.
// Implementations work on the full document content and never write partially:
// on error the caller keeps the original content.
type DocumentRepository interface {
	// Name returns the document type tag (e.g. "manifest", "attribute").
	Name() string

	// Aliases returns additional type tags accepted for this format.
	Aliases() []string

	// ReadVersion returns the version stored in the document, or false when it carries none.
	ReadVersion(content string) (string, bool, error)

	// WriteVersion returns the document with its version fields set to version.
	WriteVersion(content, version string) (string, error)
}
