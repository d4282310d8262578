package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata discovered while loading a source file.
	FileFlags uint8
)

const (
	// FileVirtual marks a file that was added from memory (test fixtures, stdin).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// LineCol is a human-readable, 1-based position in a source file.
type LineCol struct {
	Line uint32
	Col  uint32
}

// File holds content and line-index metadata for a single loaded spec file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// Location is the resolved, human-facing form of a Span: a filename plus a
// 1-based line and column. Every diagnostic and every generated line
// directive is anchored to a Location.
type Location struct {
	File string
	Line uint32
	Col  uint32
}
