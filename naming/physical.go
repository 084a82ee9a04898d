package naming

// Kind is the sort of identifier a physical override is asked about.
type Kind int

const (
	KindCatalog Kind = iota
	KindSchema
	KindTable
	KindSequence
	KindColumn
)

func (k Kind) String() string {
	switch k {
	case KindCatalog:
		return "catalog"
	case KindSchema:
		return "schema"
	case KindTable:
		return "table"
	case KindSequence:
		return "sequence"
	case KindColumn:
		return "column"
	}
	return "unknown"
}

// PhysicalNamer may override an already derived identifier. Returning
// false means "no override": the caller keeps its own name.
type PhysicalNamer interface {
	PhysicalName(kind Kind, name string) (string, bool)
}

// PassThrough never overrides. Only the implicit derivation is customized.
type PassThrough struct{}

func (PassThrough) PhysicalName(Kind, string) (string, bool) { return "", false }

// PhysicalFunc adapts a function to PhysicalNamer.
type PhysicalFunc func(kind Kind, name string) (string, bool)

func (f PhysicalFunc) PhysicalName(kind Kind, name string) (string, bool) { return f(kind, name) }

func applyPhysical(p PhysicalNamer, kind Kind, name string) string {
	if p == nil {
		return name
	}
	if v, ok := p.PhysicalName(kind, name); ok {
		return v
	}
	return name
}
