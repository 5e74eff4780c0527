package duplo

// Policy controls how the walk treats kinds that carry no cloneable
// structure: funcs, channels, and unsafe pointers.
type Policy string

const (
	// PolicyOpaque copies non-cloneable kinds by reference, treating them
	// as opaque primitives. This is the default.
	PolicyOpaque Policy = "opaque"

	// PolicyStrict rejects non-cloneable kinds with ErrUnsupportedKind,
	// including nil funcs and channels.
	PolicyStrict Policy = "strict"
)

// Directive is a per-field clone behavior declared in struct tags.
// Use these constants in struct tags: `clone:"shallow"`
type Directive string

const (
	// DirectiveDeep traverses the field fully. This is the default when no
	// clone tag is present.
	DirectiveDeep Directive = "deep"

	// DirectiveOpaque copies the field by assignment without traversal.
	DirectiveOpaque Directive = "opaque"

	// DirectiveShallow duplicates the field's top-level container and
	// shares its children with the original.
	DirectiveShallow Directive = "shallow"

	// DirectiveSkip leaves the field zero in the clone.
	DirectiveSkip Directive = "skip"
)

// validPolicies contains all valid policies for option validation.
var validPolicies = map[Policy]bool{
	PolicyOpaque: true,
	PolicyStrict: true,
}

// validDirectives contains all valid directives for tag validation.
var validDirectives = map[Directive]bool{
	DirectiveDeep:    true,
	DirectiveOpaque:  true,
	DirectiveShallow: true,
	DirectiveSkip:    true,
}

// IsValidPolicy returns true if p is a known policy.
func IsValidPolicy(p Policy) bool {
	return validPolicies[p]
}

// IsValidDirective returns true if d is a known clone tag directive.
func IsValidDirective(d Directive) bool {
	return validDirectives[d]
}
