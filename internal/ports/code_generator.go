package ports

// Produces candidate package codes. Uniqueness is checked by the caller.
type CodeGenerator interface {
	NewCode() string
}
