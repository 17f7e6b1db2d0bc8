package ports

// WorkspaceLocator finds a linkledger workspace root starting from an
// arbitrary directory.
type WorkspaceLocator interface {
	FindRoot(startDir string) (string, error)
}

// WorkspaceInitializer scaffolds a new workspace at root.
type WorkspaceInitializer interface {
	Init(root string, force bool) error
}
