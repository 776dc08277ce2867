package groups

// Group is the registry record; membership rows live in their own table
// and are resolved separately.
type Group struct {
	Name  string
	Owner string
}

// Details is the read model served to clients.
type Details struct {
	Name    string
	Owner   string
	Members []string
}
