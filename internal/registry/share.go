package registry

// Share is the derived view of one share section: its name and the value
// of its path key. Path is empty when the section carries no path line.
type Share struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}

// AddRequest describes a share to create.
type AddRequest struct {
	// Name is the section name, without brackets.
	Name string
	// Path is the directory exported by the share, created if missing.
	Path string
	// Owner is the system account that owns the share directory. Ignored
	// for guest shares.
	Owner string
	// Guest makes the share accessible without a credential.
	Guest bool
}
