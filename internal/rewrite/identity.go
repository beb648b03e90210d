package rewrite

import "github.com/gorewood/gostrap/internal/naming"

// DefaultOrg is the organisation placeholder written into repository URLs.
const DefaultOrg = "your-org"

// Identity is the new project's identity as substituted into template files.
type Identity struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Org   string `json:"org"`
}

// NewIdentity builds an Identity for name. An empty org means DefaultOrg.
func NewIdentity(name, org string) Identity {
	if org == "" {
		org = DefaultOrg
	}
	return Identity{
		Name:  name,
		Title: naming.Title(name),
		Org:   org,
	}
}

// ModulePath returns the Go module path, e.g. github.com/your-org/my-project.
func (id Identity) ModulePath() string {
	return "github.com/" + id.Org + "/" + id.Name
}

// RepoURL returns the repository web URL without a .git suffix.
func (id Identity) RepoURL() string {
	return "https://" + id.ModulePath()
}
