package git

type CommitInfo struct {
	Hash    string
	Message string
	Author  string
}

// GitMetadata describes the checkout a deployment is made from. Only IsRepo
// is meaningful outside a repository.
type GitMetadata struct {
	IsRepo          bool
	RepoName        string
	Branch          string
	Commit          CommitInfo
	HasLocalChanges bool
}

// Revision is the short commit hash, marked when the tree is dirty.
func (m GitMetadata) Revision() string {
	hash := m.Commit.Hash
	if len(hash) > 7 {
		hash = hash[:7]
	}
	if m.HasLocalChanges {
		hash += "-dirty"
	}
	return hash
}
