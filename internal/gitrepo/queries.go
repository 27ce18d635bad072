package gitrepo

// Query is a named, fixed git argument vector. Refs are always passed as
// separate arguments so branch names never reach a shell.
type Query struct {
	Name string
	Args []string
}

func NameStatus(base string) Query {
	return Query{Name: "name-status", Args: []string{"diff", "--name-status", base + "...HEAD"}}
}

func Stat(base string) Query {
	return Query{Name: "stat", Args: []string{"diff", "--stat", base + "...HEAD"}}
}

func FullDiff(base string) Query {
	return Query{Name: "diff", Args: []string{"diff", base + "..HEAD"}}
}

func OnelineLog(base string) Query {
	return Query{Name: "log-oneline", Args: []string{"log", "--oneline", base + "..HEAD"}}
}

func SubjectLog(base string) Query {
	return Query{Name: "log-subjects", Args: []string{"log", "--pretty=format:%s", base + "..HEAD"}}
}

func RemoteURL() Query {
	return Query{Name: "remote-url", Args: []string{"remote", "get-url", "origin"}}
}

func CurrentBranch() Query {
	return Query{Name: "current-branch", Args: []string{"branch", "--show-current"}}
}

// LastCommit prints hash, author, ISO date and subject separated by tabs.
func LastCommit() Query {
	return Query{Name: "last-commit", Args: []string{"log", "-1", "--pretty=format:%H%x09%an%x09%aI%x09%s"}}
}
