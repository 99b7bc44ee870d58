package dto

type SubjectOutput struct {
	Key    string
	Title  string
	Topics int
}

type TopicOutput struct {
	Subject string
	Name    string
	Slug    string
	Icon    string
}

type TopicDetailOutput struct {
	Subject      string
	SubjectTitle string
	Name         string
	Slug         string
	Notes        string
	References   string
	// Markdown is the whole topic page.
	Markdown string
}

type SearchResult struct {
	Subject string
	Topic   string
	InName  bool
}

type ExportInput struct {
	Subject string
	OutDir  string
}

type ExportOutput struct {
	Subject string
	Paths   []string
}
