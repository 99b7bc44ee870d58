package dto

type ItemOutput struct {
	Number  int
	Title   string
	Image   string
	Link    string
	Content string
}

// SlideOutput is the carousel position. Index is zero-based.
type SlideOutput struct {
	Item  ItemOutput
	Index int
	Total int
}

type OpenOutput struct {
	Number   int
	Link     string
	Launched bool
}
