package entity

// Article is a knowledge-base entry. Articles are loaded once at startup
// and never mutated afterwards.
type Article struct {
	Id       string
	Title    string
	Body     string
	Tags     []string
	Category Category
}

// ArticleMatch is one ranked retrieval result for a query.
type ArticleMatch struct {
	Id      string  `json:"id"`
	Title   string  `json:"title"`
	Score   float64 `json:"score"`
	Snippet string  `json:"snippet"`
}
