package dto

type ArticleResponse struct {
	Id       string   `json:"id"`
	Title    string   `json:"title"`
	Body     string   `json:"body"`
	Tags     []string `json:"tags"`
	Category string   `json:"category"`
}

type ArticleMatchDTO struct {
	Id      string  `json:"id"`
	Title   string  `json:"title"`
	Score   float64 `json:"score"`
	Snippet string  `json:"snippet"`
}

type SearchArticlesResponse struct {
	Query   string            `json:"query"`
	Matches []ArticleMatchDTO `json:"matches"`
}
