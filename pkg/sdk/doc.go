// Package lawsearch provides a Go client for the lawsearch statute
// search service.
//
// The client talks to the service's HTTP API: full-text and citation
// search across configured law families, plus direct article lookup.
//
//	client := lawsearch.New("http://localhost:8080",
//	    lawsearch.WithAPIKey("secret"),
//	)
//	res, _ := client.Search(ctx, lawsearch.SearchRequest{
//	    Query: "제218조",
//	    Scope: "civil",
//	    Limit: 10,
//	})
//	art, _ := client.Article(ctx, "CIVIL_CODE", 218, 0)
package lawsearch
