// Package sdk provides a thin HTTP client for the affinity match API.
//
//	client := sdk.New("https://affinity.internal", sdk.WithAPIKey("secret"))
//	page, err := client.MatchPeople(ctx, sdk.Query{
//	    ActorID: "alice",
//	    Filters: &sdk.Filters{Country: "DE", ConnectionsOnly: true},
//	    Paging:  &sdk.Paging{Limit: 20},
//	})
//
// Non-2xx responses are returned as *APIError carrying the service's
// error envelope.
package sdk
