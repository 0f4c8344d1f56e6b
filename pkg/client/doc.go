// Package client provides a Go SDK for the Bored API.
//
// The Bored API returns a suggested activity, either at random, by its key,
// or filtered by type, participants, price and accessibility. This SDK builds
// the query URLs, performs the request and returns the top-level fields of the
// response in the order the API sent them.
//
// # Quick Start
//
// Create a client and ask for a random activity:
//
//	c := client.New()
//	res, err := c.Query(ctx, client.ModeRandom, "", nil)
//
// Use custom configuration:
//
//	c := client.New(
//	    client.WithBaseURL("http://localhost:8080/api/activity/"),
//	    client.WithHTTPClient(customHTTPClient),
//	)
//
// # Parameter Queries
//
// Each parameter may carry an exact value or a min/max range. An exact value
// always wins over the range for the same parameter:
//
//	params := client.DefaultParameters()
//	params[1].Min = "2" // participants
//	params[2].Exact = "0" // price
//	res, err := c.Query(ctx, client.ModeByParameters, "", params)
//
// # Errors
//
// Failures are reported as typed errors. Use errors.As to tell them apart:
//
//	var apiErr *client.APIError
//	if errors.As(err, &apiErr) {
//	    fmt.Println(apiErr.Message)
//	}
//
// The Error() text of every type is the message shown to the user, such as
// "API request failed: 500" or "API request returned error: ...".
package client
