// Package hunter provides a Go client for the Hunter.io v2 API,
// an email-discovery and verification service.
//
// Basic usage:
//
//	client, err := hunter.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := client.DomainSearch(ctx, hunter.DomainSearchParams{
//	    Domain: "example.com",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(result["data"])
//
// The API key can also come from the HUNTER_API_KEY environment variable.
// Results are relayed as generic JSON objects; the response shape is the
// Hunter API's own and is not validated by this package.
package hunter
