// Package grooveshark provides a client library for the Grooveshark public
// web service (ws3).
//
// # Overview
//
// Every remote method is a signed JSON POST to a single endpoint. The
// client builds the request envelope, signs the exact body bytes with
// HMAC-MD5, sends it, and returns the raw JSON reply. The methods on the
// Auth, Library, Playlists and Catalog services are thin wrappers that
// shape arguments for Invoke.
//
// # Installation
//
//	go get github.com/jfmyers9/sharkfin/pkg/grooveshark
//
// # Quick Start
//
// Create a client with your application credentials:
//
//	import "github.com/jfmyers9/sharkfin/pkg/grooveshark"
//
//	client, err := grooveshark.NewClient(grooveshark.Config{
//	    APIKey:    "your-key",
//	    APISecret: "your-secret",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	raw, err := client.Catalog().AlbumsInfo(ctx, []int64{101})
//
// # Wire Format
//
// The request body is
//
//	{"method":"getAlbumsInfo","parameters":{"albumIDs":[101]},"header":{"wsKey":"your-key","sessionID":null}}
//
// and is posted to the endpoint with ?sig=<hex HMAC-MD5 of the body keyed by
// the application key>. Serialization is deterministic, so the bytes that
// are signed are the bytes that are sent.
//
// # Sessions
//
// Calls that act for a user need a session:
//
//	if _, err := client.Auth().StartSession(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	user, err := client.Auth().Authenticate(ctx, "login", "password")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Auth().Logout(ctx)
//
// The token lives only in memory. Authenticate hashes the password with MD5
// before sending it; MD5 is weak and is kept solely for compatibility with
// the service.
//
// # Error Handling
//
// Invoke never retries and never exits the process. Failures are typed:
//
//	raw, err := client.Ping(ctx)
//	var serverErr *grooveshark.ServerError
//	switch {
//	case errors.As(err, &serverErr):
//	    // non-200 status in serverErr.StatusCode
//	case errors.As(err, new(*grooveshark.TransportError)):
//	    // connection, timeout or cancellation
//	case errors.As(err, new(*grooveshark.DecodeError)):
//	    // 200 with a body that is not JSON
//	}
//
// Faults the service reports inside a 200 reply are surfaced by
// DecodeResult as *Error:
//
//	var list grooveshark.SongList
//	if err := grooveshark.DecodeResult(raw, &list); err != nil {
//	    var fault *grooveshark.Error
//	    if errors.As(err, &fault) {
//	        log.Printf("fault %d: %s", fault.Code, fault.Message)
//	    }
//	}
//
// # Configuration
//
//	client, err := grooveshark.NewClient(grooveshark.Config{
//	    APIKey:    "your-key",
//	    APISecret: "your-secret",
//	    Timeout:   10 * time.Second,
//	    Logger:    myLogger, // Implements grooveshark.Logger
//	    OnCall: func(info grooveshark.CallInfo) {
//	        metrics.Observe(info.Method, info.Duration)
//	    },
//	})
package grooveshark
