// Package gateway exposes the endpoint table over HTTP.
//
// The gateway is a thin transport adapter: it owns the listener, the
// middleware chain, and the mapping between endpoint statuses and HTTP
// status codes. All request semantics live in the endpoint package; the
// gateway never inspects selectors or replies beyond copying bytes.
//
//	            ┌──────────────────────────────┐
//	 HTTP  ───▶ │ gateway (chi router)         │
//	            │   requestID / logging /      │
//	            │   recovery / body limit      │
//	            └──────────────┬───────────────┘
//	                           │ endpoint.Request + reply buffer
//	            ┌──────────────▼───────────────┐
//	            │ endpoint.Dispatcher          │
//	            └──────────────────────────────┘
//
// Read resources map to GET with the selector in the query string; submit
// resources map to POST with the selector in the request body. Replies are
// served as text/plain.
//
// The server follows the same lifecycle pattern as the other components:
//
//	server, err := gateway.New(deps)
//	server.Start(ctx)
//	defer server.Close()
package gateway
