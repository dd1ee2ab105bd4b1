// Package server provides HTTP routing, middleware, and the static asset handler for the Launchora site.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers so that the first one added is the outermost and executes first.
//
// The [BasicRouter] implementation uses [http.ServeMux] method patterns ("GET /path"), so a GET route also answers
// HEAD and any other method receives 405 from the mux.
//
// # Asset Handler
//
// [AssetHandler] serves files from an [fs.FS]:
//
//   - an existing file is served as-is and marked cacheable
//   - a directory serves its index document
//   - an extension-less path like /about serves about.html when present
//   - anything else is answered with the root index document (status 200)
//
// Paths ending in .css and .js always carry text/css and application/javascript. Other types come from
// [http.ServeContent]'s extension table.
//
// A missing asset root or an unreadable file results in a 500.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
//
// # Lifecycle
//
// [Server] owns the router and the [http.Server]; [Server.Serve] blocks until the context is cancelled and then
// shuts down gracefully.
package server
