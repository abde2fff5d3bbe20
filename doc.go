// The tjp package contains a client for the Joplin Web Clipper REST API, restricted to what a
// taskwarrior-like front end needs: listing folders (notebooks), listing notes page by page,
// fetching a note body, creating and updating notes. Documentation for the API is at
// https://joplinapp.org/help/api/references/rest_api.
//
// The client keeps no state between calls. Every method makes exactly one HTTP round trip and
// honours the context it is given, so an interrupted command aborts the call in flight.
//
// Parsing note bodies into todo items lives in the todo subpackage; the task subpackage composes
// the two to implement the commands of the tjp program in cmd/tjp.
package tjp // import "github.com/nicolagi/tjp"
