// Package objects exposes object puts and deletes over HTTP.
//
// # Routes
//
//	PUT    /objects/:bucket/*   upload the request body
//	DELETE /objects/:bucket/*   delete after an existence check
//
// Both respond with the operation Result as JSON. Success is 200; a failed
// Result takes its status from the first error code (NotFound is 404,
// Forbidden is 403, InternalServerError is 500, any other store code is 502).
// Invalid bucket or key values are 400 and an existence check that could not
// complete is 503. Every completed operation is written to the journal.
package objects
