// Package objectstore uploads and deletes objects in an S3-compatible store
// (Cloudflare R2) and reports the outcome as a uniform Result instead of
// surfacing provider errors.
//
// # Results and faults
//
// Every operation returns (*Result, error). Store-side failures never come
// back as the error: they become a failed Result whose errors carry a code
// (the HTTP status name, e.g. "Forbidden", or a sentinel such as "NotFound")
// and a description. The error is reserved for faults the caller has to
// handle differently:
//
//   - ErrInvalidArgument: an empty bucket, key, path or a nil stream.
//   - ErrClosed: the Client has been closed.
//   - *ExistenceError: a delete whose existence check failed for a reason
//     other than a missing bucket or object. The delete was not sent.
//
// # Content sources
//
// Uploads take a Source, opened for reading when the upload starts. File
// reads a local path and Stream reads any io.Reader. The content type is
// sniffed from the first bytes and payload signing is disabled.
//
// # Usage
//
//	client, err := objectstore.New(cfg.Storage, logger)
//	defer client.Close()
//
//	res, err := client.PutFile(ctx, "avatar.png", "assets", "profile/avatar.png")
//	if err != nil {
//	    return err // programmer error
//	}
//	if !res.Succeeded() {
//	    log.Println(res) // "Failed : Forbidden"
//	}
package objectstore
