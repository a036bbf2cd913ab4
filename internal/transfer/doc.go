// Package transfer moves photo batches between the local filesystem and
// presigned storage URLs. Uploads and downloads run through a bounded worker
// pool; a single file failing is recorded in the batch summary and does not
// stop the remaining files.
package transfer
