// Package imagen provides a high-level Go SDK for the Imagen AI
// photo-editing service. It wraps the REST API to provide an intuitive
// interface for the full editing workflow while keeping each stage
// available on its own for advanced use cases.
//
// The SDK emphasizes developer experience through simple APIs while
// maintaining performance through intelligent defaults for concurrency,
// polling, and timeouts.
//
// Key features:
//   - One-call QuickEdit covering upload, edit, wait, and download
//   - Progressive enhancement through functional options
//   - Concurrent batch transfers with configurable limits
//   - MD5-verified uploads through presigned URLs
//   - Job waiting with growing poll intervals and deadlines
//   - Comprehensive error handling with context
//
// Example usage:
//
//	client, err := imagen.New(apiKey)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	// Edit a batch of photos and download the results
//	result, err := client.QuickEdit(ctx, profileKey, paths,
//	    imagen.WithDownload("edited"),
//	)
//	if err != nil {
//	    return err
//	}
package imagen
