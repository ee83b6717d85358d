// Package fragment decodes FileMover service replies into [models.Response].
//
// Replies are HTML fragments, optionally wrapped in an
// <ajax-response><response type="..." id="..."> envelope, that may embed
// <script> blocks. Script blocks are stripped from the markup and classified
// into a closed set of side effects; they are never evaluated.
package fragment
