// Package cms provides a client for the Brightcove CMS API: video
// metadata, custom fields, channels and contracts.
//
// Every method is a thin composition of an endpoint template, an HTTP
// verb and a response schema, delegated to the shared api.Executor.
// Write methods transmit only the fields the caller populated; request
// schemas declare optionals as pointers with omitempty.
package cms
