// Package analytics provides a client for the Brightcove Analytics
// API: engagement timelines and the /data reporting endpoint.
package analytics
