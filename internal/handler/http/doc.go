// Package http implements the reference sync server's HTTP transport.
//
// It wires the /sync routes, decodes requests, and maps service errors to
// status codes and JSON error bodies. Tracing, access logging, bearer
// authentication, device identification and response compression are
// handled here before requests reach the service layer.
package http
