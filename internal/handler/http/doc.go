// Package http implements the HTTP transport layer of the Instoc backend.
// It provides middleware, route handlers and request/response utilities for
// the REST API. Authentication, authorization, logging and tracing concerns
// are all handled at this layer before requests are forwarded to the
// service layer.
//
// Response shaping goes through the projection registry: every endpoint
// declares exactly which fields of which entity types its responses carry,
// and the serializer emits nothing that was not declared.
package http
