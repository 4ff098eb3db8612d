// Package api contains the HTTP transport layer: request decoding and
// structural validation, handlers that delegate to the service layer, and
// the translation of internal errors into sanitized JSON error responses.
//
// Response bodies follow a uniform envelope. Successful responses carry
// {"status":"success","data":...}, list responses additionally echo their
// pagination window, and failures carry {"status":"error","message":...}.
package api
