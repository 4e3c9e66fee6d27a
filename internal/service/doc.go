// Package service contains the application service layer that orchestrates
// the screening core and the report generator on behalf of the HTTP
// handlers. Services own input validation policy and error translation;
// handlers only map service errors onto the wire contract.
package service
