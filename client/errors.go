package client

import "fmt"

// CommunicationError transport-level failure: the request never produced a
// response. Message carries the transport's raw error text.
type CommunicationError struct {
	Message string
}

func (e *CommunicationError) Error() string {
	return fmt.Sprintf("communication error: %s", e.Message)
}

// SyntaxError the server rejected the request body or query (status 400).
// Body carries the server's response verbatim.
type SyntaxError struct {
	Body string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s", e.Body)
}

// CouldNotCompleteError the write endpoint answered 200 instead of 204,
// which the server uses for writes it accepted but could not fully complete.
type CouldNotCompleteError struct {
	Body string
}

func (e *CouldNotCompleteError) Error() string {
	return fmt.Sprintf("could not complete write: %s", e.Body)
}

// UnexpectedError any status the classifier has no mapping for
type UnexpectedError struct {
	Status int
	Body   string
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("Unexpected response. Status: %d; Body: %q", e.Status, e.Body)
}
