// Package protocol defines the line-oriented request/response grammar spoken
// between the rental client and server.
//
// One request line maps to exactly one response line:
//
//	Request:  ACTION|TABLE|DATA\n
//	Response: STATUS|PAYLOAD\n
//
// The request split is capped at three segments so DATA may itself contain
// '|' for entity kinds whose record encoding uses it internally.
package protocol

import (
	"errors"
	"strings"
)

const Separator = "|"

// Verb is the request action.
type Verb string

const (
	VerbAdd    Verb = "ADD"
	VerbUpdate Verb = "UPDATE"
	VerbDelete Verb = "DELETE"
	VerbFind   Verb = "FIND"
	VerbList   Verb = "LIST"
	VerbReport Verb = "REPORT"
)

// Status is the response outcome.
type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusError   Status = "ERROR"
)

var (
	ErrMalformedRequest  = errors.New("protocol: invalid request format")
	ErrMalformedResponse = errors.New("protocol: invalid response format")
)

// Request is one parsed protocol request. It lives for a single dispatch.
type Request struct {
	Action  Verb
	Table   string
	Payload string
}

// Response is one protocol response. Handlers never fail out of band; every
// failure becomes a Response with StatusError.
type Response struct {
	Status  Status
	Payload string
}

// ParseRequest splits one request line into at most three segments. Fewer
// than two segments is a malformed request; a missing third segment is an
// empty payload (LIST requests legitimately omit it).
func ParseRequest(line string) (Request, error) {
	line = strings.TrimRight(line, "\r\n")
	parts := strings.SplitN(line, Separator, 3)
	if len(parts) < 2 {
		return Request{}, ErrMalformedRequest
	}
	req := Request{
		Action: Verb(parts[0]),
		Table:  parts[1],
	}
	if len(parts) > 2 {
		req.Payload = parts[2]
	}
	return req, nil
}

// Encode renders the request as one wire line without the trailing newline.
func (r Request) Encode() string {
	return string(r.Action) + Separator + r.Table + Separator + r.Payload
}

// ParseResponse splits one response line into status and payload. The split
// is capped at two segments so record payloads containing '|' survive.
func ParseResponse(line string) (Response, error) {
	line = strings.TrimRight(line, "\r\n")
	parts := strings.SplitN(line, Separator, 2)
	if len(parts) < 2 {
		return Response{}, ErrMalformedResponse
	}
	return Response{Status: Status(parts[0]), Payload: parts[1]}, nil
}

// Encode renders the response as one wire line without the trailing newline.
// Payloads must not contain newlines; the protocol is line-framed.
func (r Response) Encode() string {
	return string(r.Status) + Separator + r.Payload
}

func Success(payload string) Response {
	return Response{Status: StatusSuccess, Payload: payload}
}

func Error(payload string) Response {
	return Response{Status: StatusError, Payload: payload}
}

// IsSuccess reports whether the response carries a SUCCESS status.
func (r Response) IsSuccess() bool {
	return r.Status == StatusSuccess
}
