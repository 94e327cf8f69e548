package httputils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"boscoin.io/ballotbox/lib/errors"
)

const ProblemTypeErrorPrefix = "https://boscoin.io/ballotbox/errors/"

// Problem follows RFC 7807, "Problem Details for HTTP APIs".
type Problem struct {
	// "type" (string) - A URI reference [RFC3986] that identifies the
	// problem type. When this member is not present, its value is assumed
	// to be "about:blank".
	Type string `json:"type"`

	// "title" (string) - A short, human-readable summary of the problem
	// type.
	Title string `json:"title"`

	// "status" (number) - The HTTP status code generated by the origin
	// server for this occurrence of the problem.
	Status int `json:"status,omitempty"`

	// "detail" (string) - A human-readable explanation specific to this
	// occurrence of the problem.
	Detail string `json:"detail,omitempty"`

	// "instance" (string) - A URI reference that identifies the specific
	// occurrence of the problem.
	Instance string `json:"instance,omitempty"`

	// Code and Data are extension members carrying `errors.Error`.
	Code uint                   `json:"code,omitempty"`
	Data map[string]interface{} `json:"data,omitempty"`
}

func NewStatusProblem(status int) Problem {
	return Problem{Type: "about:blank", Title: http.StatusText(status), Status: status}
}

func NewDetailedStatusProblem(status int, detail string) Problem {
	p := NewStatusProblem(status)
	p.Detail = detail
	return p
}

//
// NewErrorProblem renders `err`. `errors.Error` keeps its code in the
// problem type, so the client can restore the registered error.
//
func NewErrorProblem(err error, status int) Problem {
	e, ok := err.(*errors.Error)
	if !ok {
		return NewDetailedStatusProblem(status, err.Error())
	}

	p := Problem{
		Type:   fmt.Sprintf("%s%d", ProblemTypeErrorPrefix, e.Code),
		Title:  e.Message,
		Status: status,
		Code:   e.Code,
	}
	if len(e.Data) > 0 {
		p.Data = e.Data
	}

	return p
}

func (p Problem) SetInstance(instance string) Problem {
	p.Instance = instance
	return p
}

// ToError restores the registered error; unregistered problems become
// `errors.HTTPServerError` with the problem attached.
func (p Problem) ToError() *errors.Error {
	var e *errors.Error
	if p.Code > 0 {
		e = errors.NewError(p.Code, p.Title)
		for k, v := range p.Data {
			e.SetData(k, v)
		}
		return e
	}

	e = errors.HTTPServerError.Clone().SetData("status", p.Status)
	if len(p.Detail) > 0 {
		e.SetData("detail", p.Detail)
	}
	return e
}

func (p Problem) Serialize() ([]byte, error) {
	return json.Marshal(p)
}
