package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fulldump/box"

	"github.com/Ghost835545/ScheduleMultipartiteGraph/database"
	"github.com/Ghost835545/ScheduleMultipartiteGraph/service"
)

var (
	ErrInvalidId   = errors.New("invalid id")
	ErrUnavailable = errors.New("temporary unavailable")
)

type PrettyError struct {
	Message     string `json:"message"`
	Description string `json:"description"`
}

func (p PrettyError) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"error": struct {
			Message     string `json:"message"`
			Description string `json:"description"`
		}{
			p.Message,
			p.Description,
		},
	})
}

func (p PrettyError) MarshalTo(w io.Writer) error {
	return json.NewEncoder(w).Encode(p)
}

// DescribedError attaches the description rendered next to the message of
// the wrapped error.
type DescribedError struct {
	Err         error
	Description string
}

func (e *DescribedError) Error() string {
	return e.Err.Error()
}

func (e *DescribedError) Unwrap() error {
	return e.Err
}

var notFoundByKind = map[string]error{
	"subject": service.ErrSubjectNotFound,
	"group":   service.ErrGroupNotFound,
	"link":    service.ErrLinkNotFound,
}

// describeNotFound names the missing record when err is the not-found error
// of kind. Other errors, like a missing reference inside a link, are
// returned untouched.
func describeNotFound(err error, kind string, id int) error {
	target, ok := notFoundByKind[kind]
	if !ok || !errors.Is(err, target) {
		return err
	}
	return &DescribedError{
		Err:         err,
		Description: fmt.Sprintf("%s '%d' does not exist", kind, id),
	}
}

func InterceptorUnavailable(db *database.Database) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {

			status := db.GetStatus()
			if status == database.StatusOpening || status == database.StatusClosing {
				box.SetError(ctx, &DescribedError{
					Err:         ErrUnavailable,
					Description: fmt.Sprintf("database is %s", status),
				})
				return
			}
			next(ctx)
		}
	}
}

type errorKind struct {
	status      int
	description string
	errs        []error
}

var errorKinds = []errorKind{
	{
		status:      http.StatusNotFound,
		description: "resource not found",
		errs:        []error{service.ErrSubjectNotFound, service.ErrGroupNotFound, service.ErrLinkNotFound, service.ErrFieldMissing},
	},
	{
		status:      http.StatusConflict,
		description: "conflict with the stored records",
		errs:        []error{service.ErrAlreadyLinked},
	},
	{
		status:      http.StatusBadRequest,
		description: "invalid input",
		errs:        []error{service.ErrEmptyName, service.ErrInvalidQuery, service.ErrInvalidFilter, service.ErrInvalidPatch, ErrInvalidId},
	},
	{
		status:      http.StatusServiceUnavailable,
		description: "try again later",
		errs:        []error{ErrUnavailable, database.ErrNotLoaded},
	},
}

func writePrettyError(w http.ResponseWriter, status int, err error, description string) {
	var described *DescribedError
	if errors.As(err, &described) {
		description = described.Description
	}
	w.WriteHeader(status)
	PrettyError{
		Message:     err.Error(),
		Description: description,
	}.MarshalTo(w)
}

func PrettyErrorInterceptor(next box.H) box.H {
	return func(ctx context.Context) {

		next(ctx)

		err := box.GetError(ctx)
		if err == nil {
			return
		}
		w := box.GetResponse(ctx)

		for _, kind := range errorKinds {
			for _, target := range kind.errs {
				if errors.Is(err, target) {
					writePrettyError(w, kind.status, err, kind.description)
					return
				}
			}
		}

		if err == box.ErrResourceNotFound {
			writePrettyError(w, http.StatusNotFound, err,
				fmt.Sprintf("resource '%s' not found", box.GetRequest(ctx).URL.String()))
			return
		}

		if err == box.ErrMethodNotAllowed {
			writePrettyError(w, http.StatusMethodNotAllowed, err,
				fmt.Sprintf("method '%s' not allowed", box.GetRequest(ctx).Method))
			return
		}

		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) ||
			errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			writePrettyError(w, http.StatusBadRequest, err, "Malformed JSON")
			return
		}

		writePrettyError(w, http.StatusInternalServerError, err, "Unexpected error")
	}
}
