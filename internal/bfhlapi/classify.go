package bfhlapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/linnemanlabs/bfhl/internal/classify"
)

// request is the POST /bfhl body. Pointers let us tell a missing or null
// field apart from an empty one.
type request struct {
	Data *[]*string `json:"data"`
}

type response struct {
	IsSuccess         bool     `json:"is_success"`
	UserID            string   `json:"user_id"`
	Email             string   `json:"email"`
	RollNumber        string   `json:"roll_number"`
	OddNumbers        []string `json:"odd_numbers"`
	EvenNumbers       []string `json:"even_numbers"`
	Alphabets         []string `json:"alphabets"`
	SpecialCharacters []string `json:"special_characters"`
	Sum               string   `json:"sum"`
	ConcatString      string   `json:"concat_string"`
	Error             string   `json:"error,omitempty"`
}

var (
	errSchema   = errors.New("data must be an array of strings")
	errTrailing = errors.New("unexpected data after JSON object")
)

// decodeStatus maps a body decoding error to its HTTP status. An empty body is
// unprocessable, like a schema violation.
func decodeStatus(err error) int {
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, io.EOF):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

// decodeTokens reads the request body and returns the tokens in order.
// It returns the HTTP status to use when the body is rejected.
func decodeTokens(r *http.Request) ([]string, int, error) {
	dec := json.NewDecoder(r.Body)

	var req request
	if err := dec.Decode(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, http.StatusUnprocessableEntity, errSchema
		}
		return nil, decodeStatus(err), err
	}
	// only whitespace may follow the object
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil && decodeStatus(err) == http.StatusRequestEntityTooLarge {
			return nil, http.StatusRequestEntityTooLarge, err
		}
		return nil, http.StatusUnprocessableEntity, errTrailing
	}
	if req.Data == nil {
		return nil, http.StatusUnprocessableEntity, errSchema
	}

	tokens := make([]string, 0, len(*req.Data))
	for _, s := range *req.Data {
		if s == nil {
			return nil, http.StatusUnprocessableEntity, errSchema
		}
		tokens = append(tokens, *s)
	}
	return tokens, http.StatusOK, nil
}

func (a *API) handleClassify(w http.ResponseWriter, r *http.Request) {
	tokens, status, err := decodeTokens(r)
	if err != nil {
		a.logger.Warn(r.Context(), "rejected classify request", "status", status, "error", err)
		switch status {
		case http.StatusUnprocessableEntity:
			if errors.Is(err, errSchema) {
				http.Error(w, `{"error":"data must be an array of strings"}`, status)
			} else {
				http.Error(w, `{"error":"invalid payload"}`, status)
			}
		case http.StatusRequestEntityTooLarge:
			http.Error(w, `{"error":"payload too large"}`, status)
		default:
			http.Error(w, `{"error":"invalid payload"}`, status)
		}
		return
	}

	out := a.svc.Classify(r.Context(), tokens)

	span := trace.SpanFromContext(r.Context())
	span.SetAttributes(
		attribute.String("bfhl.classify.id", out.ID),
		attribute.Bool("bfhl.classify.success", out.Result.Success),
	)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Classification-Id", out.ID)
	_ = json.NewEncoder(w).Encode(a.toResponse(&out.Result))
}

func (a *API) toResponse(res *classify.Result) *response {
	return &response{
		IsSuccess:         res.Success,
		UserID:            a.identity.UserID,
		Email:             a.identity.Email,
		RollNumber:        a.identity.RollNumber,
		OddNumbers:        nonNil(res.OddNumbers),
		EvenNumbers:       nonNil(res.EvenNumbers),
		Alphabets:         nonNil(res.Alphabets),
		SpecialCharacters: nonNil(res.SpecialCharacters),
		Sum:               res.Sum,
		ConcatString:      res.ConcatString,
		Error:             res.Error,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
