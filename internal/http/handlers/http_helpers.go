package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const (
	maxBodyBytes   = 1 << 20 // one megabyte
	maxUploadBytes = 5 << 20
)

var errInvalidID = errors.New("invalid ID")

// parseID reads the {id} path parameter, which must be a positive integer.
func parseID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// readForm returns the submitted fields of a urlencoded, multipart or JSON body
// as strings, so every write path parses its input the same way.
func readForm(w http.ResponseWriter, r *http.Request) (url.Values, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "application/json":
		var body map[string]any
		if err := readJSON(w, r, &body); err != nil {
			return nil, err
		}
		return jsonToValues(body)
	case "multipart/form-data":
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
			return nil, fmt.Errorf("failed to read multipart form: %w", err)
		}
		return r.PostForm, nil
	default:
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("failed to read form: %w", err)
		}
		return r.PostForm, nil
	}
}

func jsonToValues(body map[string]any) (url.Values, error) {
	vals := url.Values{}
	for k, v := range body {
		switch t := v.(type) {
		case nil:
		case string:
			vals.Set(k, t)
		case float64:
			vals.Set(k, strconv.FormatFloat(t, 'f', -1, 64))
		case bool:
			vals.Set(k, strconv.FormatBool(t))
		default:
			return nil, fmt.Errorf("field %q must be a string or a number", k)
		}
	}
	return vals, nil
}

func marshalJSON(data any) ([]byte, error) {
	out, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return out, nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := marshalJSON(data)
	if err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return err
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	return writeRawJSON(w, status, out)
}

func writeRawJSON(w http.ResponseWriter, status int, body []byte) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}
	return nil
}
