package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
)

// MaxBodyBytes bounds request bodies read by DecodeBody and the token extractors.
const MaxBodyBytes = 1 << 20

// Status is the envelope every response carries.
type Status struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// ErrUnsupportedMediaType is returned by DecodeBody for bodies that are
// neither JSON nor url-encoded.
var ErrUnsupportedMediaType = errors.New("httpx: unsupported content type")

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type header and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteStatus writes a bare {status, message} envelope. Any 2xx code is
// reported as status true.
func WriteStatus(w http.ResponseWriter, code int, message string) {
	WriteJSON(w, code, Status{Status: code >= 200 && code < 300, Message: message})
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// This is commonly required for sensitive responses like tokens.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// IsFormEncoded reports whether the request body is url-encoded.
func IsFormEncoded(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "application/x-www-form-urlencoded"
}

// DecodeBody decodes a JSON or url-encoded body into dst. Form values are
// mapped onto dst's JSON field names, so one struct serves both encodings.
// An empty body leaves dst untouched.
func DecodeBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}

	if IsFormEncoded(r) {
		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("httpx: parse form: %w", err)
		}
		return decodeValues(r.PostForm, dst)
	}

	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mt != "" && mt != "application/json" {
		return ErrUnsupportedMediaType
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("httpx: decode json: %w", err)
	}
	return nil
}

func decodeValues(values url.Values, dst any) error {
	flat := make(map[string]string, len(values))
	for k := range values {
		flat[k] = values.Get(k)
	}
	b, err := json.Marshal(flat)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("httpx: decode form: %w", err)
	}
	return nil
}
