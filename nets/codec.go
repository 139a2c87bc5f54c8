package nets

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/fxamacker/cbor/v2"
)

const (
	contentTypeJSON = "application/json"
	contentTypeCBOR = "application/cbor"

	maxRequestBody = 1 << 20
)

type RunRequest struct {
	Program string `json:"program" cbor:"program"`
	Input   string `json:"input,omitempty" cbor:"input,omitempty"`
}

type RunResponse struct {
	Output string `json:"output" cbor:"output"`
	Steps  int    `json:"steps" cbor:"steps"`
	Error  string `json:"error,omitempty" cbor:"error,omitempty"`
	Kind   string `json:"kind,omitempty" cbor:"kind,omitempty"`
}

// canonical encoding keeps responses deterministic
var cborEncMode = func() cbor.EncMode {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("nets: cbor enc mode: %v", err))
	}
	return em
}()

type codec struct {
	contentType string
	decode      func(data []byte, v any) error
	encode      func(v any) ([]byte, error)
}

var (
	jsonCodec = codec{
		contentType: contentTypeJSON,
		decode:      json.Unmarshal,
		encode:      json.Marshal,
	}
	cborCodec = codec{
		contentType: contentTypeCBOR,
		decode:      cbor.Unmarshal,
		encode:      cborEncMode.Marshal,
	}
)

// codecFor picks the codec by request content type, JSON unless CBOR is asked for.
func codecFor(r *http.Request) codec {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err == nil && mediaType == contentTypeCBOR {
		return cborCodec
	}
	return jsonCodec
}

func (c codec) readRequest(r *http.Request) (req RunRequest, err error) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody+1))
	if err != nil {
		return req, fmt.Errorf("read body: %w", err)
	}
	if len(data) > maxRequestBody {
		return req, fmt.Errorf("body larger than %d bytes", maxRequestBody)
	}
	if err := c.decode(data, &req); err != nil {
		return req, fmt.Errorf("decode body: %w", err)
	}
	return req, nil
}

func (c codec) writeResponse(w http.ResponseWriter, status int, resp RunResponse) error {
	data, err := c.encode(resp)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", c.contentType)
	w.WriteHeader(status)
	_, err = w.Write(data)
	return err
}
