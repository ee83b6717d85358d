// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fragment

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/fm-portal/models"
	"golang.org/x/net/html"
)

// PendingMarker is the literal the service embeds while a job is still
// loading.
const PendingMarker = "<!-- templateLoading -->"

const (
	envelopeTag = "ajax-response"
	responseTag = "response"
	scriptTag   = "script"
)

// Decoder turns reply bodies into typed responses.
type Decoder struct {
	marker string
}

// NewDecoder returns a Decoder detecting the given pending marker. An empty
// marker selects [PendingMarker].
func NewDecoder(marker string) *Decoder {
	if marker == "" {
		marker = PendingMarker
	}
	return &Decoder{marker: marker}
}

// Decode decodes body with the default pending marker.
func Decode(body []byte) (models.Response, error) {
	return NewDecoder("").Decode(body)
}

// Decode strips the envelope and script blocks from body and reports the
// pending state and requested side effects.
func (d *Decoder) Decode(body []byte) (models.Response, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return models.Response{}, ErrEmptyResponse
	}

	resp := models.Response{
		Pending: bytes.Contains(body, []byte(d.marker)),
	}

	var (
		markup   strings.Builder
		script   strings.Builder
		inScript bool
	)

	z := html.NewTokenizer(bytes.NewReader(body))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if errors.Is(z.Err(), io.EOF) {
				break
			}
			return models.Response{}, fmt.Errorf("%w: %v", ErrMalformedResponse, z.Err())
		}

		raw := string(z.Raw())

		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			switch string(name) {
			case envelopeTag:
				continue
			case responseTag:
				if hasAttr {
					resp.Region = attr(z, "id")
				}
				continue
			case scriptTag:
				if tt == html.StartTagToken {
					inScript = true
					script.Reset()
				}
				continue
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case envelopeTag, responseTag:
				continue
			case scriptTag:
				if inScript {
					resp.Effects = append(resp.Effects, classify(script.String())...)
					inScript = false
				}
				continue
			}
		case html.TextToken:
			if inScript {
				script.WriteString(raw)
				continue
			}
		}

		markup.WriteString(raw)
	}

	// an unterminated script block still counts
	if inScript {
		resp.Effects = append(resp.Effects, classify(script.String())...)
	}

	resp.HTML = strings.TrimSpace(markup.String())

	return resp, nil
}

// attr reads the named attribute of the current tag. It consumes the
// tokenizer's attribute cursor.
func attr(z *html.Tokenizer, name string) string {
	for {
		key, val, more := z.TagAttr()
		if string(key) == name {
			return string(val)
		}
		if !more {
			return ""
		}
	}
}
