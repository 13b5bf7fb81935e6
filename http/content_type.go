package http

import (
	"errors"
	"fmt"
)

var ErrUnknownContentType = errors.New("http: unknown content type")

// ContentType tags the body of a Response. The MIME mapping is fixed.
type ContentType uint8

const (
	ContentTypeHTML ContentType = iota
	ContentTypeJSON
	ContentTypeText
	// ContentTypePlain is reserved for Not Found responses.
	ContentTypePlain
)

var mimeTypes = [...]string{
	ContentTypeHTML:  "text/html",
	ContentTypeJSON:  "application/json",
	ContentTypeText:  "text/plain",
	ContentTypePlain: "text/plain",
}

var contentTypeNames = [...]string{
	ContentTypeHTML:  "html",
	ContentTypeJSON:  "json",
	ContentTypeText:  "text",
	ContentTypePlain: "plain",
}

// ParseContentType maps a command-line tag onto a ContentType. Only html,
// json and text are selectable.
func ParseContentType(tag string) (ContentType, error) {
	switch tag {
	case "html":
		return ContentTypeHTML, nil
	case "json":
		return ContentTypeJSON, nil
	case "text":
		return ContentTypeText, nil
	}
	return 0, fmt.Errorf("%w '%s'", ErrUnknownContentType, tag)
}

func (ct ContentType) MIME() string {
	if int(ct) < len(mimeTypes) {
		return mimeTypes[ct]
	}
	return mimeTypes[ContentTypePlain]
}

func (ct ContentType) String() string {
	if int(ct) < len(contentTypeNames) {
		return contentTypeNames[ct]
	}
	return "ContentType(" + fmt.Sprint(uint8(ct)) + ")"
}
