// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package http

import "strconv"

const (
	StatusOK       uint16 = 200 // RFC 7231, 6.3.1
	StatusNotFound uint16 = 404 // RFC 7231, 6.5.4
)

var (
	unknownStatusCode = "Unknown Status Code"

	statusMessages = map[uint16]string{
		StatusOK:       "OK",
		StatusNotFound: "Not Found",
	}
)

// StatusText returns the reason phrase for code, or "Unknown Status Code".
func StatusText(code uint16) string {
	if msg, ok := statusMessages[code]; ok {
		return msg
	}
	return unknownStatusCode
}

// statusLine renders "<code> <reason>", e.g. "404 Not Found".
func statusLine(code uint16) string {
	return strconv.FormatUint(uint64(code), 10) + " " + StatusText(code)
}
