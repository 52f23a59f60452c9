package base64

import "strings"

const payloadSeparator = ";base64,"

// GetContentType extracts the MIME type from a data-URI payload, e.g.
// "image/png" from "data:image/png;base64,....". Returns an empty string when
// the payload is not a data URI.
func GetContentType(file string) string {
	start := len("data:")
	end := strings.Index(file, payloadSeparator)

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}

// DecodedSize returns the decoded byte length of the base64 portion of a
// data-URI payload. Padding characters are discounted so the result matches
// what base64.StdEncoding.Decode would produce.
func DecodedSize(file string) int {
	idx := strings.Index(file, payloadSeparator)
	if idx == -1 {
		return 0
	}

	data := file[idx+len(payloadSeparator):]
	padding := strings.Count(data[max(0, len(data)-2):], "=")

	return len(data)/4*3 - padding
}
