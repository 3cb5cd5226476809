package wire

import "github.com/tidwall/gjson"

// ErrorMessage extracts the message of the first error entry from a
// structured error body:
//
//	{"errors": [{"code": "...", "message": "..."}]}
//
// If the body cannot be parsed as expected, or contains no error entries,
// the raw text is returned unchanged so no diagnostic information is lost.
func ErrorMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return string(body)
	}
	msg := gjson.GetBytes(body, "errors.0.message")
	if !msg.Exists() {
		return string(body)
	}
	return msg.String()
}
