package settings

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// Encode serializes settings to XML indented with tabs. The XML declaration
// is omitted, the same way the .NET updater wrote its template.
func Encode(s *Settings) ([]byte, error) {
	res, err := xml.MarshalIndent(s, "", "\t")
	if err != nil {
		return nil, fmt.Errorf("cannot encode settings: %w", err)
	}
	return res, nil
}

// Decode parses XML settings document. Unknown elements and attributes
// (for example xmlns:xsi written by .NET) are ignored, as well as a UTF-8
// byte order mark.
func Decode(data []byte) (*Settings, error) {
	var res Settings
	data = bytes.TrimPrefix(data, utf8BOM)
	if err := xml.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("cannot decode settings: %w", err)
	}
	return &res, nil
}
