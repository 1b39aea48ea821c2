package traybridge

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/sirupsen/logrus"
)

// decodeIcon validates stored icon bytes before they are handed to the
// toolkit. Undecodable data degrades to no icon (nil); that is a feature
// degradation, never an error surfaced to the caller.
//
// Formats the standard decoders cannot verify (ico, icns, svg) are passed
// through untouched: the platform toolkit renders those itself.
func decodeIcon(data []byte, format string) []byte {
	if len(data) == 0 {
		return nil
	}

	switch strings.ToLower(format) {
	case "ico", "icns", "svg":
		return data
	}

	if _, _, err := image.Decode(bytes.NewReader(data)); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "decodeIcon",
			"format":   format,
			"size":     len(data),
			"error":    err.Error(),
		}).Warn("Icon data could not be decoded, continuing without an icon")
		return nil
	}
	return data
}
