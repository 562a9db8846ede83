// Package mimeutil maps file extensions to MIME types for embedded media.
package mimeutil

import (
	"path"
	"strings"
)

// audioTypes maps lowercase audio file extensions (without dot) to MIME
// types. Extensions outside this table get ordinary link handling.
var audioTypes = map[string]string{
	"mp3":  "audio/mpeg",
	"wav":  "audio/wav",
	"ogg":  "audio/ogg",
	"oga":  "audio/ogg",
	"flac": "audio/flac",
	"m4a":  "audio/mp4",
	"aac":  "audio/aac",
	"opus": "audio/opus",
	"weba": "audio/webm",
}

// Ext returns the extension of the URL or path without the leading dot.
func Ext(target string) string {
	return strings.TrimPrefix(path.Ext(target), ".")
}

// AudioType returns the MIME type for a recognized audio extension.
// The lookup is case-insensitive.
func AudioType(ext string) (string, bool) {
	mime, ok := audioTypes[strings.ToLower(ext)]
	return mime, ok
}

// imageTypes maps lowercase image extensions to MIME types where the
// extension and the registered subtype differ.
var imageTypes = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"svg":  "image/svg+xml",
	"tif":  "image/tiff",
	"tiff": "image/tiff",
}

// ImageType derives an image MIME type from an extension, defaulting to
// image/png when the extension is absent. The lookup is case-insensitive.
func ImageType(ext string) string {
	if ext == "" {
		return "image/png"
	}
	ext = strings.ToLower(ext)
	if mime, ok := imageTypes[ext]; ok {
		return mime
	}
	return "image/" + ext
}
