package services

import "bytes"

// DocumentFormat is the closed set of document formats the pipeline handles.
// Format determination happens here once; everything downstream dispatches on
// the tag instead of re-inspecting MIME strings.
type DocumentFormat int

const (
	FormatUnknown DocumentFormat = iota
	FormatPDF
	FormatDOC
	FormatDOCX
)

func (f DocumentFormat) String() string {
	switch f {
	case FormatPDF:
		return "pdf"
	case FormatDOC:
		return "doc"
	case FormatDOCX:
		return "docx"
	default:
		return "unknown"
	}
}

const (
	MimePDF  = "application/pdf"
	MimeDOC  = "application/msword"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var (
	magicPDF  = []byte{0x25, 0x50, 0x44, 0x46} // "%PDF"
	magicOLE2 = []byte{0xD0, 0xCF, 0x11, 0xE0} // legacy .doc compound file
	magicZIP  = []byte{0x50, 0x4B, 0x03, 0x04} // .docx is a zip container
)

// DetectFormat classifies a binary blob by its first four bytes. Blobs fetched
// back from storage have lost their original filename, so the magic number is
// the only thing we can trust. Never fails: ambiguous input is FormatUnknown.
func DetectFormat(data []byte) DocumentFormat {
	if len(data) < 4 {
		return FormatUnknown
	}

	switch {
	case bytes.HasPrefix(data, magicPDF):
		return FormatPDF
	case bytes.HasPrefix(data, magicOLE2):
		return FormatDOC
	case bytes.HasPrefix(data, magicZIP):
		return FormatDOCX
	default:
		return FormatUnknown
	}
}

// FormatFromContentType maps a declared MIME type to a document format. Used
// for fresh uploads, where the client's declaration is trusted.
func FormatFromContentType(contentType string) DocumentFormat {
	switch contentType {
	case MimePDF:
		return FormatPDF
	case MimeDOC:
		return FormatDOC
	case MimeDOCX:
		return FormatDOCX
	default:
		return FormatUnknown
	}
}

// ContentType returns the canonical MIME type for the format, or an empty
// string for FormatUnknown.
func (f DocumentFormat) ContentType() string {
	switch f {
	case FormatPDF:
		return MimePDF
	case FormatDOC:
		return MimeDOC
	case FormatDOCX:
		return MimeDOCX
	default:
		return ""
	}
}
