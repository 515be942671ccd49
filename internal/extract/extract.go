package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Supported upload mime types.
const (
	MimePDF  = "application/pdf"
	MimeDOC  = "application/msword"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var (
	// ErrUnsupportedFormat is returned for payloads that are not PDF or Word documents.
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrNoReadableText is returned when a document yields too little text to analyze.
	ErrNoReadableText = errors.New("no readable text in document")
)

// MimeFromFileName maps a file extension to one of the supported mime types.
func MimeFromFileName(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return MimePDF
	case ".doc":
		return MimeDOC
	case ".docx":
		return MimeDOCX
	default:
		return ""
	}
}

// Supported reports whether mimeType is an accepted resume format.
func Supported(mimeType string) bool {
	switch cleanMime(mimeType) {
	case MimePDF, MimeDOC, MimeDOCX:
		return true
	default:
		return false
	}
}

// FromBytes extracts raw text from an in-memory document.
func FromBytes(ctx context.Context, data []byte, mimeType string, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", ErrNoReadableText
	}
	switch normalizeMimeType(mimeType, fileName, data) {
	case MimePDF:
		text, err := extractPDF(data)
		if err != nil {
			return "", fmt.Errorf("%w: pdf: %v", ErrUnsupportedFormat, err)
		}
		return text, nil
	case MimeDOCX:
		text, err := extractDOCX(data)
		if err != nil {
			return "", fmt.Errorf("%w: docx: %v", ErrUnsupportedFormat, err)
		}
		return text, nil
	case MimeDOC:
		// Legacy binary .doc is not parsed; many ".doc" uploads are OOXML underneath.
		if !isOOXMLWord(data) {
			return "", fmt.Errorf("%w: binary word document", ErrUnsupportedFormat)
		}
		text, err := extractDOCX(data)
		if err != nil {
			return "", fmt.Errorf("%w: doc: %v", ErrUnsupportedFormat, err)
		}
		return text, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, cleanMime(mimeType))
	}
}

func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer doc.Close()
	return stripDocxXML(doc.Editable().GetContent()), nil
}

// stripDocxXML keeps only run text (w:t), so whitespace between elements
// and field codes such as w:instrText never reach the output.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	inText := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.CharData:
			if inText {
				buf.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "tab":
				buf.WriteString(" ")
			case "p", "br":
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

func cleanMime(mimeType string) string {
	return strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
}

func normalizeMimeType(mimeType string, fileName string, data []byte) string {
	clean := cleanMime(mimeType)
	switch clean {
	case "", "application/octet-stream":
		return MimeFromFileName(fileName)
	case "application/zip":
		if isOOXMLWord(data) {
			return MimeDOCX
		}
		return clean
	default:
		return clean
	}
}

func isOOXMLWord(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return false
	}
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			return true
		}
	}
	return false
}
