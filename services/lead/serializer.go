package lead

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"studio/models"
)

// Serialize folds the ordered entry sequence into the submission payload.
// A field name seen once stores a scalar; the second occurrence converts the
// slot to an ordered sequence and later ones append, so multi-value
// checkboxes and multi-file inputs keep their submission order. File entries
// with an empty filename mean "no file chosen" and are dropped entirely.
func Serialize(entries []models.Entry) models.Payload {
	data := models.Payload{}
	for _, e := range entries {
		var value any
		if e.File != nil {
			if e.File.Name == "" {
				continue
			}
			value = *e.File
		} else {
			value = e.Text
		}

		existing, seen := data[e.Name]
		if !seen {
			data[e.Name] = value
			continue
		}
		if seq, ok := existing.([]any); ok {
			data[e.Name] = append(seq, value)
		} else {
			data[e.Name] = []any{existing, value}
		}
	}
	return data
}

// RetainedValues extracts the scalar text values of a submission, first
// occurrence per name. On a failed submission these pre-fill the re-rendered
// form so the visitor can retry without re-typing. File selections are never
// retained.
func RetainedValues(entries []models.Entry) map[string]string {
	values := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.File != nil {
			continue
		}
		if _, ok := values[e.Name]; !ok {
			values[e.Name] = e.Text
		}
	}
	return values
}

// EntriesFromRequest extracts the raw entries of a submitted form in browser
// submission order. Multipart bodies are walked part by part; file parts are
// drained to measure their size and reduced to metadata, their content is
// never kept. URL-encoded bodies are parsed pair by pair for the same
// ordering guarantee.
func EntriesFromRequest(r *http.Request) ([]models.Entry, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("parse content type: %w", err)
	}

	if strings.HasPrefix(mediaType, "multipart/") {
		return entriesFromMultipart(r)
	}
	return entriesFromURLEncoded(r)
}

func entriesFromMultipart(r *http.Request) ([]models.Entry, error) {
	reader, err := r.MultipartReader()
	if err != nil {
		return nil, fmt.Errorf("open multipart body: %w", err)
	}

	var entries []models.Entry
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read multipart part: %w", err)
		}

		name := part.FormName()
		if name == "" {
			continue
		}

		_, params, _ := mime.ParseMediaType(part.Header.Get("Content-Disposition"))
		if filename, isFile := params["filename"]; isFile {
			// Drain to measure; Serialize drops the entry when no file was
			// chosen (empty filename).
			size, err := io.Copy(io.Discard, part)
			if err != nil {
				return nil, fmt.Errorf("read file part %q: %w", name, err)
			}
			entries = append(entries, models.Entry{Name: name, File: &models.FileMeta{
				Name: filename,
				Size: size,
				Type: part.Header.Get("Content-Type"),
			}})
			continue
		}

		text, err := io.ReadAll(part)
		if err != nil {
			return nil, fmt.Errorf("read text part %q: %w", name, err)
		}
		entries = append(entries, models.Entry{Name: name, Text: string(text)})
	}
	return entries, nil
}

func entriesFromURLEncoded(r *http.Request) ([]models.Entry, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("read form body: %w", err)
	}

	var entries []models.Entry
	for _, pair := range strings.Split(string(body), "&") {
		if pair == "" {
			continue
		}
		rawName, rawValue, _ := strings.Cut(pair, "=")
		name, err := url.QueryUnescape(rawName)
		if err != nil {
			return nil, fmt.Errorf("unescape field name %q: %w", rawName, err)
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, fmt.Errorf("unescape field %q: %w", name, err)
		}
		entries = append(entries, models.Entry{Name: name, Text: value})
	}
	return entries, nil
}
