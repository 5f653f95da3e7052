package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/carlisting-server/internal/apierror"
	"github.com/dtroode/carlisting-server/internal/model"
)

const (
	imagesField    = "images"
	arrayKeySuffix = "[]"
)

// submission is the decoded body of a create or update request.
type submission struct {
	fields map[string][]string
	images []model.ImageUpload
	files  []multipart.File
}

// Close releases the opened file parts.
func (s *submission) Close() error {
	var errs []error
	for _, f := range s.files {
		errs = append(errs, f.Close())
	}
	return errors.Join(errs...)
}

// readSubmission decodes a multipart, urlencoded or JSON body. Array keys
// such as "tags[]" are folded into "tags". Files are accepted only in the
// "images" field.
func readSubmission(c echo.Context) (*submission, error) {
	req := c.Request()
	contentType := req.Header.Get(echo.HeaderContentType)

	switch {
	case strings.HasPrefix(contentType, echo.MIMEMultipartForm):
		form, err := c.MultipartForm()
		if err != nil {
			return nil, apierror.NewErrValidation("malformed multipart body")
		}
		return fromMultipart(form)
	case strings.HasPrefix(contentType, echo.MIMEApplicationForm):
		values, err := c.FormParams()
		if err != nil {
			return nil, apierror.NewErrValidation("malformed form body")
		}
		return &submission{fields: foldArrayKeys(values)}, nil
	case strings.HasPrefix(contentType, echo.MIMEApplicationJSON):
		fields, err := fromJSON(req.Body)
		if err != nil {
			return nil, err
		}
		return &submission{fields: fields}, nil
	case req.ContentLength == 0:
		return &submission{fields: map[string][]string{}}, nil
	default:
		return nil, apierror.New(http.StatusUnsupportedMediaType, "unsupported content type")
	}
}

func fromMultipart(form *multipart.Form) (*submission, error) {
	sub := &submission{fields: foldArrayKeys(form.Value)}

	for field, headers := range form.File {
		if strings.TrimSuffix(field, arrayKeySuffix) != imagesField {
			return nil, apierror.NewErrValidation(fmt.Sprintf("unexpected file field %q", field))
		}
		for _, fh := range headers {
			f, err := fh.Open()
			if err != nil {
				_ = sub.Close()
				return nil, fmt.Errorf("failed to open uploaded file: %w", err)
			}
			sub.files = append(sub.files, f)
			sub.images = append(sub.images, model.ImageUpload{
				Filename:    fh.Filename,
				ContentType: fh.Header.Get(echo.HeaderContentType),
				Size:        fh.Size,
				Reader:      f,
			})
		}
	}

	return sub, nil
}

func foldArrayKeys(values map[string][]string) map[string][]string {
	fields := make(map[string][]string, len(values))
	for key, vals := range values {
		name := strings.TrimSuffix(key, arrayKeySuffix)
		fields[name] = append(fields[name], vals...)
	}
	return fields
}

// fromJSON flattens a JSON object into form-like fields. Strings become a
// single value, arrays of strings keep their elements, null becomes an empty
// list.
func fromJSON(body io.Reader) (map[string][]string, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string][]string{}, nil
		}
		return nil, apierror.NewErrValidation("malformed JSON body")
	}

	fields := make(map[string][]string, len(raw))
	for key, msg := range raw {
		if strings.TrimSpace(string(msg)) == "null" {
			fields[key] = nil
			continue
		}

		var s string
		if err := json.Unmarshal(msg, &s); err == nil {
			fields[key] = []string{s}
			continue
		}

		var list []string
		if err := json.Unmarshal(msg, &list); err == nil {
			fields[key] = list
			continue
		}

		if key == imagesField {
			fields[key] = nil
			continue
		}
		return nil, apierror.NewErrValidation(fmt.Sprintf("%s must be a string or a list of strings", key))
	}

	return fields, nil
}

func firstValue(fields map[string][]string, key string) string {
	if vals := fields[key]; len(vals) > 0 {
		return vals[0]
	}
	return ""
}
