package utils

import (
	"errors"
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/dto/requests"
	"medintake-service/internal/pkg/exceptions"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

func BuildPaginationRequest(r *http.Request) *requests.Pagination {
	pageStr := r.URL.Query().Get("page")
	pageSizeStr := r.URL.Query().Get("page_size")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page <= 0 {
		page = 1
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize <= 0 {
		pageSize = constvars.AppDefaultPageSize
	}

	return &requests.Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

// ParseIDParam reads a positive backend record id from the URL.
func ParseIDParam(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	if raw == "" {
		return 0, exceptions.ErrURLParamValidation(errors.New("parameter is missing from url path"), param)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = errors.New("id must be positive")
		}
		return 0, exceptions.ErrURLParamValidation(err, param)
	}
	return id, nil
}

// ParseIndexParam reads a zero based index from the URL.
func ParseIndexParam(r *http.Request, param string) (int, error) {
	raw := chi.URLParam(r, param)
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, exceptions.ErrURLParamValidation(err, param)
	}
	return index, nil
}

// ReadSelectedFiles opens every file of a parsed multipart form field. The
// returned cleanup closes them and removes temporary form files.
func ReadSelectedFiles(r *http.Request, field string) ([]requests.SelectedFile, func(), error) {
	cleanup := func() {}
	if r.MultipartForm == nil {
		return nil, cleanup, exceptions.ErrCannotParseMultipartForm(errors.New("multipart form not parsed"))
	}

	headers := r.MultipartForm.File[field]
	opened := make([]multipart.File, 0, len(headers))
	cleanup = func() {
		for _, file := range opened {
			file.Close()
		}
		r.MultipartForm.RemoveAll()
	}

	selected := make([]requests.SelectedFile, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			cleanup()
			return nil, func() {}, exceptions.ErrCannotParseMultipartForm(err)
		}
		opened = append(opened, file)
		selected = append(selected, requests.SelectedFile{
			Name:        header.Filename,
			ContentType: detectContentType(header),
			Size:        header.Size,
			Content:     file,
		})
	}
	return selected, cleanup, nil
}

// FormValues returns every value posted for field, including repeated keys.
func FormValues(r *http.Request, field string) []string {
	if r.MultipartForm != nil {
		if values, ok := r.MultipartForm.Value[field]; ok {
			return values
		}
	}
	return r.Form[field]
}

func detectContentType(header *multipart.FileHeader) string {
	contentType := header.Header.Get(constvars.HeaderContentType)
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil && mediaType != constvars.MIMEOctetStream {
		return mediaType
	}
	if byExtension := mime.TypeByExtension(strings.ToLower(filepath.Ext(header.Filename))); byExtension != "" {
		mediaType, _, _ := mime.ParseMediaType(byExtension)
		return mediaType
	}
	return constvars.MIMEOctetStream
}
