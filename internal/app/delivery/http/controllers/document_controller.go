package controllers

import (
	"context"
	"medintake-service/internal/app/config"
	"medintake-service/internal/app/contracts"
	"medintake-service/internal/app/models"
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/dto/requests"
	"medintake-service/internal/pkg/exceptions"
	"medintake-service/internal/pkg/utils"
	"net/http"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type DocumentController struct {
	Log             *zap.Logger
	DocumentUsecase contracts.DocumentUsecase
	InternalConfig  *config.InternalConfig
}

var (
	documentControllerInstance *DocumentController
	onceDocumentController     sync.Once
)

func NewDocumentController(logger *zap.Logger, documentUsecase contracts.DocumentUsecase, internalConfig *config.InternalConfig) *DocumentController {
	onceDocumentController.Do(func() {
		instance := &DocumentController{
			Log:             logger,
			DocumentUsecase: documentUsecase,
			InternalConfig:  internalConfig,
		}
		documentControllerInstance = instance
	})
	return documentControllerInstance
}

func (ctrl *DocumentController) Parse(w http.ResponseWriter, r *http.Request) {
	const handler = "DocumentController.Parse"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, handler)
	if !ok {
		return
	}

	if !parseMultipart(ctrl.Log, w, r, handler, requestID, ctrl.InternalConfig.App.RequestBodyLimitInMegabyte) {
		return
	}
	files, cleanup, err := utils.ReadSelectedFiles(r, constvars.FormFieldFile)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, handler, requestID, err)
		return
	}
	defer cleanup()
	if len(files) == 0 {
		respondUsecaseError(ctrl.Log, w, handler, requestID, exceptions.ErrNoFilesSelected(nil))
		return
	}

	documentType := r.FormValue(constvars.FormFieldType)
	if documentType == "" {
		documentType = r.URL.Query().Get(constvars.URLQueryParamType)
	}
	request := &requests.ParseDocument{
		Type: strings.ToLower(strings.TrimSpace(documentType)),
		File: files[0],
	}
	if !validate(ctrl.Log, w, handler, requestID, request) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultHandlerTimeout)
	defer cancel()

	result, err := ctrl.DocumentUsecase.Parse(ctx, request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, handler, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, handler, requestID, constvars.StatusOK, constvars.ParseDocumentSuccessMessage, result)
}

// ListUploaded returns a handler listing the records of kind, paginated
// locally since the backend returns them all at once.
func (ctrl *DocumentController) ListUploaded(kind models.DocumentKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const handler = "DocumentController.ListUploaded"
		requestID, ok := requestIDFrom(ctrl.Log, w, r, handler)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), defaultHandlerTimeout)
		defer cancel()

		result, err := ctrl.DocumentUsecase.ListUploaded(ctx, kind)
		if err != nil {
			respondUsecaseError(ctrl.Log, w, handler, requestID, err)
			return
		}

		pagination := utils.BuildPaginationRequest(r)
		page := utils.Paginate(result, pagination.Page, pagination.PageSize)
		ctrl.Log.Info(handler+" succeeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDocumentKindKey, string(kind)),
			zap.Int(constvars.LoggingCountKey, len(page)),
		)
		utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ListDocumentsSuccessMessage,
			utils.BuildPaginationResponse(len(result), pagination.Page, pagination.PageSize, r.URL.Path), page)
	}
}

func (ctrl *DocumentController) LatestUploaded(kind models.DocumentKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const handler = "DocumentController.LatestUploaded"
		requestID, ok := requestIDFrom(ctrl.Log, w, r, handler)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), defaultHandlerTimeout)
		defer cancel()

		result, err := ctrl.DocumentUsecase.LatestUploaded(ctx, kind)
		if err != nil {
			respondUsecaseError(ctrl.Log, w, handler, requestID, err)
			return
		}
		respondSuccess(ctrl.Log, w, handler, requestID, constvars.StatusOK, constvars.LatestDocumentSuccessMessage, result)
	}
}

func (ctrl *DocumentController) DeleteRecord(kind models.DocumentKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const handler = "DocumentController.DeleteRecord"
		requestID, ok := requestIDFrom(ctrl.Log, w, r, handler)
		if !ok {
			return
		}

		id, err := utils.ParseIDParam(r, constvars.URLParamID)
		if err != nil {
			respondUsecaseError(ctrl.Log, w, handler, requestID, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), defaultHandlerTimeout)
		defer cancel()

		if err := ctrl.DocumentUsecase.DeleteRecord(ctx, kind, id); err != nil {
			respondUsecaseError(ctrl.Log, w, handler, requestID, err)
			return
		}
		respondSuccess(ctrl.Log, w, handler, requestID, constvars.StatusOK, constvars.DeleteDocumentSuccessMessage, nil)
	}
}

func (ctrl *DocumentController) DeleteFile(w http.ResponseWriter, r *http.Request) {
	const handler = "DocumentController.DeleteFile"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, handler)
	if !ok {
		return
	}

	id, err := utils.ParseIDParam(r, constvars.URLParamID)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, handler, requestID, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultHandlerTimeout)
	defer cancel()

	if err := ctrl.DocumentUsecase.DeleteFile(ctx, id); err != nil {
		respondUsecaseError(ctrl.Log, w, handler, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, handler, requestID, constvars.StatusOK, constvars.DeleteDocumentSuccessMessage, nil)
}

func (ctrl *DocumentController) CreatePrescription(w http.ResponseWriter, r *http.Request) {
	const handler = "DocumentController.CreatePrescription"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, handler)
	if !ok {
		return
	}

	payload := map[string]any{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondUsecaseError(ctrl.Log, w, handler, requestID, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultHandlerTimeout)
	defer cancel()

	result, err := ctrl.DocumentUsecase.CreatePrescription(ctx, payload)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, handler, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, handler, requestID, constvars.StatusCreated, constvars.CreatePrescriptionSuccessMsg, result)
}

func (ctrl *DocumentController) FindPrescription(w http.ResponseWriter, r *http.Request) {
	const handler = "DocumentController.FindPrescription"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, handler)
	if !ok {
		return
	}

	id, err := utils.ParseIDParam(r, constvars.URLParamPrescriptionID)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, handler, requestID, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultHandlerTimeout)
	defer cancel()

	result, err := ctrl.DocumentUsecase.FindPrescription(ctx, id)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, handler, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, handler, requestID, constvars.StatusOK, constvars.FindPrescriptionSuccessMessage, result)
}
