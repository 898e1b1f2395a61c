package controllers

import (
	"context"
	"medintake-service/internal/app/config"
	"medintake-service/internal/app/contracts"
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/dto/requests"
	"medintake-service/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UploadController struct {
	Log            *zap.Logger
	UploadUsecase  contracts.UploadUsecase
	InternalConfig *config.InternalConfig
}

var (
	uploadControllerInstance *UploadController
	onceUploadController     sync.Once
)

func NewUploadController(logger *zap.Logger, uploadUsecase contracts.UploadUsecase, internalConfig *config.InternalConfig) *UploadController {
	onceUploadController.Do(func() {
		instance := &UploadController{
			Log:            logger,
			UploadUsecase:  uploadUsecase,
			InternalConfig: internalConfig,
		}
		uploadControllerInstance = instance
	})
	return uploadControllerInstance
}

func (ctrl *UploadController) CreateSession(w http.ResponseWriter, r *http.Request) {
	const handler = "UploadController.CreateSession"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, handler)
	if !ok {
		return
	}

	// An empty body opens a regular session.
	request := new(requests.CreateUploadSession)
	if r.ContentLength != 0 && !decodeAndValidate(ctrl.Log, w, r, handler, requestID, request) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultHandlerTimeout)
	defer cancel()

	result, err := ctrl.UploadUsecase.CreateSession(ctx, request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, handler, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, handler, requestID, constvars.StatusCreated, constvars.CreateUploadSessionSuccessMessage, result)
}

func (ctrl *UploadController) GetSession(w http.ResponseWriter, r *http.Request) {
	const handler = "UploadController.GetSession"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, handler)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultHandlerTimeout)
	defer cancel()

	result, err := ctrl.UploadUsecase.GetSession(ctx, chi.URLParam(r, constvars.URLParamSessionID))
	if err != nil {
		respondUsecaseError(ctrl.Log, w, handler, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, handler, requestID, constvars.StatusOK, constvars.GetUploadSessionSuccessMessage, result)
}

func (ctrl *UploadController) CloseSession(w http.ResponseWriter, r *http.Request) {
	const handler = "UploadController.CloseSession"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, handler)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultHandlerTimeout)
	defer cancel()

	if err := ctrl.UploadUsecase.CloseSession(ctx, chi.URLParam(r, constvars.URLParamSessionID)); err != nil {
		respondUsecaseError(ctrl.Log, w, handler, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, handler, requestID, constvars.StatusOK, constvars.CloseUploadSessionSuccessMessage, nil)
}

func (ctrl *UploadController) ResetSession(w http.ResponseWriter, r *http.Request) {
	const handler = "UploadController.ResetSession"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, handler)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultHandlerTimeout)
	defer cancel()

	result, err := ctrl.UploadUsecase.ResetSession(ctx, chi.URLParam(r, constvars.URLParamSessionID))
	if err != nil {
		respondUsecaseError(ctrl.Log, w, handler, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, handler, requestID, constvars.StatusOK, constvars.ResetUploadSessionSuccessMessage, result)
}

func (ctrl *UploadController) AddFiles(w http.ResponseWriter, r *http.Request) {
	const handler = "UploadController.AddFiles"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, handler)
	if !ok {
		return
	}

	if !parseMultipart(ctrl.Log, w, r, handler, requestID, ctrl.InternalConfig.App.RequestBodyLimitInMegabyte) {
		return
	}
	files, cleanup, err := utils.ReadSelectedFiles(r, constvars.FormFieldFiles)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, handler, requestID, err)
		return
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(r.Context(), defaultHandlerTimeout)
	defer cancel()

	result, err := ctrl.UploadUsecase.AddFiles(ctx, chi.URLParam(r, constvars.URLParamSessionID), files)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, handler, requestID, err)
		return
	}
	ctrl.Log.Info(handler+" selection applied",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(result.Rejected)),
	)
	respondSuccess(ctrl.Log, w, handler, requestID, constvars.StatusOK, constvars.AddUploadFilesSuccessMessage, result)
}

func (ctrl *UploadController) RemoveFile(w http.ResponseWriter, r *http.Request) {
	const handler = "UploadController.RemoveFile"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, handler)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultHandlerTimeout)
	defer cancel()

	result, err := ctrl.UploadUsecase.RemoveFile(ctx, chi.URLParam(r, constvars.URLParamSessionID), chi.URLParam(r, constvars.URLParamFileID))
	if err != nil {
		respondUsecaseError(ctrl.Log, w, handler, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, handler, requestID, constvars.StatusOK, constvars.RemoveUploadFileSuccessMessage, result)
}

// Submit runs the whole parse and save pipeline, so it gets its own deadline.
func (ctrl *UploadController) Submit(w http.ResponseWriter, r *http.Request) {
	const handler = "UploadController.Submit"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, handler)
	if !ok {
		return
	}

	timeout := time.Duration(ctrl.InternalConfig.Intake.SubmitTimeoutInSeconds) * time.Second
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	result, err := ctrl.UploadUsecase.Submit(ctx, chi.URLParam(r, constvars.URLParamSessionID))
	if err != nil {
		respondUsecaseError(ctrl.Log, w, handler, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, handler, requestID, constvars.StatusOK, constvars.SubmitUploadSuccessMessage, result)
}
