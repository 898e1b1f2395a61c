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

	"go.uber.org/zap"
)

type CourierController struct {
	Log            *zap.Logger
	CourierUsecase contracts.CourierUsecase
	InternalConfig *config.InternalConfig
}

var (
	courierControllerInstance *CourierController
	onceCourierController     sync.Once
)

func NewCourierController(logger *zap.Logger, courierUsecase contracts.CourierUsecase, internalConfig *config.InternalConfig) *CourierController {
	onceCourierController.Do(func() {
		instance := &CourierController{
			Log:            logger,
			CourierUsecase: courierUsecase,
			InternalConfig: internalConfig,
		}
		courierControllerInstance = instance
	})
	return courierControllerInstance
}

func (ctrl *CourierController) List(w http.ResponseWriter, r *http.Request) {
	const handler = "CourierController.List"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, handler)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultHandlerTimeout)
	defer cancel()

	result, err := ctrl.CourierUsecase.List(ctx)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, handler, requestID, err)
		return
	}

	pagination := utils.BuildPaginationRequest(r)
	page := utils.Paginate(result, pagination.Page, pagination.PageSize)
	ctrl.Log.Info(handler+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(page)),
	)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ListCouriersSuccessMessage,
		utils.BuildPaginationResponse(len(result), pagination.Page, pagination.PageSize, r.URL.Path), page)
}

func (ctrl *CourierController) Review(w http.ResponseWriter, r *http.Request) {
	const handler = "CourierController.Review"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, handler)
	if !ok {
		return
	}

	courierID, err := utils.ParseIDParam(r, constvars.URLParamCourierID)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, handler, requestID, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultHandlerTimeout)
	defer cancel()

	result, err := ctrl.CourierUsecase.Review(ctx, courierID)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, handler, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, handler, requestID, constvars.StatusOK, constvars.ReviewCourierSuccessMessage, result)
}

func (ctrl *CourierController) Create(w http.ResponseWriter, r *http.Request) {
	const handler = "CourierController.Create"
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

	request := &requests.CreateCourier{
		Matricule:       r.FormValue(constvars.FormFieldMatricule),
		NomAdherent:     r.FormValue(constvars.FormFieldAdherent),
		NomBeneficiaire: r.FormValue(constvars.FormFieldBeneficiary),
		Files:           files,
		Types:           utils.FormValues(r, constvars.FormFieldTypes),
	}
	utils.SanitizeCreateCourierRequest(request)
	if !validate(ctrl.Log, w, handler, requestID, request) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultHandlerTimeout)
	defer cancel()

	result, err := ctrl.CourierUsecase.Create(ctx, request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, handler, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, handler, requestID, constvars.StatusCreated, constvars.CreateCourierSuccessMessage, result)
}

func (ctrl *CourierController) AppendFiles(w http.ResponseWriter, r *http.Request) {
	const handler = "CourierController.AppendFiles"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, handler)
	if !ok {
		return
	}

	courierID, err := utils.ParseIDParam(r, constvars.URLParamCourierID)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, handler, requestID, err)
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

	request := &requests.AppendCourierFiles{
		CourierID: courierID,
		Files:     files,
		Types:     utils.FormValues(r, constvars.FormFieldTypes),
	}
	utils.SanitizeAppendCourierFilesRequest(request)
	if !validate(ctrl.Log, w, handler, requestID, request) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultHandlerTimeout)
	defer cancel()

	result, err := ctrl.CourierUsecase.AppendFiles(ctx, request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, handler, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, handler, requestID, constvars.StatusOK, constvars.AppendCourierFilesSuccessMessage, result)
}
