package controllers

import (
	"context"
	"medintake-service/internal/app/contracts"
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/dto/requests"
	"medintake-service/internal/pkg/dto/responses"
	"medintake-service/internal/pkg/utils"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PrescriptionEditorController struct {
	Log                       *zap.Logger
	PrescriptionEditorUsecase contracts.PrescriptionEditorUsecase
}

var (
	prescriptionEditorControllerInstance *PrescriptionEditorController
	oncePrescriptionEditorController     sync.Once
)

func NewPrescriptionEditorController(logger *zap.Logger, prescriptionEditorUsecase contracts.PrescriptionEditorUsecase) *PrescriptionEditorController {
	oncePrescriptionEditorController.Do(func() {
		instance := &PrescriptionEditorController{
			Log:                       logger,
			PrescriptionEditorUsecase: prescriptionEditorUsecase,
		}
		prescriptionEditorControllerInstance = instance
	})
	return prescriptionEditorControllerInstance
}

type prescriptionEditorAction func(ctx context.Context, editorID string) (*responses.PrescriptionEditor, error)

func (ctrl *PrescriptionEditorController) run(w http.ResponseWriter, r *http.Request, handler string, request any, message string, action prescriptionEditorAction) {
	requestID, ok := requestIDFrom(ctrl.Log, w, r, handler)
	if !ok {
		return
	}
	if request != nil && !decodeAndValidate(ctrl.Log, w, r, handler, requestID, request) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultHandlerTimeout)
	defer cancel()

	result, err := action(ctx, chi.URLParam(r, constvars.URLParamEditorID))
	if err != nil {
		respondUsecaseError(ctrl.Log, w, handler, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, handler, requestID, constvars.StatusOK, message, result)
}

func (ctrl *PrescriptionEditorController) Open(w http.ResponseWriter, r *http.Request) {
	const handler = "PrescriptionEditorController.Open"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, handler)
	if !ok {
		return
	}

	request := new(requests.OpenEditor)
	if !decodeAndValidate(ctrl.Log, w, r, handler, requestID, request) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultHandlerTimeout)
	defer cancel()

	result, err := ctrl.PrescriptionEditorUsecase.Open(ctx, request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, handler, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, handler, requestID, constvars.StatusCreated, constvars.OpenEditorSuccessMessage, result)
}

func (ctrl *PrescriptionEditorController) Get(w http.ResponseWriter, r *http.Request) {
	ctrl.run(w, r, "PrescriptionEditorController.Get", nil, constvars.GetEditorSuccessMessage, ctrl.PrescriptionEditorUsecase.Get)
}

func (ctrl *PrescriptionEditorController) EnterEditMode(w http.ResponseWriter, r *http.Request) {
	ctrl.run(w, r, "PrescriptionEditorController.EnterEditMode", nil, constvars.EnterEditModeSuccessMessage, ctrl.PrescriptionEditorUsecase.EnterEditMode)
}

func (ctrl *PrescriptionEditorController) Save(w http.ResponseWriter, r *http.Request) {
	ctrl.run(w, r, "PrescriptionEditorController.Save", nil, constvars.SaveEditorSuccessMessage, ctrl.PrescriptionEditorUsecase.Save)
}

func (ctrl *PrescriptionEditorController) UpdateFields(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdatePrescriptionFields)
	ctrl.run(w, r, "PrescriptionEditorController.UpdateFields", request, constvars.UpdateEditorSuccessMessage, func(ctx context.Context, editorID string) (*responses.PrescriptionEditor, error) {
		return ctrl.PrescriptionEditorUsecase.UpdateFields(ctx, editorID, request)
	})
}

func (ctrl *PrescriptionEditorController) AddItem(w http.ResponseWriter, r *http.Request) {
	request := new(requests.PrescriptionItem)
	ctrl.run(w, r, "PrescriptionEditorController.AddItem", request, constvars.UpdateEditorSuccessMessage, func(ctx context.Context, editorID string) (*responses.PrescriptionEditor, error) {
		return ctrl.PrescriptionEditorUsecase.AddItem(ctx, editorID, request)
	})
}

func (ctrl *PrescriptionEditorController) UpdateItem(w http.ResponseWriter, r *http.Request) {
	const handler = "PrescriptionEditorController.UpdateItem"
	index, ok := ctrl.itemIndex(w, r, handler)
	if !ok {
		return
	}
	request := &requests.PrescriptionItem{Index: index}
	ctrl.run(w, r, handler, request, constvars.UpdateEditorSuccessMessage, func(ctx context.Context, editorID string) (*responses.PrescriptionEditor, error) {
		return ctrl.PrescriptionEditorUsecase.UpdateItem(ctx, editorID, request)
	})
}

func (ctrl *PrescriptionEditorController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	const handler = "PrescriptionEditorController.RemoveItem"
	index, ok := ctrl.itemIndex(w, r, handler)
	if !ok {
		return
	}
	ctrl.run(w, r, handler, nil, constvars.UpdateEditorSuccessMessage, func(ctx context.Context, editorID string) (*responses.PrescriptionEditor, error) {
		return ctrl.PrescriptionEditorUsecase.RemoveItem(ctx, editorID, index)
	})
}

func (ctrl *PrescriptionEditorController) Export(w http.ResponseWriter, r *http.Request) {
	const handler = "PrescriptionEditorController.Export"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, handler)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultHandlerTimeout)
	defer cancel()

	workbook, err := ctrl.PrescriptionEditorUsecase.Export(ctx, chi.URLParam(r, constvars.URLParamEditorID))
	if err != nil {
		respondUsecaseError(ctrl.Log, w, handler, requestID, err)
		return
	}
	ctrl.Log.Info(handler+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFileNameKey, workbook.FileName),
	)
	utils.BuildFileResponse(w, constvars.MIMEApplicationXLSX, workbook.FileName, workbook.Content)
}

func (ctrl *PrescriptionEditorController) itemIndex(w http.ResponseWriter, r *http.Request, handler string) (int, bool) {
	index, err := utils.ParseIndexParam(r, constvars.URLParamIndex)
	if err != nil {
		ctrl.Log.Error(handler+" invalid index",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return 0, false
	}
	return index, true
}
