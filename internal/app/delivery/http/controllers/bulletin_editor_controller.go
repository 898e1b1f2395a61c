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

type BulletinEditorController struct {
	Log                   *zap.Logger
	BulletinEditorUsecase contracts.BulletinEditorUsecase
}

var (
	bulletinEditorControllerInstance *BulletinEditorController
	onceBulletinEditorController     sync.Once
)

func NewBulletinEditorController(logger *zap.Logger, bulletinEditorUsecase contracts.BulletinEditorUsecase) *BulletinEditorController {
	onceBulletinEditorController.Do(func() {
		instance := &BulletinEditorController{
			Log:                   logger,
			BulletinEditorUsecase: bulletinEditorUsecase,
		}
		bulletinEditorControllerInstance = instance
	})
	return bulletinEditorControllerInstance
}

type bulletinEditorAction func(ctx context.Context, editorID string) (*responses.BulletinEditor, error)

// runEditorAction covers the handlers that only carry the editor id.
func (ctrl *BulletinEditorController) runEditorAction(w http.ResponseWriter, r *http.Request, handler string, code int, message string, action bulletinEditorAction) {
	requestID, ok := requestIDFrom(ctrl.Log, w, r, handler)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultHandlerTimeout)
	defer cancel()

	result, err := action(ctx, chi.URLParam(r, constvars.URLParamEditorID))
	if err != nil {
		respondUsecaseError(ctrl.Log, w, handler, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, handler, requestID, code, message, result)
}

func (ctrl *BulletinEditorController) Open(w http.ResponseWriter, r *http.Request) {
	const handler = "BulletinEditorController.Open"
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

	result, err := ctrl.BulletinEditorUsecase.Open(ctx, request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, handler, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, handler, requestID, constvars.StatusCreated, constvars.OpenEditorSuccessMessage, result)
}

func (ctrl *BulletinEditorController) Get(w http.ResponseWriter, r *http.Request) {
	ctrl.runEditorAction(w, r, "BulletinEditorController.Get", constvars.StatusOK, constvars.GetEditorSuccessMessage, ctrl.BulletinEditorUsecase.Get)
}

func (ctrl *BulletinEditorController) EnterEditMode(w http.ResponseWriter, r *http.Request) {
	ctrl.runEditorAction(w, r, "BulletinEditorController.EnterEditMode", constvars.StatusOK, constvars.EnterEditModeSuccessMessage, ctrl.BulletinEditorUsecase.EnterEditMode)
}

func (ctrl *BulletinEditorController) Save(w http.ResponseWriter, r *http.Request) {
	ctrl.runEditorAction(w, r, "BulletinEditorController.Save", constvars.StatusOK, constvars.SaveEditorSuccessMessage, ctrl.BulletinEditorUsecase.Save)
}

func (ctrl *BulletinEditorController) Submit(w http.ResponseWriter, r *http.Request) {
	ctrl.runEditorAction(w, r, "BulletinEditorController.Submit", constvars.StatusOK, constvars.SubmitEditorSuccessMessage, ctrl.BulletinEditorUsecase.Submit)
}

func (ctrl *BulletinEditorController) UpdateFields(w http.ResponseWriter, r *http.Request) {
	const handler = "BulletinEditorController.UpdateFields"
	request := new(requests.UpdateBulletinFields)
	ctrl.runDecodedAction(w, r, handler, request, func(ctx context.Context, editorID string) (*responses.BulletinEditor, error) {
		return ctrl.BulletinEditorUsecase.UpdateFields(ctx, editorID, request)
	})
}

func (ctrl *BulletinEditorController) SetPatientRelation(w http.ResponseWriter, r *http.Request) {
	const handler = "BulletinEditorController.SetPatientRelation"
	request := new(requests.SetPatientRelation)
	ctrl.runDecodedAction(w, r, handler, request, func(ctx context.Context, editorID string) (*responses.BulletinEditor, error) {
		return ctrl.BulletinEditorUsecase.SetPatientRelation(ctx, editorID, request)
	})
}

func (ctrl *BulletinEditorController) SetInsuranceScheme(w http.ResponseWriter, r *http.Request) {
	const handler = "BulletinEditorController.SetInsuranceScheme"
	request := new(requests.SetInsuranceScheme)
	ctrl.runDecodedAction(w, r, handler, request, func(ctx context.Context, editorID string) (*responses.BulletinEditor, error) {
		return ctrl.BulletinEditorUsecase.SetInsuranceScheme(ctx, editorID, request)
	})
}

func (ctrl *BulletinEditorController) SetIdentifierBox(w http.ResponseWriter, r *http.Request) {
	const handler = "BulletinEditorController.SetIdentifierBox"
	index, err := utils.ParseIndexParam(r, constvars.URLParamIndex)
	if err != nil {
		ctrl.Log.Error(handler+" invalid index",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request := &requests.SetIdentifierBox{Index: index}
	ctrl.runDecodedAction(w, r, handler, request, func(ctx context.Context, editorID string) (*responses.BulletinEditor, error) {
		return ctrl.BulletinEditorUsecase.SetIdentifierBox(ctx, editorID, request)
	})
}

func (ctrl *BulletinEditorController) ReplaceSection(w http.ResponseWriter, r *http.Request) {
	const handler = "BulletinEditorController.ReplaceSection"
	request := &requests.ReplaceSection{Section: chi.URLParam(r, constvars.URLParamSection)}
	ctrl.runDecodedAction(w, r, handler, request, func(ctx context.Context, editorID string) (*responses.BulletinEditor, error) {
		return ctrl.BulletinEditorUsecase.ReplaceSection(ctx, editorID, request)
	})
}

func (ctrl *BulletinEditorController) Export(w http.ResponseWriter, r *http.Request) {
	const handler = "BulletinEditorController.Export"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, handler)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultHandlerTimeout)
	defer cancel()

	workbook, err := ctrl.BulletinEditorUsecase.Export(ctx, chi.URLParam(r, constvars.URLParamEditorID))
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

// runDecodedAction decodes the JSON body into request (whose URL-bound fields
// are already set) before running action.
func (ctrl *BulletinEditorController) runDecodedAction(w http.ResponseWriter, r *http.Request, handler string, request any, action bulletinEditorAction) {
	requestID, ok := requestIDFrom(ctrl.Log, w, r, handler)
	if !ok {
		return
	}
	if !decodeAndValidate(ctrl.Log, w, r, handler, requestID, request) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultHandlerTimeout)
	defer cancel()

	result, err := action(ctx, chi.URLParam(r, constvars.URLParamEditorID))
	if err != nil {
		respondUsecaseError(ctrl.Log, w, handler, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, handler, requestID, constvars.StatusOK, constvars.UpdateEditorSuccessMessage, result)
}
