package controllers

import (
	"context"
	"medintake-service/internal/app/contracts"
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/dto/requests"
	"medintake-service/internal/pkg/utils"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

type UserController struct {
	Log         *zap.Logger
	UserUsecase contracts.UserUsecase
}

var (
	userControllerInstance *UserController
	onceUserController     sync.Once
)

func NewUserController(logger *zap.Logger, userUsecase contracts.UserUsecase) *UserController {
	onceUserController.Do(func() {
		instance := &UserController{
			Log:         logger,
			UserUsecase: userUsecase,
		}
		userControllerInstance = instance
	})
	return userControllerInstance
}

func (ctrl *UserController) List(w http.ResponseWriter, r *http.Request) {
	const handler = "UserController.List"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, handler)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultHandlerTimeout)
	defer cancel()

	result, err := ctrl.UserUsecase.List(ctx)
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
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ListUsersSuccessMessage,
		utils.BuildPaginationResponse(len(result), pagination.Page, pagination.PageSize, r.URL.Path), page)
}

func (ctrl *UserController) Create(w http.ResponseWriter, r *http.Request) {
	const handler = "UserController.Create"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, handler)
	if !ok {
		return
	}

	request := new(requests.CreateUser)
	if !decodeJSON(ctrl.Log, w, r, handler, requestID, request) {
		return
	}
	utils.SanitizeCreateUserRequest(request)
	if !validate(ctrl.Log, w, handler, requestID, request) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultHandlerTimeout)
	defer cancel()

	result, err := ctrl.UserUsecase.Create(ctx, request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, handler, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, handler, requestID, constvars.StatusCreated, constvars.CreateUserSuccessMessage, result)
}

func (ctrl *UserController) Update(w http.ResponseWriter, r *http.Request) {
	const handler = "UserController.Update"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, handler)
	if !ok {
		return
	}

	id, err := utils.ParseIDParam(r, constvars.URLParamUserID)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, handler, requestID, err)
		return
	}

	request := new(requests.UpdateUser)
	if !decodeJSON(ctrl.Log, w, r, handler, requestID, request) {
		return
	}
	utils.SanitizeUpdateUserRequest(request)
	if !validate(ctrl.Log, w, handler, requestID, request) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultHandlerTimeout)
	defer cancel()

	result, err := ctrl.UserUsecase.Update(ctx, id, request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, handler, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, handler, requestID, constvars.StatusOK, constvars.UpdateUserSuccessMessage, result)
}

func (ctrl *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	const handler = "UserController.Delete"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, handler)
	if !ok {
		return
	}

	id, err := utils.ParseIDParam(r, constvars.URLParamUserID)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, handler, requestID, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultHandlerTimeout)
	defer cancel()

	if err := ctrl.UserUsecase.Delete(ctx, id); err != nil {
		respondUsecaseError(ctrl.Log, w, handler, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, handler, requestID, constvars.StatusOK, constvars.DeleteUserSuccessMessage, nil)
}
