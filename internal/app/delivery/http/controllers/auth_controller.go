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

type AuthController struct {
	Log         *zap.Logger
	AuthUsecase contracts.AuthUsecase
}

var (
	authControllerInstance *AuthController
	onceAuthController     sync.Once
)

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase) *AuthController {
	onceAuthController.Do(func() {
		instance := &AuthController{
			Log:         logger,
			AuthUsecase: authUsecase,
		}
		authControllerInstance = instance
	})
	return authControllerInstance
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	const handler = "AuthController.Login"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, handler)
	if !ok {
		return
	}

	request := new(requests.Login)
	if !decodeJSON(ctrl.Log, w, r, handler, requestID, request) {
		return
	}
	utils.SanitizeLoginRequest(request)
	if !validate(ctrl.Log, w, handler, requestID, request) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultHandlerTimeout)
	defer cancel()

	result, err := ctrl.AuthUsecase.Login(ctx, request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, handler, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, handler, requestID, constvars.StatusOK, constvars.LoginSuccessMessage, result)
}

func (ctrl *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	const handler = "AuthController.Me"
	requestID, ok := requestIDFrom(ctrl.Log, w, r, handler)
	if !ok {
		return
	}

	result, err := ctrl.AuthUsecase.Me(r.Context())
	if err != nil {
		respondUsecaseError(ctrl.Log, w, handler, requestID, err)
		return
	}
	respondSuccess(ctrl.Log, w, handler, requestID, constvars.StatusOK, constvars.MeSuccessMessage, result)
}
