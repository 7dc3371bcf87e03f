package controllers

import (
	"context"
	"encoding/json"
	"healthpilot-service/internal/app/contracts"
	"healthpilot-service/internal/pkg/constvars"
	"healthpilot-service/internal/pkg/dto/requests"
	"healthpilot-service/internal/pkg/exceptions"
	"healthpilot-service/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

type ChatController struct {
	Log         *zap.Logger
	ChatService contracts.ChatService
}

var (
	chatControllerInstance *ChatController
	onceChatController     sync.Once
)

func NewChatController(logger *zap.Logger, chatService contracts.ChatService) *ChatController {
	onceChatController.Do(func() {
		instance := &ChatController{
			Log:         logger,
			ChatService: chatService,
		}
		chatControllerInstance = instance
	})
	return chatControllerInstance
}

func (ctrl *ChatController) CreateCompletion(w http.ResponseWriter, r *http.Request) {
	requestID, _, ok := contextScope(ctrl.Log, w, r, "ChatController.CreateCompletion")
	if !ok {
		return
	}

	request := new(requests.ChatCompletion)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("ChatController.CreateCompletion error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("ChatController.CreateCompletion validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	// The upstream call already retries with backoff, so the controller
	// deadline has to cover the worst case.
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	response, err := ctrl.ChatService.CreateCompletion(ctx, request)
	if err != nil {
		ctrl.Log.Error("ChatController.CreateCompletion error from upstream",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ChatCompletionSuccess, response)
}
