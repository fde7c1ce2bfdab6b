package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"todos/shared/constant"
	"todos/shared/failure"
	"todos/shared/logger"
)

type Error struct {
	Detail string `json:"detail" example:"item not found"`
}

type Message struct {
	Message string `json:"message" example:"OK"`
}

// Transaction acknowledges a completed write.
type Transaction struct {
	Status      int    `json:"status" example:"200"`
	Transaction string `json:"transaction" example:"successful"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: message})
}

// WithJSON sends jsonPayload as the whole body, without an envelope
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, jsonPayload)
}

// WithTransaction sends the write acknowledgment
func WithTransaction(writer http.ResponseWriter, code int) {
	response(writer, code, Transaction{Status: code, Transaction: constant.TransactionSuccessful})
}

// WithError sends a response with an error detail. Errors that are not a
// failure.Failure are internal and their text is not exposed.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	detail := constant.ResponseErrorInternal

	var fail *failure.Failure
	if errors.As(err, &fail) {
		detail = fail.Message
	}

	response(writer, code, Error{Detail: detail})
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
