package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func UnprocessableEntity(c *gin.Context, code, message string) {
	Write(c, http.StatusUnprocessableEntity, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// Business traduz um BusinessError do core para a resposta HTTP.
// Retorna false quando o erro não é de negócio (aí é 500 do chamador).
func Business(c *gin.Context, err error) bool {
	var be BusinessError
	if !errors.As(err, &be) {
		return false
	}

	switch be.Kind {
	case KindValidation:
		BadRequest(c, be.Code, "Dados inválidos para o agendamento.")
	case KindNotFound:
		NotFound(c, be.Code, "Agendamento não encontrado.")
	case KindInvalidTransition:
		Conflict(c, be.Code, "Agendamento já finalizado.")
	case KindQueueFull:
		UnprocessableEntity(c, be.Code, "Fila de espera lotada.")
	default:
		Internal(c, be.Code, "Erro interno.")
	}
	return true
}
