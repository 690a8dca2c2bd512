package v1

import (
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skiselkov/crypto-test/internal/domain/crypto"
)

// CipherHandler defines the interface for one-shot cipher requests
type CipherHandler interface {
	Process(ctx *gin.Context)
}

type cipherHandler struct {
	sessions crypto.SessionFactory
}

// NewCipherHandler creates a new CipherHandler
func NewCipherHandler(sessions crypto.SessionFactory) CipherHandler {
	return &cipherHandler{
		sessions: sessions,
	}
}

// Process handles the POST request to run data through one cipher session
// @Summary Encrypt or decrypt with one AES session
// @Description Initialize a session, feed the data in one update and return the concatenated update and final output.
// @Tags Cipher
// @Accept json
// @Produce json
// @Param requestBody body CipherRequest true "Cipher request"
// @Success 200 {object} CipherResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /cipher [post]
func (handler *cipherHandler) Process(ctx *gin.Context) {
	var request CipherRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid cipher request: %v", err)})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	op, err := request.Decode()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	sess, err := handler.sessions.NewSession(op.Mechanism, op.Direction, op.Key, op.Params)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("init problem: %v", err)})
		return
	}

	out, err := sess.Update(op.Data)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("update problem: %v", err)})
		return
	}

	rest, err := sess.Final()
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, crypto.ErrAuthenticationFailure) {
			status = http.StatusUnprocessableEntity
		}
		ctx.JSON(status, ErrorResponse{Message: fmt.Sprintf("final problem: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, CipherResponse{Output: hex.EncodeToString(append(out, rest...))})
}
