package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skiselkov/crypto-test/internal/domain/crypto"
	"github.com/skiselkov/crypto-test/internal/domain/kat"
)

// KATHandler defines the interface for handling known-answer suite runs
type KATHandler interface {
	Run(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
}

type katHandler struct {
	katService kat.Service
}

// NewKATHandler creates a new KATHandler
func NewKATHandler(katService kat.Service) KATHandler {
	return &katHandler{
		katService: katService,
	}
}

// Run handles the POST request to execute the known-answer suite
// @Summary Run the known-answer suite
// @Description Run every vector, or those of one mechanism, in both directions and store the outcome.
// @Tags KAT
// @Accept json
// @Produce json
// @Param requestBody body RunKATRequest false "Mechanism filter"
// @Success 201 {object} KATRunResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /kat/runs [post]
func (handler *katHandler) Run(ctx *gin.Context) {
	var request RunKATRequest

	if ctx.Request.Body != nil && ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid run request: %v", err)})
			return
		}
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	var mech crypto.Mechanism
	if request.Mechanism != "" {
		m, err := crypto.ParseMechanism(request.Mechanism)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
			return
		}
		mech = m
	}

	run, err := handler.katService.Run(ctx, mech)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: fmt.Sprintf("kat run failed: %v", err)})
		return
	}

	ctx.JSON(http.StatusCreated, NewKATRunResponse(run))
}

// List handles the GET request to list stored runs
// @Summary List stored known-answer suite runs
// @Description Fetch run summaries, optionally filtered by mechanism or failure, with pagination.
// @Tags KAT
// @Produce json
// @Param mechanism query string false "Mechanism filter"
// @Param failed query bool false "Only runs with failures"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} KATRunResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /kat/runs [get]
func (handler *katHandler) List(ctx *gin.Context) {
	query := kat.NewRunQuery()

	if mechanism := ctx.Query("mechanism"); len(mechanism) > 0 {
		query.Mechanism = mechanism
	}

	if failed := ctx.Query("failed"); len(failed) > 0 {
		onlyFailed, err := strconv.ParseBool(failed)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "failed must be a boolean"})
			return
		}
		query.OnlyFailed = onlyFailed
	}

	pagination := []struct {
		name string
		dst  *int
	}{
		{"limit", &query.Limit},
		{"offset", &query.Offset},
	}
	for _, p := range pagination {
		if value := ctx.Query(p.name); len(value) > 0 {
			n, err := strconv.Atoi(value)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("%s must be an integer", p.name)})
				return
			}
			*p.dst = n
		}
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	runs, err := handler.katService.List(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err)})
		return
	}

	listResponse := []KATRunResponse{}
	for _, run := range runs {
		listResponse = append(listResponse, NewKATRunResponse(run))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve one stored run
// @Summary Retrieve a known-answer suite run by ID
// @Tags KAT
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} KATRunResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /kat/runs/{id} [get]
func (handler *katHandler) GetByID(ctx *gin.Context) {
	runID := ctx.Param("id")

	run, err := handler.katService.GetByID(ctx, runID)
	if err != nil {
		if errors.Is(err, kat.ErrRunNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("kat run with id %s not found", runID)})
			return
		}
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, NewKATRunResponse(run))
}
