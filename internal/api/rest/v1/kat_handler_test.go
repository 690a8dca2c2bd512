//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skiselkov/crypto-test/internal/domain/crypto"
	"github.com/skiselkov/crypto-test/internal/domain/kat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testRun() *kat.Run {
	now := time.Now()
	return &kat.Run{
		ID:               "5d7e0c2a-4b1f-4e3d-8a9c-2f6b1e0d3c4a",
		DateTimeStarted:  now,
		DateTimeFinished: now,
		Mechanism:        "GCM",
		Passed:           1,
		Failed:           1,
		Results: []kat.Result{
			{Vector: "GCM/1", Mechanism: "GCM", Number: 1, Direction: "E", Passed: true, Offset: -1},
			{Vector: "GCM/1", Mechanism: "GCM", Number: 1, Direction: "D", Stage: "final", Detail: "authentication failure", Offset: -1},
		},
	}
}

func TestKATHandler_Run_Success(t *testing.T) {
	mockService := new(MockKATService)
	handler := NewKATHandler(mockService)

	mockService.On("Run", mock.Anything, crypto.MechanismGCM).Return(testRun(), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/kat/runs", bytes.NewBufferString(`{"mechanism": "GCM"}`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Run(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"label":"GCM/1/D"`)
	assert.Contains(t, w.Body.String(), `"ok":false`)
	mockService.AssertExpectations(t)
}

func TestKATHandler_Run_EmptyBodyRunsAll(t *testing.T) {
	mockService := new(MockKATService)
	handler := NewKATHandler(mockService)

	mockService.On("Run", mock.Anything, crypto.Mechanism(0)).Return(testRun(), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/kat/runs", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Run(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestKATHandler_Run_InvalidMechanism(t *testing.T) {
	mockService := new(MockKATService)
	handler := NewKATHandler(mockService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/kat/runs", bytes.NewBufferString(`{"mechanism": "OFB"}`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Run(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
}

func TestKATHandler_Run_ServiceError(t *testing.T) {
	mockService := new(MockKATService)
	handler := NewKATHandler(mockService)

	mockService.On("Run", mock.Anything, crypto.Mechanism(0)).Return(nil, errors.New("db down"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/kat/runs", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Run(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "db down")
}

func TestKATHandler_List_Success(t *testing.T) {
	mockService := new(MockKATService)
	handler := NewKATHandler(mockService)

	mockService.
		On("List", mock.Anything, mock.MatchedBy(func(q *kat.RunQuery) bool {
			return q.Mechanism == "GCM" && q.OnlyFailed && q.Limit == 5 && q.Offset == 10
		})).
		Return([]*kat.Run{testRun()}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/kat/runs?mechanism=GCM&failed=true&limit=5&offset=10", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "5d7e0c2a-4b1f-4e3d-8a9c-2f6b1e0d3c4a")
	mockService.AssertExpectations(t)
}

func TestKATHandler_List_BadQuery(t *testing.T) {
	tests := []string{
		"/kat/runs?limit=abc",
		"/kat/runs?failed=maybe",
		"/kat/runs?limit=5000",
		"/kat/runs?sortOrder=up",
	}

	for _, url := range tests {
		t.Run(url, func(t *testing.T) {
			mockService := new(MockKATService)
			handler := NewKATHandler(mockService)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", url, nil)

			c, _ := gin.CreateTestContext(w)
			c.Request = req

			handler.List(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestKATHandler_List_MalformedPaginationReportsLimitFirst(t *testing.T) {
	for i := 0; i < 20; i++ {
		mockService := new(MockKATService)
		handler := NewKATHandler(mockService)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/kat/runs?limit=abc&offset=xyz", nil)

		c, _ := gin.CreateTestContext(w)
		c.Request = req

		handler.List(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "limit must be an integer")
		mockService.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	}
}

func TestKATHandler_GetByID(t *testing.T) {
	mockService := new(MockKATService)
	handler := NewKATHandler(mockService)

	run := testRun()
	mockService.On("GetByID", mock.Anything, run.ID).Return(run, nil)
	mockService.On("GetByID", mock.Anything, "missing").Return(nil, kat.ErrRunNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/kat/runs/"+run.ID, nil)
	c.Params = gin.Params{{Key: "id", Value: run.ID}}

	handler.GetByID(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"stage":"final"`)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/kat/runs/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.GetByID(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
