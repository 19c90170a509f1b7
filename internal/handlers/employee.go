package handlers

import (
	"net/http"

	dom "github.com/NabinS-D/TodoList/internal/domain"
	"github.com/NabinS-D/TodoList/internal/dto"
	"github.com/NabinS-D/TodoList/internal/service"

	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	svc *service.EmployeeService
}

func NewEmployeeHandler(svc *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

// Create godoc
// @Summary      Create an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateEmployeeRequest  true  "Employee body"
// @Success      201   {object}  dto.EmployeeResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	e, err := h.svc.Create(c.Request.Context(), dom.Employee{
		Name:    req.Name,
		Surname: req.Surname,
		Age:     *req.Age,
		Gender:  dom.Gender(req.Gender),
	})
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, employeeToResponse(e))
}

// List godoc
// @Summary      List all employees
// @Tags         employees
// @Produce      json
// @Success      200  {object}  dto.ListEmployeesResponse
// @Failure      500  {object}  map[string]string
// @Router       /employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListEmployeesResponse{
		Items: employeesToResponses(list),
		Count: len(list),
	})
}

// GetByName godoc
// @Summary      Get an employee by name
// @Tags         employees
// @Produce      json
// @Param        name  path      string  true  "Employee name"
// @Success      200   {object}  dto.EmployeeResponse
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /employees/{name} [get]
func (h *EmployeeHandler) GetByName(c *gin.Context) {
	e, err := h.svc.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, employeeToResponse(e))
}

// Update godoc
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        name  path      string  true  "Employee name"
// @Param        body  body      dto.UpdateEmployeeRequest  true  "Partial update"
// @Success      200   {object}  dto.EmployeeResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /employees/{name} [patch]
func (h *EmployeeHandler) Update(c *gin.Context) {
	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	e, err := h.svc.Update(c.Request.Context(), c.Param("name"), req.Name, req.Surname, req.Age, req.Gender)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, employeeToResponse(e))
}

// Delete godoc
// @Summary      Delete an employee
// @Tags         employees
// @Produce      json
// @Param        name  path      string  true  "Employee name"
// @Success      200   {object}  dto.DeleteEmployeeResponse
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /employees/{name} [delete]
func (h *EmployeeHandler) Delete(c *gin.Context) {
	name := c.Param("name")
	if err := h.svc.Delete(c.Request.Context(), name); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteEmployeeResponse{Deleted: name})
}

// DeleteAll godoc
// @Summary      Delete all employees
// @Tags         employees
// @Produce      json
// @Success      200  {object}  dto.DeleteAllResponse
// @Failure      500  {object}  map[string]string
// @Router       /employees/deleteAll [delete]
func (h *EmployeeHandler) DeleteAll(c *gin.Context) {
	n, err := h.svc.DeleteAll(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteAllResponse{DeletedCount: n})
}

func employeeToResponse(e dom.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		Name:    e.Name,
		Surname: e.Surname,
		Age:     e.Age,
		Gender:  string(e.Gender),
	}
}

func employeesToResponses(list []dom.Employee) []dto.EmployeeResponse {
	out := make([]dto.EmployeeResponse, len(list))
	for i := range list {
		out[i] = employeeToResponse(list[i])
	}
	return out
}
