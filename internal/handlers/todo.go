package handlers

import (
	"net/http"

	dom "github.com/NabinS-D/TodoList/internal/domain"
	"github.com/NabinS-D/TodoList/internal/dto"
	"github.com/NabinS-D/TodoList/internal/service"

	"github.com/gin-gonic/gin"
)

type TodoHandler struct {
	svc *service.TodoService
}

func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// Create godoc
// @Summary      Create a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateTodoRequest  true  "Todo body"
// @Success      201   {object}  dto.TodoResponse
// @Failure      400   {object}  map[string]string
// @Router       /todos [post]
func (h *TodoHandler) Create(c *gin.Context) {
	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, err := h.svc.Create(c.Request.Context(), req.Title, req.Description, req.Status, req.Priority)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, todoToResponse(t))
}

// List godoc
// @Summary      List all todos
// @Tags         todos
// @Produce      json
// @Success      200  {object}  dto.ListTodosResponse
// @Failure      500  {object}  map[string]string
// @Router       /todos [get]
func (h *TodoHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListTodosResponse{
		Items: todosToResponses(list),
		Count: len(list),
	})
}

// GetByID godoc
// @Summary      Get a todo by ID
// @Tags         todos
// @Produce      json
// @Param        todo_id  path      string  true  "Todo ID"
// @Success      200      {object}  dto.TodoResponse
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Failure      500      {object}  map[string]string
// @Router       /todos/{todo_id} [get]
func (h *TodoHandler) GetByID(c *gin.Context) {
	t, err := h.svc.GetByID(c.Request.Context(), c.Param("todo_id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, todoToResponse(t))
}

// Update godoc
// @Summary      Update a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        todo_id  path      string  true  "Todo ID"
// @Param        body     body      dto.UpdateTodoRequest  true  "Partial update"
// @Success      200      {object}  dto.TodoResponse
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /todos/{todo_id} [patch]
func (h *TodoHandler) Update(c *gin.Context) {
	var req dto.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, err := h.svc.Update(c.Request.Context(), c.Param("todo_id"), req.Title, req.Description, req.Status, req.Priority)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, todoToResponse(t))
}

// Delete godoc
// @Summary      Delete a todo
// @Tags         todos
// @Produce      json
// @Param        todo_id  path      string  true  "Todo ID"
// @Success      200      {object}  dto.DeleteTodoResponse
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /todos/{todo_id} [delete]
func (h *TodoHandler) Delete(c *gin.Context) {
	id := c.Param("todo_id")
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteTodoResponse{Deleted: id})
}

// DeleteAll godoc
// @Summary      Delete all todos
// @Tags         todos
// @Produce      json
// @Success      200  {object}  dto.DeleteAllResponse
// @Failure      500  {object}  map[string]string
// @Router       /todos/deleteAll [delete]
func (h *TodoHandler) DeleteAll(c *gin.Context) {
	n, err := h.svc.DeleteAll(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteAllResponse{DeletedCount: n})
}

func todoToResponse(t dom.Todo) dto.TodoResponse {
	return dto.TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func todosToResponses(list []dom.Todo) []dto.TodoResponse {
	out := make([]dto.TodoResponse, len(list))
	for i := range list {
		out[i] = todoToResponse(list[i])
	}
	return out
}
