package handler

import (
	"net/http"

	"github.com/templui/taskboard/internal/ctxkeys"
	"github.com/templui/taskboard/internal/model"
	"github.com/templui/taskboard/internal/response"
	"github.com/templui/taskboard/internal/service"
)

type TodoHandler struct {
	todoService *service.TodoService
}

func NewTodoHandler(todoService *service.TodoService) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
	}
}

func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in model.TodoInput
	err := decodeJSON(w, r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	todo, err := h.todoService.Create(r.Context(), ctxkeys.UserID(r.Context()), r.PathValue("boardId"), in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.Success(w, http.StatusCreated, "Todo created successfully", todo)
}

// List accepts optional ?status= and ?priority= exact-match filters.
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := model.TodoFilter{
		Status:   r.URL.Query().Get("status"),
		Priority: r.URL.Query().Get("priority"),
	}

	todos, err := h.todoService.List(r.Context(), ctxkeys.UserID(r.Context()), r.PathValue("boardId"), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "", todos)
}

func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	todo, err := h.todoService.Get(r.Context(), ctxkeys.UserID(r.Context()), r.PathValue("boardId"), r.PathValue("todoId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "", todo)
}

func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.TodoPatch
	err := decodeJSON(w, r, &patch)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	todo, err := h.todoService.Update(r.Context(), ctxkeys.UserID(r.Context()), r.PathValue("boardId"), r.PathValue("todoId"), patch)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Todo updated successfully", todo)
}

func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.todoService.Delete(r.Context(), ctxkeys.UserID(r.Context()), r.PathValue("boardId"), r.PathValue("todoId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Todo deleted successfully", nil)
}
