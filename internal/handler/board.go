package handler

import (
	"net/http"

	"github.com/templui/taskboard/internal/ctxkeys"
	"github.com/templui/taskboard/internal/model"
	"github.com/templui/taskboard/internal/response"
	"github.com/templui/taskboard/internal/service"
)

type BoardHandler struct {
	boardService *service.BoardService
}

func NewBoardHandler(boardService *service.BoardService) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
	}
}

func (h *BoardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in model.BoardInput
	err := decodeJSON(w, r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	board, err := h.boardService.Create(r.Context(), ctxkeys.UserID(r.Context()), in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.Success(w, http.StatusCreated, "Board created successfully", board)
}

func (h *BoardHandler) List(w http.ResponseWriter, r *http.Request) {
	boards, err := h.boardService.List(r.Context(), ctxkeys.UserID(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "", boards)
}

func (h *BoardHandler) Get(w http.ResponseWriter, r *http.Request) {
	board, err := h.boardService.Get(r.Context(), ctxkeys.UserID(r.Context()), r.PathValue("boardId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "", board)
}

func (h *BoardHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in model.BoardInput
	err := decodeJSON(w, r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	board, err := h.boardService.Update(r.Context(), ctxkeys.UserID(r.Context()), r.PathValue("boardId"), in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Board updated successfully", board)
}

func (h *BoardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.boardService.Delete(r.Context(), ctxkeys.UserID(r.Context()), r.PathValue("boardId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Board deleted successfully", nil)
}
