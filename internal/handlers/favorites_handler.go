package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/client-directory/internal/domain/client"
	"github.com/BruksfildServices01/client-directory/internal/favorites"
	"github.com/BruksfildServices01/client-directory/internal/httperr"
	"github.com/BruksfildServices01/client-directory/internal/httpresp"
	ucClient "github.com/BruksfildServices01/client-directory/internal/usecase/client"
)

type FavoritesHandler struct {
	store *favorites.Store
	get   *ucClient.GetClient
	log   *zap.Logger
}

func NewFavoritesHandler(store *favorites.Store, get *ucClient.GetClient, log *zap.Logger) *FavoritesHandler {
	return &FavoritesHandler{store: store, get: get, log: log}
}

type FavoriteStatus struct {
	ID       uint `json:"id"`
	Favorite bool `json:"favorite"`
	Total    int  `json:"total"`
}

func (h *FavoritesHandler) List(c *gin.Context) {
	httpresp.List(c, h.store.List())
}

func (h *FavoritesHandler) Status(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	httpresp.OK(c, FavoriteStatus{ID: id, Favorite: h.store.Contains(id), Total: h.store.Total()})
}

func (h *FavoritesHandler) Add(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	client, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, httperr.CodeClientNotFound, "Cliente não encontrado.")
			return
		}
		h.log.Error("favorite lookup failed", zap.Uint("id", id), zap.Error(err))
		httperr.Internal(c, "failed_to_add_favorite", "Erro interno. Tente novamente.")
		return
	}

	h.store.Add(*client)
	httpresp.OK(c, FavoriteStatus{ID: id, Favorite: true, Total: h.store.Total()})
}

func (h *FavoritesHandler) Remove(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.store.Remove(id)
	httpresp.OK(c, FavoriteStatus{ID: id, Favorite: false, Total: h.store.Total()})
}
