package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/client-directory/internal/domain/client"
	"github.com/BruksfildServices01/client-directory/internal/favorites"
	"github.com/BruksfildServices01/client-directory/internal/httperr"
	"github.com/BruksfildServices01/client-directory/internal/httpresp"
	"github.com/BruksfildServices01/client-directory/internal/models"
	ucClient "github.com/BruksfildServices01/client-directory/internal/usecase/client"
	"github.com/BruksfildServices01/client-directory/internal/validation"
)

type ClientHandler struct {
	list   *ucClient.ListClients
	get    *ucClient.GetClient
	create *ucClient.CreateClient
	update *ucClient.UpdateClient
	remove *ucClient.DeleteClient

	favorites *favorites.Store
	log       *zap.Logger
}

func NewClientHandler(
	list *ucClient.ListClients,
	get *ucClient.GetClient,
	create *ucClient.CreateClient,
	update *ucClient.UpdateClient,
	remove *ucClient.DeleteClient,
	favs *favorites.Store,
	log *zap.Logger,
) *ClientHandler {
	return &ClientHandler{
		list:      list,
		get:       get,
		create:    create,
		update:    update,
		remove:    remove,
		favorites: favs,
		log:       log,
	}
}

// PatchResponse is the body of a successful PATCH.
type PatchResponse struct {
	Message string         `json:"message"`
	Client  *models.Client `json:"updatedClient"`
}

// ======================================================
// LIST / GET
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.list.Execute(c.Request.Context())
	if err != nil {
		h.fail(c, err, "failed_to_list_clients")
		return
	}
	httpresp.OK(c, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	client, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "failed_to_get_client")
		return
	}
	httpresp.OK(c, client)
}

// ======================================================
// CREATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var in validation.ClientInput
	if !bindClient(c, &in) {
		return
	}

	client, err := h.create.Execute(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err, "failed_to_create_client")
		return
	}
	httpresp.Created(c, client.ID)
}

// ======================================================
// UPDATE (PUT = replace, PATCH = replace + record back)
// ======================================================

func (h *ClientHandler) Replace(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in validation.ClientInput
	if !bindClient(c, &in) {
		return
	}

	client, err := h.update.Execute(c.Request.Context(), id, in)
	if err != nil {
		h.fail(c, err, "failed_to_update_client")
		return
	}
	h.refreshFavorite(client)

	httpresp.Message(c, "Cliente atualizado com sucesso.")
}

func (h *ClientHandler) Patch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in validation.ClientInput
	if !bindClient(c, &in) {
		return
	}

	client, err := h.update.Execute(c.Request.Context(), id, in)
	if err != nil {
		h.fail(c, err, "failed_to_update_client")
		return
	}
	h.refreshFavorite(client)

	httpresp.OK(c, PatchResponse{
		Message: "Cliente atualizado com sucesso.",
		Client:  client,
	})
}

// ======================================================
// DELETE
// ======================================================

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), id); err != nil {
		h.fail(c, err, "failed_to_delete_client")
		return
	}
	if h.favorites != nil {
		h.favorites.Remove(id)
	}

	httpresp.Message(c, "Cliente removido com sucesso.")
}

// favorites guardam um snapshot do registro; mantém em dia após update
func (h *ClientHandler) refreshFavorite(client *models.Client) {
	if h.favorites != nil && h.favorites.Contains(client.ID) {
		h.favorites.Add(*client)
	}
}

// fail maps use-case errors onto the response. Only unexpected storage
// errors are logged; their detail never reaches the client.
func (h *ClientHandler) fail(c *gin.Context, err error, code string) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		httperr.Validation(c, verrs)
	case errors.Is(err, domain.ErrNotFound):
		httperr.NotFound(c, httperr.CodeClientNotFound, "Cliente não encontrado.")
	default:
		h.log.Error("client storage failure",
			zap.String("op", code),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		httperr.Internal(c, code, "Erro interno. Tente novamente.")
	}
}
