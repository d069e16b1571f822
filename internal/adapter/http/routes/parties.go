package routes

import (
	"github.com/rafacrt/studio-sub000/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClientes  = "/clientes"
	PathParceiros = "/parceiros"
)

func addPartyRoutes(rg *gin.RouterGroup, clienteHandler, parceiroHandler *handlers.PartyHandler) {
	clientes := rg.Group(PathClientes)
	{
		clientes.POST("", clienteHandler.CreateParty)
		clientes.GET("", clienteHandler.ListParties)
		clientes.DELETE("/:id", clienteHandler.DeleteParty)
	}

	parceiros := rg.Group(PathParceiros)
	{
		parceiros.POST("", parceiroHandler.CreateParty)
		parceiros.GET("", parceiroHandler.ListParties)
		parceiros.DELETE("/:id", parceiroHandler.DeleteParty)
	}
}
