package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vktkrum1/sistema-de-propostas/internal/adapter/http/handlers"
)

const (
	PathProposals = "/proposals"
	PathCNPJ      = "/cnpj"
)

func addProposalRoutes(rg *gin.RouterGroup, proposalHandler *handlers.ProposalHandler, cnpjHandler *handlers.CNPJHandler) {
	proposals := rg.Group(PathProposals)
	{
		proposals.POST("", proposalHandler.CreateProposal)
		proposals.GET("", proposalHandler.History)
		proposals.GET("/:id", proposalHandler.GetProposal)
		proposals.PUT("/:id", proposalHandler.UpdateProposal)
		proposals.DELETE("/:id", proposalHandler.DeleteProposal)
		proposals.GET("/:id/document", proposalHandler.DownloadDocument)
		proposals.POST("/:id/email", proposalHandler.SendProposalEmail)
	}

	cnpj := rg.Group(PathCNPJ)
	{
		cnpj.GET("/:cnpj", cnpjHandler.LookupCNPJ)
	}
}
