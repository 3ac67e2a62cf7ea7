package v1

import (
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type PortfolioHandler struct {
	portfolioUC domain.PortfolioUsecase
}

func NewPortfolioHandler(public *gin.RouterGroup, portfolioUC domain.PortfolioUsecase) {
	handler := &PortfolioHandler{portfolioUC: portfolioUC}

	public.GET("/projects", handler.ListProjects)
	public.GET("/projects/:id", handler.GetProject)
	public.GET("/tech-stack", handler.ListTechStack)
	public.GET("/profile", handler.GetProfile)
}

// ListProjects godoc
// @Summary      List projects
// @Tags         portfolio
// @Produce      json
// @Param        category  query     string  false  "api, microservices, fullstack or tools"
// @Param        status    query     string  false  "completed, in-progress or planning"
// @Success      200       {object}  response.Response{data=[]domain.Project}
// @Failure      400       {object}  response.Response
// @Router       /projects [get]
func (h *PortfolioHandler) ListProjects(c *gin.Context) {
	var filter domain.ProjectFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		_ = c.Error(apperror.BadRequest("Invalid query parameters"))
		return
	}

	projects, err := h.portfolioUC.ListProjects(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Projects retrieved", projects)
}

// GetProject godoc
// @Summary      Get a project
// @Tags         portfolio
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  response.Response{data=domain.Project}
// @Failure      404  {object}  response.Response
// @Router       /projects/{id} [get]
func (h *PortfolioHandler) GetProject(c *gin.Context) {
	project, err := h.portfolioUC.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project retrieved", project)
}

// ListTechStack godoc
// @Summary      List tech stack categories
// @Tags         portfolio
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.TechCategory}
// @Router       /tech-stack [get]
func (h *PortfolioHandler) ListTechStack(c *gin.Context) {
	stack, err := h.portfolioUC.ListTechStack(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Tech stack retrieved", stack)
}

// GetProfile godoc
// @Summary      Owner profile and social links
// @Tags         portfolio
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Profile}
// @Router       /profile [get]
func (h *PortfolioHandler) GetProfile(c *gin.Context) {
	response.Success(c, http.StatusOK, "Profile retrieved", h.portfolioUC.GetProfile(c.Request.Context()))
}
