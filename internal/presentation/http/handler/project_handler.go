package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/vendor-ledger-api/internal/application/service"
	"github.com/sangkips/vendor-ledger-api/internal/presentation/http/dto/request"
	"github.com/sangkips/vendor-ledger-api/internal/presentation/http/dto/response"
)

// ProjectHandler handles project-related HTTP requests
type ProjectHandler struct {
	projectService *service.ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// Create handles project creation
// @Summary Create project
// @Tags projects
// @Security BearerAuth
// @Param request body request.CreateProjectRequest true "Project"
// @Success 201 {object} response.APIResponse
// @Router /vendors/create/project [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var req request.CreateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), &service.CreateProjectInput{
		VendorID:    req.VendorID,
		ProjectName: req.ProjectName,
		CompanyName: req.CompanyName,
		Estimated:   req.Estimated,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Project created successfully", gin.H{"project": project})
}

// ListByVendor handles listing a vendor's projects with their totals
// @Summary List vendor projects
// @Tags projects
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Router /vendors/projects/{vendorId} [get]
func (h *ProjectHandler) ListByVendor(c *gin.Context) {
	vendorID, ok := paramID(c, "vendorId", "vendor")
	if !ok {
		return
	}

	result, err := h.projectService.ListProjects(c.Request.Context(), vendorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Projects retrieved successfully", result)
}

// Delete handles removing a project with its bills and payments
// @Summary Delete project
// @Tags projects
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Router /vendors/delete/project/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id", "project")
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Deleted(c, "Project deleted successfully")
}
