package admin

import (
	"net/http"

	"github.com/LrenceLapating/Eunoiaa-sub002/internal/controller"
	"github.com/LrenceLapating/Eunoiaa-sub002/internal/dto"
	"github.com/LrenceLapating/Eunoiaa-sub002/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type CollegeScoreController struct {
	collegeScoreService service.CollegeScoreService
}

func NewCollegeScoreController(collegeScoreService service.CollegeScoreService) *CollegeScoreController {
	return &CollegeScoreController{collegeScoreService: collegeScoreService}
}

// ComputeCollegeScores godoc
// @Summary (Admin) Compute and store college scores
// @Description Recomputes the six Ryff dimension averages of every college in a cohort, or of one college, and replaces the stored rows.
// @Tags Admin - College Scores
// @Accept json
// @Produce json
// @Param request body dto.ComputeCollegeScoresRequest true "Cohort to recompute"
// @Success 200 {object} dto.ComputeCollegeScoresResult
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid assessment type or name"
// @Failure 500 {object} dto.ErrorResponse "Store error"
// @Router /admin/college-scores/compute [post]
func (c *CollegeScoreController) ComputeCollegeScores(ctx *gin.Context) {
	var req dto.ComputeCollegeScoresRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin ComputeCollegeScores: Failed to bind JSON")
		controller.RespondBindError(ctx, err)
		return
	}

	result, err := c.collegeScoreService.ComputeAndStore(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// Backfill godoc
// @Summary (Admin) Recompute every cohort
// @Tags Admin - College Scores
// @Accept json
// @Produce json
// @Param request body dto.BackfillRequest false "Optional assessment type"
// @Success 200 {object} dto.BackfillResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/college-scores/backfill [post]
func (c *CollegeScoreController) Backfill(ctx *gin.Context) {
	var req dto.BackfillRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			controller.RespondBindError(ctx, err)
			return
		}
	}

	result, err := c.collegeScoreService.Backfill(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// RecomputeForAssignment godoc
// @Summary (Admin) Recompute after a submission
// @Description Refreshes the scores of the college of the student who completed the assignment.
// @Tags Admin - College Scores
// @Produce json
// @Param assignment_id path string true "Assessment assignment ID (UUID)"
// @Success 200 {object} dto.ComputeCollegeScoresResult
// @Failure 400 {object} dto.ErrorResponse "Invalid assignment ID"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/college-scores/assignments/{assignment_id}/recompute [post]
func (c *CollegeScoreController) RecomputeForAssignment(ctx *gin.Context) {
	assignmentID, err := uuid.Parse(ctx.Param("assignment_id"))
	if err != nil {
		controller.RespondBindError(ctx, err)
		return
	}

	result, err := c.collegeScoreService.RecomputeForAssignment(ctx.Request.Context(), assignmentID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
