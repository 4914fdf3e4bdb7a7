package report

import (
	"net/http"

	"github.com/LrenceLapating/Eunoiaa-sub002/internal/controller"
	"github.com/LrenceLapating/Eunoiaa-sub002/internal/dto"
	"github.com/LrenceLapating/Eunoiaa-sub002/internal/service"
	"github.com/gin-gonic/gin"
)

type CollegeScoreController struct {
	collegeScoreService service.CollegeScoreService
	completionService   service.CompletionService
}

func NewCollegeScoreController(cs service.CollegeScoreService, completion service.CompletionService) *CollegeScoreController {
	return &CollegeScoreController{collegeScoreService: cs, completionService: completion}
}

// GetCollegeScores godoc
// @Summary Get college scores
// @Description Stored per-college dimension scores with completion counts. Passing year_level or section recomputes from active students without storing.
// @Tags College Scores
// @Produce json
// @Param college query string false "College name"
// @Param assessment_type query string false "ryff_42 or ryff_84"
// @Param assessment_name query string false "Bulk assessment name"
// @Param year_level query int false "Year level"
// @Param section query string false "Section"
// @Success 200 {object} dto.CollegeScoresResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /college-scores [get]
func (c *CollegeScoreController) GetCollegeScores(ctx *gin.Context) {
	var query dto.CollegeScoreQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}

	resp, err := c.collegeScoreService.GetCollegeScores(ctx.Request.Context(), query)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetCompletion godoc
// @Summary Get completion counts
// @Description Assigned vs completed assessments per college and assessment name.
// @Tags College Scores
// @Produce json
// @Param assessment_name query string false "Bulk assessment name"
// @Param year_level query int false "Year level"
// @Param section query string false "Section"
// @Success 200 {object} dto.CompletionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /college-scores/completion [get]
func (c *CollegeScoreController) GetCompletion(ctx *gin.Context) {
	var query dto.CompletionQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}

	data, err := c.completionService.CountCompletions(ctx.Request.Context(), query)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CompletionResponse{Success: true, Data: data})
}
